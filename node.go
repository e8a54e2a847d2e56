package morfessor

// Node is one record in the segmentation forest, keyed by its Morph
// string in the owning Store. A Node is a leaf when Left and Right are
// both empty, and internal when both are non-empty and
// Morph == Left+Right. Invariant 1 (spec §3) requires Left and Right to
// be simultaneously empty or simultaneously non-empty; every mutator in
// this package preserves that.
//
// Left and Right reference other nodes in the same Store by their Morph
// key, not by pointer. Multiple internal nodes may reference the same
// child — that's the whole point of the forest sharing sub-morphs across
// words — so a Node must never be held across a call that might mutate
// the Store; re-fetch it by key instead.
type Node struct {
	Morph string
	Count uint64
	Left  string
	Right string
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == "" && n.Right == ""
}
