package morfessor

// Store is the exclusive owner of every Node in a segmentation forest. It
// holds only the raw node map: the derived global counters
// (TotalMorphTokens, UniqueMorphTypes) and the four cost accumulators live
// on CostModel, since every one of them changes in lockstep with a leaf
// transition and none of them makes sense without the others (spec §3
// lists them together as one block of "Global counters").
//
// A Store never holds a node with Count == 0 (invariant 3); Tree's
// mutators erase a node the instant its count reaches zero, but never
// erase a node that still has a positive count just because it stopped
// being referenced by one particular parent — other parents may still
// depend on it.
type Store struct {
	nodes map[string]*Node
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{nodes: make(map[string]*Node)}
}

// Contains reports whether morph is present in the store, leaf or
// internal.
func (s *Store) Contains(morph string) bool {
	_, ok := s.nodes[morph]
	return ok
}

// At returns the node for morph and whether it was present. The returned
// pointer must not be retained across any call that might mutate the
// store (Split, AdjustMorphCount, IncreaseNodeCount, Remove); re-fetch by
// key instead, since the node may be relocated or erased.
func (s *Store) At(morph string) (*Node, bool) {
	n, ok := s.nodes[morph]
	return n, ok
}

// Count returns the count of morph, or 0 if it is absent.
func (s *Store) Count(morph string) uint64 {
	if n, ok := s.nodes[morph]; ok {
		return n.Count
	}
	return 0
}

// Len returns the number of nodes currently in the store, leaf or
// internal.
func (s *Store) Len() int {
	return len(s.nodes)
}

// Leaves returns every leaf node's (morph, count) pair. Iteration order is
// unspecified, matching spec §3's "iteration order irrelevant".
func (s *Store) Leaves() []Pair {
	out := make([]Pair, 0, len(s.nodes))
	for _, n := range s.nodes {
		if n.IsLeaf() {
			out = append(out, Pair{Word: n.Morph, Frequency: n.Count})
		}
	}
	return out
}

// erase removes morph from the store unconditionally. Callers must only
// call this once the node's count has reached zero.
func (s *Store) erase(morph string) {
	delete(s.nodes, morph)
}

// getOrCreate returns the node for morph, creating a zero-count leaf if
// absent, without touching any global counter — callers that create a
// node this way are expected to immediately adjust its count through the
// normal cost-aware path in tree.go.
func (s *Store) getOrCreate(morph string) *Node {
	if n, ok := s.nodes[morph]; ok {
		return n
	}
	n := &Node{Morph: morph}
	s.nodes[morph] = n
	return n
}

// Emplace inserts morph as a top-level leaf with the given frequency,
// creating it if absent or adding to its count if already present (spec
// §4.D: "emplace(morph, frequency): inserts morph as a leaf with count =
// frequency (creates or adds)"). It bypasses every cost hook, exactly
// like Segmentation's constructor in segmentation.cc populating its node
// map directly from the input corpus before any AdjustMorphCount call —
// the global counters and cost accumulators are established afterwards
// by a single CostModel.Recompute pass over the whole store, not by
// bookkeeping each Emplace individually.
//
// Emplace panics via assertContract if morph is empty or frequency is
// zero; corpus-level validation (rejecting empty words or non-positive
// frequencies from untrusted input) belongs to SlicePairs.Validate, which
// runs before any Emplace call.
func (s *Store) Emplace(morph string, frequency uint64) {
	assertContract(morph != "", ErrEmptyMorph, morph, "Emplace requires a non-empty morph")
	assertContract(frequency > 0, ErrNonPositiveFrequency, morph, "Emplace requires a positive frequency")

	n := s.getOrCreate(morph)
	n.Count += frequency
}
