package morfessor

// Tree is the segmentation forest (spec §4.D, "component D"): a Store of
// nodes keyed by morph string plus the CostModel whose accumulators it
// keeps current as a side effect of every structural mutation. Any morph
// string can be shared as a sub-morph of more than one parent — the
// forest is a DAG over string keys, not a collection of disjoint
// pointer-trees — since Split only ever grows a child's count, never
// claims exclusive ownership of it.
//
// Every mutator here is grounded on segmentation.cc's AdjustMorphCount,
// the reference's single recursive primitive for keeping leaf-level cost
// accumulators in lockstep with the tree: Split, IncreaseNodeCount, and
// Remove are the named operations spec §4.D exposes. Remove and
// IncreaseNodeCount are expressed entirely in terms of AdjustMorphCount;
// Split uses it for the two children and retireLeaf for the leaf it turns
// into an internal node.
type Tree struct {
	Store *Store
	Cost  *CostModel
}

// NewTree returns an empty Tree whose CostModel uses mode and the package
// default priors.
func NewTree(mode AlgorithmMode) *Tree {
	return &Tree{Store: NewStore(), Cost: NewCostModel(mode)}
}

// Contains reports whether morph is present, leaf or internal.
func (t *Tree) Contains(morph string) bool {
	return t.Store.Contains(morph)
}

// At returns the node for morph and whether it was present.
func (t *Tree) At(morph string) (*Node, bool) {
	return t.Store.At(morph)
}

// Emplace inserts morph as a top-level leaf with the given frequency,
// creating it if absent or adding to its count if already present. It goes
// through AdjustMorphCount, so the global counters and cost accumulators
// stay current and Split or Remove may follow directly. Until
// Cost.Recompute has built a letter table, the string and implicit-length
// contributions of the leaves added here are zero.
//
// Emplace panics via assertContract if morph is empty or frequency is zero.
func (t *Tree) Emplace(morph string, frequency uint64) {
	assertContract(frequency > 0, ErrNonPositiveFrequency, morph, "Emplace requires a positive frequency")
	t.AdjustMorphCount(morph, int64(frequency))
}

// IncreaseNodeCount adds increase to subtree's count and to the counts of
// its existing children, if it has any (spec §4.D). It is the
// non-removing half of AdjustMorphCount: increase is always relative to
// the node as it is right now, never an absolute new count, and it never
// erases anything, so it is implemented directly in terms of
// AdjustMorphCount with a non-negative delta rather than duplicating the
// leaf-transition hook logic a second time.
func (t *Tree) IncreaseNodeCount(subtree string, increase uint64) {
	if increase == 0 {
		return
	}
	t.AdjustMorphCount(subtree, int64(increase))
}

// Remove deletes morph from the tree entirely, which is exactly
// AdjustMorphCount driving its count to zero.
func (t *Tree) Remove(morph string) {
	n, ok := t.Store.At(morph)
	assertContract(ok, ErrMorphAbsent, morph, "Remove requires morph to already be present")
	t.AdjustMorphCount(morph, -int64(n.Count))
}

// AdjustMorphCount changes morph's count by delta, recursing into its
// children (if any) with the same delta, or — if morph is a leaf —
// invoking CostModel's adjust* hooks to keep the lexicon/corpus cost
// accumulators consistent with the new leaf population. A morph whose
// count reaches zero is erased from the Store; morph is created as a
// fresh childless leaf if it was not already present (mirroring
// segmentation.cc's `nodes_[morph]` default-construct-on-access).
//
// Apart from retireLeaf, which Split uses for the leaf it turns into an
// internal node, this is the one place where the tree calls the cost
// model's hooks — Emplace, IncreaseNodeCount and Remove are expressed in
// terms of this method, and Split grows its two children through it.
func (t *Tree) AdjustMorphCount(morph string, delta int64) {
	assertContract(morph != "", ErrEmptyMorph, morph, "AdjustMorphCount requires a non-empty morph")

	var precedingCount uint64
	if existing, present := t.Store.At(morph); present {
		precedingCount = existing.Count
	}
	assertContract(delta >= 0 || -delta <= int64(precedingCount), ErrNegativeCount, morph, "delta would drive count negative")

	n := t.Store.getOrCreate(morph)
	oldCount := n.Count
	newCount := int64(oldCount) + delta
	left, right := n.Left, n.Right
	assertContract((left == "") == (right == ""), ErrAsymmetricChildren, morph, "")

	if newCount == 0 {
		t.Store.erase(morph)
	} else {
		n.Count = uint64(newCount)
	}

	if left != "" {
		t.AdjustMorphCount(left, delta)
		t.AdjustMorphCount(right, delta)
		return
	}

	t.Cost.adjustMorphTokenCount(delta)

	if oldCount > 0 {
		t.Cost.adjustCorpusCost(-int64(oldCount))
		t.Cost.adjustFrequencyCost(-int64(oldCount))
	}
	if newCount > 0 {
		t.Cost.adjustCorpusCost(newCount)
		t.Cost.adjustFrequencyCost(newCount)
	}

	switch {
	case oldCount == 0 && newCount > 0:
		t.Cost.adjustUniqueMorphCount(1)
		t.Cost.adjustLengthCost(morph, true)
		t.Cost.adjustStringCost(morph, true)
	case newCount == 0 && oldCount > 0:
		t.Cost.adjustUniqueMorphCount(-1)
		t.Cost.adjustLengthCost(morph, false)
		t.Cost.adjustStringCost(morph, false)
	}
}

// Split divides the leaf morph into two children at rune offset k (0 <
// k < rune-length of morph), retiring morph's own leaf-cost contribution
// and growing the two children's counts by morph's count via
// IncreaseNodeCount. morph remains present in the Store afterward as an
// internal (non-leaf) node whose count is the pass-through count shared
// by both children — this is what lets two different parents split the
// same morph string identically and land on the same child keys, sharing
// their subtrees rather than duplicating them.
//
// Split panics via assertContract if morph is absent, is not a leaf, or
// k is out of range.
func (t *Tree) Split(morph string, k int) {
	n, ok := t.Store.At(morph)
	assertContract(ok, ErrMorphAbsent, morph, "Split requires morph to be present")
	assertContract(n.IsLeaf(), ErrNotLeaf, morph, "Split requires morph to be a leaf")

	runes := []rune(morph)
	assertContract(k > 0 && k < len(runes), ErrSplitIndexOutOfRange, morph, "split index must split morph into two non-empty parts")

	count := n.Count
	left := string(runes[:k])
	right := string(runes[k:])

	t.retireLeaf(morph, count)

	n.Left = left
	n.Right = right

	t.IncreaseNodeCount(left, count)
	t.IncreaseNodeCount(right, count)
}

// commitSplit re-establishes morph as an internal node with the given
// children and count, and grows both children by count via
// IncreaseNodeCount. Optimizer calls this once it has already determined
// the winning split index through a series of hypothetical
// AdjustMorphCount trials (each fully undone before the next is tried);
// this is the structural write that makes the winning trial permanent.
// It bypasses AdjustMorphCount for morph itself, exactly as Split does,
// since morph is taking on the internal-node role rather than
// undergoing a leaf-count change.
func (t *Tree) commitSplit(morph, left, right string, count uint64) {
	n := t.Store.getOrCreate(morph)
	n.Count = count
	n.Left = left
	n.Right = right
	t.IncreaseNodeCount(left, count)
	t.IncreaseNodeCount(right, count)
}

// retireLeaf fires the same leaf-death cost hooks AdjustMorphCount would
// fire for a leaf whose count drops to zero, without erasing the node or
// touching its count — used only by Split, which needs morph to survive
// as an internal node rather than disappear.
func (t *Tree) retireLeaf(morph string, count uint64) {
	t.Cost.adjustMorphTokenCount(-int64(count))
	t.Cost.adjustCorpusCost(-int64(count))
	t.Cost.adjustFrequencyCost(-int64(count))
	t.Cost.adjustUniqueMorphCount(-1)
	t.Cost.adjustLengthCost(morph, false)
	t.Cost.adjustStringCost(morph, false)
}
