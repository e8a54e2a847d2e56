package morfessor

import "context"

// Optimizer is the greedy recursive optimizer (spec §4.E, "component
// E"), grounded directly on segmentation.cc's ResplitNode/Optimize pair.
// It owns the fixed list of top-level corpus words established when it
// was constructed — sub-morphs created by splitting are never
// independently revisited by the epoch loop itself, only by
// ResplitNode's own recursion into the children of a word it just split,
// exactly as in the reference: a word's segmentation is retried from
// scratch on every epoch it comes up in the permutation, but a
// generated sub-morph only gets its own resplit trial as a side effect
// of its parent word's trial in that same pass.
type Optimizer struct {
	Tree                 *Tree
	ConvergenceThreshold float64

	words []string
	rng   *rng
}

// NewOptimizer returns an Optimizer over tree's current leaves — call
// this only once every input word has been loaded (via Tree.Emplace) and
// before any splitting has occurred, since the leaf set at construction
// time becomes the fixed word list every epoch iterates.
func NewOptimizer(tree *Tree, seed int64) *Optimizer {
	leaves := tree.Store.Leaves()
	words := make([]string, len(leaves))
	for i, p := range leaves {
		words[i] = p.Word
	}
	return &Optimizer{
		Tree:                 tree,
		ConvergenceThreshold: DefaultConvergenceEpsilon,
		words:                words,
		rng:                  newRNG(seed),
	}
}

// Epoch runs one pass of ResplitNode over every top-level word, in a
// freshly randomized order, and returns the tree's overall cost
// afterward. It reconciles the cost model from scratch first (rebuilding
// the letter table and every accumulator), bounding whatever drift the
// incremental adjust* hooks accumulated during the previous epoch's
// flurry of trial splits.
func (o *Optimizer) Epoch() float64 {
	o.Tree.Cost.Recompute(o.Tree.Store)
	for _, word := range o.rng.permute(o.words) {
		o.ResplitNode(word)
	}
	return o.Tree.Cost.OverallCost()
}

// Run calls Epoch until the drop in overall cost between consecutive
// epochs falls to or below ConvergenceThreshold * UniqueMorphTypes (the
// reference's convergence test, scaled by lexicon size so the threshold
// means the same thing for a small and a large corpus), or until ctx is
// canceled. Cancellation is only checked between epochs, never inside
// one, matching spec §5's single-threaded, non-preemptible model.
// It returns the number of epochs run.
func (o *Optimizer) Run(ctx context.Context) (int, error) {
	epochs := 0
	oldCost := o.Tree.Cost.OverallCost()
	for {
		select {
		case <-ctx.Done():
			return epochs, ctx.Err()
		default:
		}

		newCost := o.Epoch()
		epochs++
		improvement := oldCost - newCost
		oldCost = newCost
		if improvement <= o.ConvergenceThreshold*float64(o.Tree.Cost.UniqueMorphTypes) {
			return epochs, nil
		}
	}
}

// ResplitNode finds the best binary split of morph, applies it, and
// recurses into both halves — or leaves morph as an unsplit leaf if no
// split improves the overall cost. It is grounded verbatim on
// segmentation.cc's ResplitNode: morph's current representation is fully
// removed and reinstated once (so the trial starts from the same state
// regardless of whether morph arrived already split from a previous
// epoch), then every split position from 1 to len(morph)-1 is tried by
// adding both children, checking the resulting overall cost, and
// removing them again — strict less-than tie-breaking means the first
// split position seen wins any tie, never a later one.
func (o *Optimizer) ResplitNode(morph string) {
	n, ok := o.Tree.Store.At(morph)
	assertContract(ok, ErrMorphAbsent, morph, "ResplitNode requires morph to be present")
	frequency := n.Count

	o.Tree.AdjustMorphCount(morph, -int64(frequency))
	o.Tree.AdjustMorphCount(morph, int64(frequency))

	bestCost := o.Tree.Cost.OverallCost()
	bestSplit := 0

	o.Tree.AdjustMorphCount(morph, -int64(frequency))

	runes := []rune(morph)
	for k := 1; k < len(runes); k++ {
		left := string(runes[:k])
		right := string(runes[k:])

		o.Tree.AdjustMorphCount(left, int64(frequency))
		o.Tree.AdjustMorphCount(right, int64(frequency))

		if newCost := o.Tree.Cost.OverallCost(); newCost < bestCost {
			bestCost = newCost
			bestSplit = k
		}

		o.Tree.AdjustMorphCount(left, -int64(frequency))
		o.Tree.AdjustMorphCount(right, -int64(frequency))
	}

	if bestSplit == 0 {
		o.Tree.AdjustMorphCount(morph, int64(frequency))
		return
	}

	left := string(runes[:bestSplit])
	right := string(runes[bestSplit:])
	o.Tree.commitSplit(morph, left, right, frequency)
	o.ResplitNode(left)
	o.ResplitNode(right)
}
