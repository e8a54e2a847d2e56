package morfessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These scenarios are transcribed from original_source/tests/morph_node_tests.cc's
// SegmentationTree_Split/_Remove cases (spec §8's six segmentation-tree scenarios).

func TestTreeEmptyContainsNothing(t *testing.T) {
	tree := NewTree(Baseline)
	assert.False(t, tree.Contains("anything"))
}

func TestTreeSplitCountPreservedWithNoSharedElements(t *testing.T) {
	tree := NewTree(Baseline)
	tree.Emplace("reopen", 7)
	tree.Emplace("counter", 10)

	tree.Split("reopen", 2)
	tree.Split("counter", 5)

	assert.Equal(t, uint64(7), tree.Store.Count("re"))
	assert.Equal(t, uint64(7), tree.Store.Count("open"))
	assert.Equal(t, uint64(10), tree.Store.Count("count"))
	assert.Equal(t, uint64(10), tree.Store.Count("er"))
}

func TestTreeSplitCountCombinedWithSharedElements(t *testing.T) {
	tree := NewTree(Baseline)
	tree.Emplace("reopen", 7)
	tree.Emplace("retry", 10)

	tree.Split("reopen", 2)
	tree.Split("retry", 2)

	assert.Equal(t, uint64(17), tree.Store.Count("re"))
	assert.Equal(t, uint64(7), tree.Store.Count("open"))
	assert.Equal(t, uint64(10), tree.Store.Count("try"))
}

func TestTreeSplitCountCombinedWithDeepSharedElements(t *testing.T) {
	tree := NewTree(Baseline)
	tree.Emplace("reopening", 1)
	tree.Emplace("retry", 2)
	tree.Emplace("trying", 4)

	tree.Split("reopening", 2)
	tree.Split("opening", 4)
	tree.Split("retry", 2)
	tree.Split("trying", 3)

	assert.Equal(t, uint64(3), tree.Store.Count("re"))
	assert.Equal(t, uint64(5), tree.Store.Count("ing"))
	assert.Equal(t, uint64(1), tree.Store.Count("open"))
	assert.Equal(t, uint64(6), tree.Store.Count("try"))
}

func TestTreeRemoveCountDecreasedHarderCase(t *testing.T) {
	tree := NewTree(Baseline)
	tree.Emplace("reopening", 1)
	tree.Emplace("retry", 2)
	tree.Emplace("trying", 4)

	tree.Split("reopening", 2)
	tree.Split("opening", 4)
	tree.Split("retry", 2)
	tree.Split("trying", 3)

	tree.Remove("trying")

	assert.Equal(t, uint64(1), tree.Store.Count("ing"))
	assert.Equal(t, uint64(2), tree.Store.Count("try"))
	assert.False(t, tree.Contains("trying"))
}

func TestTreeRemoveNodeGoneFromOneElementTree(t *testing.T) {
	tree := NewTree(Baseline)
	tree.Emplace("reopen", 7)
	require.True(t, tree.Contains("reopen"))
	tree.Remove("reopen")
	assert.False(t, tree.Contains("reopen"))
}

func TestTreeRemoveNodeGoneFromTwoElementTree(t *testing.T) {
	tree := NewTree(Baseline)
	tree.Emplace("reopen", 7)
	tree.Emplace("reorder", 10)
	tree.Remove("reorder")
	assert.True(t, tree.Contains("reopen"))
	assert.False(t, tree.Contains("reorder"))
	tree.Remove("reopen")
	assert.False(t, tree.Contains("reopen"))
}

func TestTreeRemoveEmptyDescendantsRemoved(t *testing.T) {
	tree := NewTree(Baseline)
	tree.Emplace("reopening", 1)
	tree.Emplace("retry", 2)
	tree.Emplace("trying", 4)

	tree.Split("reopening", 2)
	tree.Split("opening", 4)
	tree.Split("retry", 2)
	tree.Split("trying", 3)

	tree.Remove("trying")
	tree.Remove("retry")

	assert.False(t, tree.Contains("try"))
}

// Invariants 1-6 (spec §3, §8 "structural invariants") are checked after a
// representative mutation sequence touching every mutator.
func TestTreeInvariantsHoldAfterMutations(t *testing.T) {
	tree := NewTree(Baseline)
	tree.Emplace("reopening", 1)
	tree.Emplace("retry", 2)
	tree.Emplace("trying", 4)
	tree.Split("reopening", 2)
	tree.Split("opening", 4)
	tree.Split("retry", 2)
	tree.Split("trying", 3)
	tree.Remove("trying")

	var leafCount int
	var tokenSum uint64
	for morph, n := range tree.Store.nodes {
		require.Equal(t, morph, n.Morph)
		require.Equal(t, n.Left == "", n.Right == "", "invariant 1 violated for %q", morph)
		if !n.IsLeaf() {
			require.Equal(t, morph, n.Left+n.Right, "invariant 2 violated for %q", morph)
			require.NotEmpty(t, n.Left)
			require.NotEmpty(t, n.Right)
		} else {
			leafCount++
			tokenSum += n.Count
		}
		require.Greater(t, n.Count, uint64(0), "invariant 3 violated: zero-count node %q present", morph)
	}

	assert.Equal(t, tokenSum, tree.Cost.TotalMorphTokens, "invariant 6: total_morph_tokens")
	assert.Equal(t, leafCount, tree.Cost.UniqueMorphTypes, "invariant 6: unique_morph_types")
}

// Split followed by enough AdjustMorphCount(-f) to drain the split morph's
// count back to zero returns the tree to a state where the cost
// accumulators agree with a full recomputation within tolerance (spec §8
// "Round-trips and idempotence").
func TestTreeSplitThenFullRemovalRecomputeAgrees(t *testing.T) {
	tree := NewTree(BaselineFreqLength)
	tree.Emplace("reopen", 7)
	tree.Emplace("redo", 3)
	tree.Cost.Recompute(tree.Store)

	tree.Split("reopen", 2)
	tree.Remove("reopen")
	tree.Emplace("reopen", 7)
	tree.Split("reopen", 2)
	tree.Remove("reopen")

	incrementalCost := tree.Cost.OverallCost()
	tree.Cost.Recompute(tree.Store)
	recomputedCost := tree.Cost.OverallCost()

	assert.InDelta(t, recomputedCost, incrementalCost, 1e-5)
}

func TestTreeSplitContractViolations(t *testing.T) {
	tree := NewTree(Baseline)
	tree.Emplace("reopen", 1)

	assert.PanicsWithValue(t, &ContractViolation{Err: ErrMorphAbsent, Morph: "missing", Detail: "Split requires morph to be present"}, func() {
		tree.Split("missing", 2)
	})

	tree.Split("reopen", 2)
	assert.Panics(t, func() {
		tree.Split("reopen", 2) // no longer a leaf
	})

	assert.Panics(t, func() {
		tree.Split("re", 0) // k out of range
	})
	assert.Panics(t, func() {
		tree.Split("re", 5) // k out of range
	})
}

func TestTreeAdjustMorphCountRejectsNegativeResult(t *testing.T) {
	tree := NewTree(Baseline)
	tree.Emplace("redo", 2)
	assert.Panics(t, func() {
		tree.AdjustMorphCount("redo", -3)
	})
}
