package morfessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImplicitLengthLeafCostIsEndOfMorphCost(t *testing.T) {
	table := LetterTable{EndOfMorph: 2.5}
	assert.Equal(t, 2.5, implicitLengthLeafCost(table))
}

func TestImplicitLengthCostIsUniqueCountTimesEndOfMorph(t *testing.T) {
	store := NewStore()
	store.Emplace("ab", 1)
	store.Emplace("cd", 2)
	table := LetterTable{EndOfMorph: 1.25}

	got := implicitLengthCost(store, table)
	assert.InDelta(t, 2.5, got, 1e-9)
}

func TestExplicitLengthLeafCostIsPositiveAndGrowsWithDistanceFromMean(t *testing.T) {
	atMean := explicitLengthLeafCost(5, 5.0, 1.0)
	farFromMean := explicitLengthLeafCost(1, 5.0, 1.0)
	assert.Greater(t, atMean, 0.0)
	assert.Greater(t, farFromMean, atMean)
}

func TestExplicitLengthCostSumsOverLeaves(t *testing.T) {
	store := NewStore()
	store.Emplace("ab", 1)
	store.Emplace("cde", 2)

	got := explicitLengthCost(store, 5.0, 1.0)
	want := explicitLengthLeafCost(2, 5.0, 1.0) + explicitLengthLeafCost(3, 5.0, 1.0)
	assert.InDelta(t, want, got, 1e-9)
}
