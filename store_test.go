package morfessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreEmptyContainsNothing(t *testing.T) {
	store := NewStore()
	assert.False(t, store.Contains("anything"))
	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.Leaves())
}

func TestStoreEmplaceCreatesThenAdds(t *testing.T) {
	store := NewStore()
	store.Emplace("reopen", 5)
	require.True(t, store.Contains("reopen"))
	assert.Equal(t, uint64(5), store.Count("reopen"))

	store.Emplace("reopen", 2)
	assert.Equal(t, uint64(7), store.Count("reopen"))
}

func TestStoreEmplaceRejectsEmptyMorphOrZeroFrequency(t *testing.T) {
	store := NewStore()
	assert.Panics(t, func() { store.Emplace("", 1) })
	assert.Panics(t, func() { store.Emplace("word", 0) })
}

func TestStoreAtReturnsPresenceFlag(t *testing.T) {
	store := NewStore()
	_, ok := store.At("missing")
	assert.False(t, ok)

	store.Emplace("word", 3)
	n, ok := store.At("word")
	require.True(t, ok)
	assert.Equal(t, uint64(3), n.Count)
	assert.True(t, n.IsLeaf())
}

func TestStoreLeavesOmitsInternalNodes(t *testing.T) {
	store := NewStore()
	store.Emplace("re", 1)
	store.Emplace("open", 1)
	// Manually wire an internal node to exercise Leaves' leaf filter
	// without going through Tree.Split.
	internal := store.getOrCreate("reopen")
	internal.Count = 1
	internal.Left = "re"
	internal.Right = "open"

	leaves := store.Leaves()
	var morphs []string
	for _, p := range leaves {
		morphs = append(morphs, p.Word)
	}
	assert.ElementsMatch(t, []string{"re", "open"}, morphs)
}
