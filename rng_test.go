package morfessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGPermuteIsDeterministicForAFixedSeed(t *testing.T) {
	words := []string{"re", "open", "do", "try", "ing"}

	a := newRNG(5).permute(words)
	b := newRNG(5).permute(words)
	assert.Equal(t, a, b)
	assert.ElementsMatch(t, words, a)
}

func TestRNGPermuteDoesNotMutateInput(t *testing.T) {
	words := []string{"re", "open", "do"}
	original := append([]string(nil), words...)

	newRNG(1).permute(words)

	assert.Equal(t, original, words)
}
