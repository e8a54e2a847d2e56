package morfessor

import "math"

// Decoder segments unseen words using a trained Tree's known morphs
// (spec §4.F, "component F"). It is a thin, read-only view over the
// tree: it never mutates the forest or the cost model, only queries
// Store.At and Cost.TotalMorphTokens.
type Decoder struct {
	Tree *Tree
}

// NewDecoder returns a Decoder over tree.
func NewDecoder(tree *Tree) *Decoder {
	return &Decoder{Tree: tree}
}

// Segment returns word's best segmentation as a single space-separated
// string, found via a Viterbi dynamic program over every substring of
// word that is a known leaf morph (internal, already-split nodes are not
// themselves valid segments). It is grounded verbatim on segmentation.cc's
// SegmentTestCorpus: cost accrues in natural-log units of
// log(total_morph_tokens) - log(count) per known morph, and any
// single unknown letter is accepted at a fixed "bad likelihood" penalty
// so that a word containing characters absent from training can still
// be segmented, just expensively.
//
// Segment panics via assertContract if word is empty or if the tree has
// no morph tokens yet (Segment requires a trained tree).
func (d *Decoder) Segment(word string) string {
	assertContract(word != "", ErrEmptyWord, word, "Segment requires a non-empty word")
	total := d.Tree.Cost.TotalMorphTokens
	assertContract(total > 0, ErrMorphAbsent, word, "Segment requires a tree with at least one morph token")

	runes := []rune(word)
	n := len(runes)

	logTokenCount := math.Log(float64(total))
	badLikelihood := float64(n+1) * logTokenCount
	pseudoInfiniteCost := float64(n+1) * badLikelihood

	delta := make([]float64, n+1)
	psi := make([]int, n+1)

	for end := 1; end <= n; end++ {
		bestDelta := pseudoInfiniteCost
		bestLength := 0

		for length := 1; length <= end; length++ {
			morph := string(runes[end-length : end])

			var morphCost float64
			if node, ok := d.Tree.Store.At(morph); ok && node.IsLeaf() {
				morphCost = logTokenCount - math.Log(float64(node.Count))
			} else if length == 1 {
				morphCost = badLikelihood
			} else {
				continue
			}

			current := delta[end-length] + morphCost
			if current < bestDelta {
				bestDelta = current
				bestLength = length
			}
		}

		delta[end] = bestDelta
		psi[end] = bestLength
	}

	var segments []string
	end := n
	for psi[end] != 0 {
		length := psi[end]
		segments = append([]string{string(runes[end-length : end])}, segments...)
		end -= length
	}

	out := segments[0]
	for _, s := range segments[1:] {
		out += " " + s
	}
	return out
}

// SegmentCorpus segments every word in corpus and returns the results in
// the same order.
func (d *Decoder) SegmentCorpus(corpus Corpus) []string {
	pairs := corpus.Pairs()
	out := make([]string, len(pairs))
	for i, p := range pairs {
		out[i] = d.Segment(p.Word)
	}
	return out
}
