package morfessor

import "math"

// endOfMorphMarker is the synthetic character standing in for the
// end-of-morph boundary when a mode's length term is implicit (spec §4.B).
const endOfMorphMarker = '#'

// LetterTable is a maximum-likelihood character model built from the
// current leaf set of a Store. Cost[c] is -log2(p(c)); EndOfMorph is the
// same quantity for the synthetic end-of-morph marker, valid only when
// the table was built with withEndMarker set. Rebuilding this table is relatively
// expensive (it's a full pass over every leaf and every character in
// every leaf), which is why it is only rebuilt once per optimizer epoch
// rather than incrementally maintained — see BuildLetterTable.
type LetterTable struct {
	Cost       map[rune]float64
	EndOfMorph float64
	hasEnd     bool
}

// Prob returns p(c) = 2^-Cost[c]. It is mostly useful for tests asserting
// the letter-probability law (sum of p(c) over all modeled characters,
// including '#' when present, equals 1 within tolerance).
func (t LetterTable) Prob(c rune) float64 {
	cost, ok := t.Cost[c]
	if !ok {
		return 0
	}
	return math.Exp2(-cost)
}

// EndOfMorphProb returns 2^-EndOfMorph, or 0 if the table was built
// without the end marker.
func (t LetterTable) EndOfMorphProb() float64 {
	if !t.hasEnd {
		return 0
	}
	return math.Exp2(-t.EndOfMorph)
}

// BuildLetterTable recomputes the letter-probability table from scratch
// over every leaf in store. When withEndMarker is true, the table also
// treats '#' as appended once to every leaf, so that its count
// contributes TotalMorphTokens occurrences to the total and the table
// gains an EndOfMorph entry (spec §4.B). This full rebuild is what the
// optimizer performs once at the start of every epoch — the reference
// implementation's note applies here too: incremental maintenance of
// per-character totals across arbitrary splits is both more expensive to
// get right and more exposed to floating-point drift than a periodic
// full rebuild.
func BuildLetterTable(store *Store, totalMorphTokens uint64, withEndMarker bool) LetterTable {
	counts := make(map[rune]uint64)
	var totalLetters uint64

	for _, n := range store.nodes {
		if !n.IsLeaf() {
			continue
		}
		for _, c := range n.Morph {
			counts[c] += n.Count
			totalLetters += n.Count
		}
	}

	if withEndMarker {
		totalLetters += totalMorphTokens
	}

	logTotal := math.Log2(float64(totalLetters))

	table := LetterTable{Cost: make(map[rune]float64, len(counts)+1)}
	for c, n := range counts {
		table.Cost[c] = logTotal - math.Log2(float64(n))
	}

	if withEndMarker {
		table.hasEnd = true
		table.EndOfMorph = logTotal - math.Log2(float64(totalMorphTokens))
		table.Cost[endOfMorphMarker] = table.EndOfMorph
	}

	return table
}
