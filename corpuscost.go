package morfessor

import "math"

// corpusLeafCost is one leaf's contribution to the corpus cost: the coded
// length of every occurrence of this morph in the corpus, assuming each
// token is drawn independently from the multinomial count/totalMorphTokens
// over all leaf types.
func corpusLeafCost(count, totalMorphTokens uint64) float64 {
	if count == 0 {
		return 0
	}
	return float64(count) * (math.Log2(float64(totalMorphTokens)) - math.Log2(float64(count)))
}

// corpusCost sums corpusLeafCost over every leaf in store; used by
// CostModel.Recompute.
func corpusCost(store *Store, totalMorphTokens uint64) float64 {
	var sum float64
	for _, n := range store.nodes {
		if n.IsLeaf() {
			sum += corpusLeafCost(n.Count, totalMorphTokens)
		}
	}
	return sum
}

// lexiconOrderingAdjustment is the correction term applied to the lexicon
// cost to account for the fact that the order in which morph types are
// listed in the lexicon carries no information — it uses the first term
// of Stirling's approximation to log(U!).
func lexiconOrderingAdjustment(uniqueMorphTypes int) float64 {
	if uniqueMorphTypes == 0 {
		return 0
	}
	u := float64(uniqueMorphTypes)
	return (u * (1 - math.Log(u))) / math.Ln2
}
