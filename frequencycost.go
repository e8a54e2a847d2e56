package morfessor

import "math"

// implicitFrequencyCost is the lexicon frequency-cost term when
// frequencies are modeled implicitly: the cost of describing, for each
// unique morph type, how many of the total_morph_tokens tokens it
// accounts for, without describing the frequencies themselves explicitly.
// It depends only on the two global counters, not on any individual leaf,
// which is why — unlike the explicit variant — it cannot be maintained as
// a sum of per-leaf contributions; it is always computed directly from T
// and U.
//
// For small corpora (T < 100), and whenever U <= 2 or T-U <= 1 (where the
// approximation below would take log2 of a non-positive value), this is
// the exact log2 of the binomial coefficient C(T-1, U-1), computed via
// log-gamma to avoid overflowing intermediate factorials. Otherwise it
// uses a fast closed-form approximation.
//
// The approximation is NOT the textbook Stirling approximation for
// log2 C(T-1,U-1), which would be
//
//	(T-1)*log2(T-1) - (U-1)*log2(U-1) - (T-U)*log2(T-U)
//
// it is the formula used by the reference implementation (see
// morph_node.cc, ProbabilityFromImplicitFrequencies):
//
//	(T-1)*log2(T-2) - (U-1)*log2(U-2) - (T-U)*log2(T-U-1)
//
// This is kept identical to the reference on purpose, since spec §9
// calls out this formula as the one the test fixtures assume.
func implicitFrequencyCost(totalMorphTokens uint64, uniqueMorphTypes int) float64 {
	t := float64(totalMorphTokens)
	u := float64(uniqueMorphTypes)

	if totalMorphTokens == 0 || uniqueMorphTypes == 0 {
		return 0
	}

	if totalMorphTokens < 100 || uniqueMorphTypes <= 2 || totalMorphTokens <= uint64(uniqueMorphTypes)+1 {
		return log2BinomialCoefficient(totalMorphTokens-1, uint64(uniqueMorphTypes-1))
	}

	return (t-1)*math.Log2(t-2) - (u-1)*math.Log2(u-2) - (t-u)*math.Log2(t-u-1)
}

// log2BinomialCoefficient computes log2 C(n,k) exactly via log-gamma,
// which is the standard way to evaluate a binomial coefficient's
// logarithm without materializing the (potentially huge) factorials
// themselves. No third-party dependency is needed for this: math.Lgamma
// is the exact right tool and is what the stdlib exists for here.
func log2BinomialCoefficient(n, k uint64) float64 {
	if k > n {
		return math.Inf(1)
	}
	lgN1, _ := math.Lgamma(float64(n) + 1)
	lgK1, _ := math.Lgamma(float64(k) + 1)
	lgNK1, _ := math.Lgamma(float64(n-k) + 1)
	return (lgN1 - lgK1 - lgNK1) / math.Ln2
}

// explicitFrequencyLeafCost is one leaf's contribution to the explicit
// frequency-cost term under the hapax-legomena prior p: the coded length
// of describing that this particular morph type occurs exactly count
// times, under a prior that favors rare (hapax legomena) morphs.
func explicitFrequencyLeafCost(count uint64, hapaxLegomenaPrior float64) float64 {
	e := math.Log2(1 - hapaxLegomenaPrior)
	c := float64(count)
	return -math.Log2(math.Pow(c, e) - math.Pow(c+1, e))
}

// explicitFrequencyCost sums explicitFrequencyLeafCost over every leaf in
// store; used by CostModel.Recompute for periodic full reconciliation.
func explicitFrequencyCost(store *Store, hapaxLegomenaPrior float64) float64 {
	var sum float64
	for _, n := range store.nodes {
		if n.IsLeaf() {
			sum += explicitFrequencyLeafCost(n.Count, hapaxLegomenaPrior)
		}
	}
	return sum
}
