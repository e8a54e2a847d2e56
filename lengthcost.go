package morfessor

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// implicitLengthLeafCost is one leaf's contribution to the lexicon
// length-cost term when length is modeled implicitly: the cost of the
// synthetic end-of-morph marker, drawn from table (which must have been
// built with withEndMarker set). It is the same value for every leaf, which is
// what makes this term trivially additive — U copies of table.EndOfMorph.
func implicitLengthLeafCost(table LetterTable) float64 {
	return table.EndOfMorph
}

// implicitLengthCost sums implicitLengthLeafCost over every leaf in
// store; used by CostModel.Recompute.
func implicitLengthCost(store *Store, table LetterTable) float64 {
	var sum float64
	for _, n := range store.nodes {
		if n.IsLeaf() {
			sum += implicitLengthLeafCost(table)
		}
	}
	return sum
}

// explicitLengthLeafCost is one leaf's contribution to the lexicon
// length-cost term when length is modeled explicitly: the coded length of
// describing that this particular morph has the given length, under a
// Gamma(alpha, beta) prior with alpha = mean/scale + 1.
//
// gonum's distuv.Gamma is rate-parameterized (its Beta field is 1/scale),
// while the reference implementation's boost::math::gamma_distribution is
// scale-parameterized — the spec's beta is the latter, so it is inverted
// here before handing it to gonum.
func explicitLengthLeafCost(length int, priorMean, priorScale float64) float64 {
	alpha := priorMean/priorScale + 1
	g := distuv.Gamma{Alpha: alpha, Beta: 1 / priorScale}
	return -g.LogProb(float64(length)) / math.Ln2
}

// explicitLengthCost sums explicitLengthLeafCost over every leaf in
// store; used by CostModel.Recompute.
func explicitLengthCost(store *Store, priorMean, priorScale float64) float64 {
	var sum float64
	for _, n := range store.nodes {
		if n.IsLeaf() {
			sum += explicitLengthLeafCost(len([]rune(n.Morph)), priorMean, priorScale)
		}
	}
	return sum
}
