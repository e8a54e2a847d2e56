package morfessor

// This file implements CostModel's incremental maintenance side: the
// adjust* hooks Tree.AdjustMorphCount calls on every leaf transition, so
// that cost accumulators stay current without an O(U) rescan per
// mutation. The call order and sign conventions are grounded directly on
// segmentation.cc's AdjustMorphCount: leaf removal is signaled with the
// leaf's OLD count negated, leaf insertion with its NEW count positive,
// and the two legs are never merged into a single signed delta because
// the frequency-cost and length-cost terms are not always linear in
// count (the explicit-frequency term in particular is a function of
// count itself, not of a difference of counts).
//
// adjustMorphTokenCount and adjustUniqueMorphCount keep the two global
// counters current, together with the parts of the corpus and implicit
// frequency terms that depend on them; the other four hooks mirror the
// corpus term and the three lexicon subterms.
// Every one of them trusts that m.letters already reflects the table
// that was current when the epoch began — they never rebuild it
// themselves, matching the "rebuilt once per epoch" policy.

import "math"

// adjustMorphTokenCount changes T and moves the T*log2(T) part of the
// corpus cost to the new T (see adjustCorpusCost).
func (m *CostModel) adjustMorphTokenCount(signedCount int64) {
	oldTotal := m.TotalMorphTokens
	m.TotalMorphTokens = addSignedUint64(m.TotalMorphTokens, signedCount)
	m.CorpusCost += xLog2x(m.TotalMorphTokens) - xLog2x(oldTotal)
}

// adjustUniqueMorphCount changes U and, under an implicit-frequency mode,
// recomputes the frequency term from the current T and the new U.
func (m *CostModel) adjustUniqueMorphCount(delta int) {
	m.UniqueMorphTypes += delta
	if !m.Mode.explicitFrequency() {
		m.FrequencyCost = implicitFrequencyCost(m.TotalMorphTokens, m.UniqueMorphTypes)
	}
}

// adjustCorpusCost applies the corpus-cost share of a leaf whose count is
// |signedCount|, added if signedCount > 0 and removed if signedCount < 0.
// The corpus cost is kept as T*log2(T) minus the sum of count*log2(count)
// over the leaves: adjustMorphTokenCount maintains the first part as T
// changes and this hook maintains the second, so every leaf's contribution
// reflects the current T. This term has the same formula in every
// AlgorithmMode.
func (m *CostModel) adjustCorpusCost(signedCount int64) {
	if signedCount == 0 {
		return
	}
	contribution := xLog2x(absInt64(signedCount))
	if signedCount > 0 {
		m.CorpusCost -= contribution
	} else {
		m.CorpusCost += contribution
	}
}

func xLog2x(v uint64) float64 {
	if v == 0 {
		return 0
	}
	x := float64(v)
	return x * math.Log2(x)
}

// adjustFrequencyCost applies the frequency-cost contribution of a leaf
// whose count is |signedCount|. Under an explicit-frequency mode this is
// a genuine per-leaf additive term. Under an implicit-frequency mode the
// term is a function of the global counters alone, so it is simply
// recomputed from the current T and U rather than accumulated;
// adjustUniqueMorphCount recomputes it again whenever U changes.
func (m *CostModel) adjustFrequencyCost(signedCount int64) {
	if signedCount == 0 {
		return
	}
	if m.Mode.explicitFrequency() {
		contribution := explicitFrequencyLeafCost(absInt64(signedCount), m.HapaxLegomenaPrior)
		if signedCount > 0 {
			m.FrequencyCost += contribution
		} else {
			m.FrequencyCost -= contribution
		}
		return
	}
	m.FrequencyCost = implicitFrequencyCost(m.TotalMorphTokens, m.UniqueMorphTypes)
}

// adjustLengthCost applies the length-cost contribution of morph's birth
// (born true) or death (born false). Under an explicit-length mode the
// contribution depends on morph's actual rune length; under an
// implicit-length mode every leaf contributes the same end-of-morph
// marker cost.
func (m *CostModel) adjustLengthCost(morph string, born bool) {
	var contribution float64
	if m.Mode.explicitLength() {
		contribution = explicitLengthLeafCost(len([]rune(morph)), m.LengthPriorMean, m.LengthPriorScale)
	} else {
		contribution = implicitLengthLeafCost(m.letters)
	}
	if born {
		m.LengthCost += contribution
	} else {
		m.LengthCost -= contribution
	}
}

// adjustStringCost applies the morph-string-cost contribution of morph's
// birth (added true) or death (added false), under the currently cached
// letter table.
func (m *CostModel) adjustStringCost(morph string, added bool) {
	contribution := stringLeafCost(m.letters, morph)
	if added {
		m.StringCost += contribution
	} else {
		m.StringCost -= contribution
	}
}

func addSignedUint64(u uint64, signed int64) uint64 {
	if signed >= 0 {
		return u + uint64(signed)
	}
	d := uint64(-signed)
	assertContract(d <= u, ErrNegativeCount, "", "total morph token count would go negative")
	return u - d
}

func absInt64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}
