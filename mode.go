package morfessor

// AlgorithmMode selects which of the four lexicon-cost subterm
// combinations the cost model uses. The names and meanings match the
// Morfessor Baseline family exactly: "Freq" switches the frequency term
// from implicit to explicit, "Length" switches the length term from
// implicit to explicit, and the string-cost term includes the end-of-morph
// marker precisely when length is implicit.
type AlgorithmMode int

const (
	// Baseline uses implicit frequency, implicit length, and includes the
	// end-of-morph marker in the string cost.
	Baseline AlgorithmMode = iota
	// BaselineFreq uses explicit frequency, implicit length, and includes
	// the end-of-morph marker in the string cost.
	BaselineFreq
	// BaselineLength uses implicit frequency, explicit length, and omits
	// the end-of-morph marker from the string cost.
	BaselineLength
	// BaselineFreqLength uses explicit frequency, explicit length, and
	// omits the end-of-morph marker from the string cost.
	BaselineFreqLength
)

func (m AlgorithmMode) String() string {
	switch m {
	case Baseline:
		return "Baseline"
	case BaselineFreq:
		return "BaselineFreq"
	case BaselineLength:
		return "BaselineLength"
	case BaselineFreqLength:
		return "BaselineFreqLength"
	default:
		return "AlgorithmMode(unknown)"
	}
}

// explicitFrequency reports whether this mode uses the explicit frequency
// term (hapax-legomena prior) rather than the implicit one.
func (m AlgorithmMode) explicitFrequency() bool {
	return m == BaselineFreq || m == BaselineFreqLength
}

// explicitLength reports whether this mode uses the explicit length term
// (Gamma prior) rather than the implicit one.
func (m AlgorithmMode) explicitLength() bool {
	return m == BaselineLength || m == BaselineFreqLength
}

// includeEndMarker reports whether the string-cost term, and therefore the
// letter-probability table it draws from, should include the end-of-morph
// marker '#'. This is the complement of explicitLength: the end marker is
// how implicit length is encoded into the string cost at all.
func (m AlgorithmMode) includeEndMarker() bool {
	return !m.explicitLength()
}
