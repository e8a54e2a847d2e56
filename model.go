package morfessor

import (
	"context"
	"io"
	"time"
)

// Model is the package's public entry point: load a corpus, train it,
// then segment new words or read back the trained lexicon. It wires
// together Tree, Optimizer, and Decoder behind a functional-options
// constructor, the same configuration pattern the teacher repo uses for
// its own top-level types.
//
// A Model holds no lock and is not safe for concurrent use.
type Model struct {
	mode AlgorithmMode

	hapaxLegomenaPrior   float64
	lengthPriorMean      float64
	lengthPriorScale     float64
	convergenceThreshold float64
	seed                 int64

	tree    *Tree
	decoder *Decoder
}

// Option configures a Model at construction time.
type Option func(*Model)

// WithHapaxLegomenaPrior overrides the explicit-frequency term's prior
// (default DefaultHapaxLegomenaPrior).
func WithHapaxLegomenaPrior(prior float64) Option {
	return func(m *Model) { m.hapaxLegomenaPrior = prior }
}

// WithLengthPrior overrides the explicit-length term's Gamma prior mean
// and scale (defaults DefaultLengthPriorMean, DefaultLengthPriorScale).
func WithLengthPrior(mean, scale float64) Option {
	return func(m *Model) { m.lengthPriorMean, m.lengthPriorScale = mean, scale }
}

// WithConvergenceThreshold overrides the per-unique-morph epsilon the
// optimizer's epoch-to-epoch cost improvement is compared against
// (default DefaultConvergenceEpsilon).
func WithConvergenceThreshold(epsilon float64) Option {
	return func(m *Model) { m.convergenceThreshold = epsilon }
}

// WithSeed overrides the optimizer's permutation seed, for reproducible
// training runs in tests. Without it, Train seeds the optimizer from
// the system clock, so two runs over the same corpus explore epochs in
// a different order and need not converge to the same tree.
func WithSeed(seed int64) Option {
	return func(m *Model) { m.seed = seed }
}

// NewModel returns a Model in the given AlgorithmMode with every prior
// at its package default, then applies opts in order.
func NewModel(mode AlgorithmMode, opts ...Option) *Model {
	m := &Model{
		mode:                 mode,
		hapaxLegomenaPrior:   DefaultHapaxLegomenaPrior,
		lengthPriorMean:      DefaultLengthPriorMean,
		lengthPriorScale:     DefaultLengthPriorScale,
		convergenceThreshold: DefaultConvergenceEpsilon,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Train loads corpus into a fresh Tree and runs the optimizer to
// convergence (or until ctx is canceled), returning the number of epochs
// run. A malformed corpus (an empty word, or a non-positive frequency)
// is reported as an ordinary error before the core is ever entered,
// distinct from the ContractViolation panics that guard the core's own
// invariants once training is underway (spec §7).
func (m *Model) Train(ctx context.Context, corpus Corpus) (int, error) {
	pairs := corpus.Pairs()
	for _, p := range pairs {
		if p.Word == "" {
			return 0, ErrEmptyWord
		}
		if p.Frequency == 0 {
			return 0, ErrNonPositiveFrequency
		}
	}

	tree := NewTree(m.mode)
	tree.Cost.HapaxLegomenaPrior = m.hapaxLegomenaPrior
	tree.Cost.LengthPriorMean = m.lengthPriorMean
	tree.Cost.LengthPriorScale = m.lengthPriorScale

	for _, p := range pairs {
		tree.Emplace(p.Word, p.Frequency)
	}
	tree.Cost.Recompute(tree.Store)

	m.tree = tree
	m.decoder = NewDecoder(tree)

	seed := m.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opt := NewOptimizer(tree, seed)
	opt.ConvergenceThreshold = m.convergenceThreshold
	return opt.Run(ctx)
}

// Segment returns word's best segmentation under the trained model.
// Segment panics via assertContract if called before Train.
func (m *Model) Segment(word string) string {
	assertContract(m.decoder != nil, ErrMorphAbsent, word, "Segment requires Train to have been called first")
	return m.decoder.Segment(word)
}

// SegmentCorpus segments every word in corpus.
func (m *Model) SegmentCorpus(corpus Corpus) []string {
	assertContract(m.decoder != nil, ErrMorphAbsent, "", "SegmentCorpus requires Train to have been called first")
	return m.decoder.SegmentCorpus(corpus)
}

// OverallCost returns the trained model's current lexicon cost plus
// corpus cost.
func (m *Model) OverallCost() float64 {
	return m.tree.Cost.OverallCost()
}

// LexiconCost returns the trained model's current lexicon cost alone.
func (m *Model) LexiconCost() float64 {
	return m.tree.Cost.LexiconCost()
}

// CorpusCost returns the trained model's current corpus cost alone.
func (m *Model) CorpusCost() float64 {
	return m.tree.Cost.CorpusCost
}

// Leaves returns every leaf morph and its count in the trained lexicon.
func (m *Model) Leaves() []Pair {
	return m.tree.Store.Leaves()
}

// Report writes the trained model's lexicon in the reference
// implementation's plain-text report format.
func (m *Model) Report(w io.Writer) error {
	return WriteReport(w, m.tree)
}
