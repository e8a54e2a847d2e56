// Package morfessor implements the core of the Morfessor Baseline family
// of unsupervised morphological segmentation algorithms.
//
// # Motivation
//
// Given a corpus of (word, frequency) pairs, the goal is to discover a
// small inventory of sub-word units ("morphs") such that every word can be
// written as a concatenation of morphs from that inventory, and the total
// description length of the inventory plus the corpus (encoded against the
// inventory) is as small as possible. This is a direct application of the
// Minimum Description Length principle: the best model is the one that
// lets you describe the data most compactly, counting the cost of
// describing the model itself.
//
// # Shape of the model
//
// Every word starts as a single morph (itself). The optimizer considers
// splitting it into two substrings at every possible position, recurses
// into both halves of the split it keeps, and repeats until no further split lowers
// the total cost. The result is a binary split tree per word, but because
// many words share common sub-morphs ("reopen" and "redo" both produce
// "re"), the trees are not disjoint: they are realized as one forest where
// a node's children are referenced by their morph string, not by pointer.
// This is deliberate — it lets the same "re" node be the child of both
// "reopen" and "redo" without any node owning a specific parent, and it
// lets the store relocate or rebuild entries freely between operations,
// since every reference survives a relocation as long as the key doesn't
// change.
//
// Given a word w of length n, consider the n-1 candidate split points. For
// each one the optimizer must evaluate the total description-length cost
// of the whole forest with that split applied, which means the cost model
// (lexicon cost + corpus cost, four variants depending on which of
// frequency/length are modeled implicitly vs. explicitly) has to be kept
// incrementally consistent with the forest across every Split, unsplit,
// and count adjustment — recomputing it from scratch on every trial split
// would make the optimizer's inner loop quadratic in the size of the
// inventory for every single word.
//
// # Package layout
//
//	corpus.go                    the (word, frequency) sequence contract
//	node.go, store.go, tree.go   the segmentation forest and its invariants
//	letterprobs.go               per-character -log2(p) table
//	costmodel.go, costhooks.go   incremental lexicon/corpus cost bookkeeping
//	frequencycost.go             implicit/explicit frequency cost terms
//	lengthcost.go                implicit/explicit length cost terms
//	stringcost.go                per-morph string cost term
//	corpuscost.go                corpus cost + lexicon ordering adjustment
//	rng.go, optimizer.go         the randomized greedy recursive optimizer
//	viterbi.go                   minimum-cost segmentation of unseen words
//	report.go                    the textual training report
//	model.go                     the public Model type tying it together
//
// # References
//
// Creutz, M. and Lagus, K., "Unsupervised Morpheme Segmentation and
// Morphology Induction from Text Corpora Using Morfessor 1.0", 2005. The
// formulas implemented here follow the reference C++ reimplementation by
// Derek Felson rather than deriving the Stirling approximation from first
// principles — see the comment on implicitFrequencyCost for the one place
// where that reimplementation deliberately departs from the textbook
// approximation.
package morfessor
