package morfessor

import (
	"errors"
	"fmt"
)

// Sentinel errors for contract violations. Every mutating operation on a
// Tree documents the preconditions a caller must uphold; violating one is
// a caller bug, not a recoverable runtime condition, so these are raised
// via panic (see ContractViolation) rather than returned.
var (
	ErrMorphAbsent          = errors.New("morph not present in store")
	ErrNotLeaf              = errors.New("morph is not a leaf")
	ErrSplitIndexOutOfRange = errors.New("split index out of range")
	ErrEmptyMorph           = errors.New("morph string is empty")
	ErrNegativeCount        = errors.New("adjustment would drive count negative")
	ErrAsymmetricChildren   = errors.New("node has exactly one child, splits must be binary")

	// ErrEmptyWord and ErrNonPositiveFrequency are corpus-malformed
	// errors: they are reported by the caller at ingestion time, before
	// the core is ever entered (spec: "Corpus malformed... core is not
	// entered"), via SlicePairs.Validate.
	ErrEmptyWord            = errors.New("corpus word is empty")
	ErrNonPositiveFrequency = errors.New("corpus frequency is not positive")
)

// ContractViolation wraps one of the Err* sentinels above with the
// specific morph and detail that triggered it, and is the value panic'd
// by every contract-checking assertion in this package. A caller that
// wants to treat a contract violation as recoverable can recover() and
// errors.As into *ContractViolation; the default, uncaught, is a crash,
// which is the same effective behavior as the reference implementation's
// assert().
type ContractViolation struct {
	Err    error
	Morph  string
	Detail string
}

func (c *ContractViolation) Error() string {
	if c.Detail == "" {
		return fmt.Sprintf("%v: morph %q", c.Err, c.Morph)
	}
	return fmt.Sprintf("%v: morph %q: %s", c.Err, c.Morph, c.Detail)
}

func (c *ContractViolation) Unwrap() error { return c.Err }

func assertContract(cond bool, err error, morph, detail string) {
	if cond {
		return
	}
	panic(&ContractViolation{Err: err, Morph: morph, Detail: detail})
}
