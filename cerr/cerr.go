// Package cerr collects the sentinel and typed errors shared across
// this module's cryptographic packages.
package cerr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShuffleStatement is returned when a shuffle statement's
	// ciphertext vectors do not match the claimed m*n dimensions.
	ErrInvalidShuffleStatement = errors.New("invalid shuffle statement")
	// ErrInvalidVectorLength is returned when two vectors that must be
	// the same length are not.
	ErrInvalidVectorLength = errors.New("invalid vector length")
	// ErrCommitKeyTooShort is returned when a commitment key does not
	// carry enough generators for the vector being committed to.
	ErrCommitKeyTooShort = errors.New("commit key too short")
	// ErrArithmetic is returned for group/field operations that cannot
	// be completed, such as inverting a zero scalar.
	ErrArithmetic = errors.New("arithmetic error")
	// ErrSerialization is returned when a wire encoding cannot be
	// parsed back into its Go representation.
	ErrSerialization = errors.New("serialization error")
)

// ProofVerificationError reports which proof stage rejected a proof.
// Stage names are kept stable across refactors since they may be
// surfaced to callers as part of a protocol trace.
type ProofVerificationError struct {
	Stage string
}

func (e *ProofVerificationError) Error() string {
	return fmt.Sprintf("proof verification failed: %s", e.Stage)
}

// NewProofVerificationError constructs a ProofVerificationError for
// the named stage.
func NewProofVerificationError(stage string) error {
	return &ProofVerificationError{Stage: stage}
}
