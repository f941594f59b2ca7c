package cerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProofVerificationErrorMessageNamesStage(t *testing.T) {
	err := NewProofVerificationError("Shuffle")
	require.EqualError(t, err, "proof verification failed: Shuffle")

	var pve *ProofVerificationError
	require.True(t, errors.As(err, &pve))
	require.Equal(t, "Shuffle", pve.Stage)
}

// Stage names are surfaced to callers as part of a protocol trace, so
// this lists the exact strings this module's packages pass in and
// checks that each is carried through to Stage unchanged. It does not
// inspect the call sites themselves.
func TestKnownStageNamesAreStable(t *testing.T) {
	stages := []string{
		"KeyOwnership",
		"RevealToken",
		"Shuffle",
		"Product",
		"Hadamard",
		"Zero",
		"Single Value Product",
		"Multi Exponentiation",
	}
	for _, s := range stages {
		require.Equal(t, s, NewProofVerificationError(s).(*ProofVerificationError).Stage)
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrInvalidShuffleStatement,
		ErrInvalidVectorLength,
		ErrCommitKeyTooShort,
		ErrArithmetic,
		ErrSerialization,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			require.NotErrorIs(t, a, b)
		}
	}
}
