package transcript

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/barnettsmart/mentalpoker/curve"
)

func TestChallengeScalarDeterministic(t *testing.T) {
	group := curve.Ristretto255()

	t1 := New([]byte("session-a"))
	t1.AbsorbLabeled("msg", []byte("hello"))
	c1 := t1.ChallengeScalar(group)

	t2 := New([]byte("session-a"))
	t2.AbsorbLabeled("msg", []byte("hello"))
	c2 := t2.ChallengeScalar(group)

	require.True(t, c1.IsEqual(c2))
}

func TestChallengeScalarSensitiveToMessage(t *testing.T) {
	group := curve.Ristretto255()

	t1 := New([]byte("session-a"))
	t1.AbsorbLabeled("msg", []byte("hello"))
	c1 := t1.ChallengeScalar(group)

	t2 := New([]byte("session-a"))
	t2.AbsorbLabeled("msg", []byte("goodbye"))
	c2 := t2.ChallengeScalar(group)

	require.False(t, c1.IsEqual(c2))
}

func TestChallengeScalarSensitiveToSessionID(t *testing.T) {
	group := curve.Ristretto255()

	t1 := New([]byte("session-a"))
	c1 := t1.ChallengeScalar(group)

	t2 := New([]byte("session-b"))
	c2 := t2.ChallengeScalar(group)

	require.False(t, c1.IsEqual(c2))
}

func TestSuccessiveChallengesDiffer(t *testing.T) {
	group := curve.Ristretto255()

	tr := New([]byte("session-a"))
	c1 := tr.ChallengeScalar(group)
	c2 := tr.ChallengeScalar(group)
	require.False(t, c1.IsEqual(c2))
}

func TestCloneForksWithoutPerturbingParent(t *testing.T) {
	group := curve.Ristretto255()

	tr := New([]byte("session-a"))
	tr.AbsorbLabeled("base", []byte("x"))

	clone := tr.Clone()
	clone.AbsorbLabeled("extra", []byte("y"))
	cloneChallenge := clone.ChallengeScalar(group)

	parentChallenge := tr.ChallengeScalar(group)
	require.False(t, cloneChallenge.IsEqual(parentChallenge))

	reference := New([]byte("session-a"))
	reference.AbsorbLabeled("base", []byte("x"))
	require.True(t, parentChallenge.IsEqual(reference.ChallengeScalar(group)))
}
