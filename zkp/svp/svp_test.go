package svp

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/barnettsmart/mentalpoker/curve"
	"github.com/barnettsmart/mentalpoker/pedersen"
	"github.com/barnettsmart/mentalpoker/transcript"
)

func buildStatement(t *testing.T, n int) (curve.Group, pedersen.CommitKey, Statement, Witness) {
	group := curve.Ristretto255()
	ck, err := pedersen.Setup(rand.Reader, group, n)
	require.NoError(t, err)

	a := make([]*curve.Scalar, n)
	product := group.NewScalar().SetInt64(1)
	for i := range a {
		a[i] = group.NewScalar().SetInt64(int64(2 + i))
		product = group.NewScalar().Multiply(product, a[i])
	}
	ra := group.RandomScalar()
	ca, err := ck.Commit(a, ra)
	require.NoError(t, err)

	stmt := Statement{CA: ca, B: product, N: n}
	wit := Witness{A: a, RA: ra}
	return group, ck, stmt, wit
}

func TestSingleValueProductRoundTrip(t *testing.T) {
	group, ck, stmt, wit := buildStatement(t, 4)

	proof, err := Prove(group, ck, transcript.New([]byte("s")), stmt, wit)
	require.NoError(t, err)

	err = Verify(group, ck, transcript.New([]byte("s")), stmt, proof)
	require.NoError(t, err)
}

func TestSingleValueProductRejectsWrongTarget(t *testing.T) {
	group, ck, stmt, wit := buildStatement(t, 4)

	proof, err := Prove(group, ck, transcript.New([]byte("s")), stmt, wit)
	require.NoError(t, err)

	stmt.B = group.NewScalar().Add(stmt.B, group.NewScalar().SetInt64(1))
	err = Verify(group, ck, transcript.New([]byte("s")), stmt, proof)
	require.Error(t, err)
}
