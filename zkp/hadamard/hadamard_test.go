package hadamard

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/barnettsmart/mentalpoker/curve"
	"github.com/barnettsmart/mentalpoker/internal/vec"
	"github.com/barnettsmart/mentalpoker/pedersen"
	"github.com/barnettsmart/mentalpoker/transcript"
)

func buildStatement(t *testing.T, m, n int) (curve.Group, pedersen.CommitKey, Statement, Witness) {
	group := curve.Ristretto255()
	ck, err := pedersen.Setup(rand.Reader, group, n)
	require.NoError(t, err)

	A := make([][]*curve.Scalar, m)
	RA := make([]*curve.Scalar, m)
	CA := make([]curve.Element, m)
	for i := 0; i < m; i++ {
		A[i] = make([]*curve.Scalar, n)
		for k := range A[i] {
			A[i][k] = group.NewScalar().SetInt64(int64(2 + i + k))
		}
		RA[i] = group.RandomScalar()
		CA[i], err = ck.Commit(A[i], RA[i])
		require.NoError(t, err)
	}

	b := A[0]
	for i := 1; i < m; i++ {
		var err error
		b, err = vec.Hadamard(group, b, A[i])
		require.NoError(t, err)
	}
	rb := group.RandomScalar()
	cb, err := ck.Commit(b, rb)
	require.NoError(t, err)

	stmt := Statement{CA: CA, CB: cb, M: m, N: n}
	wit := Witness{A: A, RA: RA, B: b, RB: rb}
	return group, ck, stmt, wit
}

func TestHadamardRoundTrip(t *testing.T) {
	group, ck, stmt, wit := buildStatement(t, 3, 2)

	proof, err := Prove(group, ck, transcript.New([]byte("s")), stmt, wit)
	require.NoError(t, err)

	err = Verify(group, ck, transcript.New([]byte("s")), stmt, proof)
	require.NoError(t, err)
}

func TestHadamardRejectsWrongProduct(t *testing.T) {
	group, ck, stmt, wit := buildStatement(t, 3, 2)

	proof, err := Prove(group, ck, transcript.New([]byte("s")), stmt, wit)
	require.NoError(t, err)

	stmt.CB = group.Random()
	err = Verify(group, ck, transcript.New([]byte("s")), stmt, proof)
	require.Error(t, err)
}
