package zeroarg

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/barnettsmart/mentalpoker/curve"
	"github.com/barnettsmart/mentalpoker/pedersen"
	"github.com/barnettsmart/mentalpoker/transcript"
)

// buildZeroSumWitness builds an m-column, n-row pair of matrices A, B
// whose bilinear cross-sum is zero by construction: the first m-1
// columns are random, and the last column of B is solved for so that
// the running total cancels out exactly.
func buildZeroSumWitness(group curve.Group, m, n int) ([][]*curve.Scalar, [][]*curve.Scalar) {
	A := make([][]*curve.Scalar, m)
	B := make([][]*curve.Scalar, m)
	for i := 0; i < m; i++ {
		A[i] = make([]*curve.Scalar, n)
		for t := range A[i] {
			A[i][t] = group.RandomScalar()
		}
	}
	for i := 0; i < m-1; i++ {
		B[i] = make([]*curve.Scalar, n)
		for t := range B[i] {
			B[i][t] = group.RandomScalar()
		}
	}

	// Force A[m-1] = (1, 0, ..., 0) so <A[m-1], B[m-1]> = B[m-1][0].
	A[m-1] = make([]*curve.Scalar, n)
	A[m-1][0] = group.NewScalar().SetInt64(1)
	for t := 1; t < n; t++ {
		A[m-1][t] = group.NewScalar().SetInt64(0)
	}

	running := group.NewScalar().SetInt64(0)
	for i := 0; i < m-1; i++ {
		for t := 0; t < n; t++ {
			term := group.NewScalar().Multiply(A[i][t], B[i][t])
			running = group.NewScalar().Add(running, term)
		}
	}

	B[m-1] = make([]*curve.Scalar, n)
	B[m-1][0] = group.NewScalar().Negate(running)
	for t := 1; t < n; t++ {
		B[m-1][t] = group.RandomScalar()
	}

	return A, B
}

func setupZeroArg(t *testing.T, m, n int) (curve.Group, pedersen.CommitKey, [][]*curve.Scalar, []*curve.Scalar, [][]*curve.Scalar, []*curve.Scalar, Statement) {
	group := curve.Ristretto255()
	ck, err := pedersen.Setup(rand.Reader, group, n)
	require.NoError(t, err)

	A, B := buildZeroSumWitness(group, m, n)
	RA := make([]*curve.Scalar, m)
	RB := make([]*curve.Scalar, m)
	CA := make([]curve.Element, m)
	CB := make([]curve.Element, m)
	for i := 0; i < m; i++ {
		RA[i] = group.RandomScalar()
		RB[i] = group.RandomScalar()
		CA[i], err = ck.Commit(A[i], RA[i])
		require.NoError(t, err)
		CB[i], err = ck.Commit(B[i], RB[i])
		require.NoError(t, err)
	}

	stmt := Statement{CA: CA, CB: CB, M: m, N: n}
	return group, ck, A, RA, B, RB, stmt
}

func TestZeroArgumentRoundTrip(t *testing.T) {
	const m, n = 3, 2
	group, ck, A, RA, B, RB, stmt := setupZeroArg(t, m, n)

	wit := Witness{A: A, RA: RA, B: B, RB: RB}
	proof, err := Prove(group, ck, PlainInnerProduct, transcript.New([]byte("s")), stmt, wit)
	require.NoError(t, err)

	err = Verify(group, ck, PlainInnerProduct, transcript.New([]byte("s")), stmt, proof)
	require.NoError(t, err)
}

func TestZeroArgumentRejectsTamperedStatement(t *testing.T) {
	const m, n = 3, 2
	group, ck, A, RA, B, RB, stmt := setupZeroArg(t, m, n)

	wit := Witness{A: A, RA: RA, B: B, RB: RB}
	proof, err := Prove(group, ck, PlainInnerProduct, transcript.New([]byte("s")), stmt, wit)
	require.NoError(t, err)

	stmt.CA[0] = group.Random()
	err = Verify(group, ck, PlainInnerProduct, transcript.New([]byte("s")), stmt, proof)
	require.Error(t, err)
}
