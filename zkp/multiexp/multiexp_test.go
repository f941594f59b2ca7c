package multiexp

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/barnettsmart/mentalpoker/curve"
	"github.com/barnettsmart/mentalpoker/elgamal"
	"github.com/barnettsmart/mentalpoker/pedersen"
	"github.com/barnettsmart/mentalpoker/transcript"
)

func buildStatement(t *testing.T, m, n int) (curve.Group, pedersen.CommitKey, Statement, Witness) {
	group := curve.Ristretto255()
	params := elgamal.Parameters{Group: group}
	ck, err := pedersen.Setup(rand.Reader, group, n)
	require.NoError(t, err)
	kp := elgamal.KeyGen(rand.Reader, params)

	A := make([][]*curve.Scalar, m)
	RA := make([]*curve.Scalar, m)
	CA := make([]curve.Element, m)
	C := make([][]elgamal.Ciphertext, m)
	target := elgamal.Identity(params)
	for j := 0; j < m; j++ {
		A[j] = make([]*curve.Scalar, n)
		C[j] = make([]elgamal.Ciphertext, n)
		for k := range A[j] {
			A[j][k] = group.NewScalar().SetInt64(int64(2 + j + k))
			C[j][k] = elgamal.Encrypt(params, kp.PK, group.Random(), group.RandomScalar())
			target = elgamal.Add(params, target, elgamal.ScalarMul(params, C[j][k], A[j][k]))
		}
		RA[j] = group.RandomScalar()
		CA[j], err = ck.Commit(A[j], RA[j])
		require.NoError(t, err)
	}

	rho := group.RandomScalar()
	target = elgamal.Add(params, target, elgamal.Encrypt(params, kp.PK, group.Identity(), rho))

	stmt := Statement{Params: params, PK: kp.PK, CA: CA, C: C, Target: target, M: m, N: n}
	wit := Witness{A: A, RA: RA, Rho: rho}
	return group, ck, stmt, wit
}

func TestMultiExponentiationRoundTrip(t *testing.T) {
	group, ck, stmt, wit := buildStatement(t, 2, 2)

	proof, err := Prove(group, ck, transcript.New([]byte("s")), stmt, wit)
	require.NoError(t, err)

	err = Verify(group, ck, transcript.New([]byte("s")), stmt, proof)
	require.NoError(t, err)
}

func TestMultiExponentiationRejectsWrongTarget(t *testing.T) {
	group, ck, stmt, wit := buildStatement(t, 2, 2)

	proof, err := Prove(group, ck, transcript.New([]byte("s")), stmt, wit)
	require.NoError(t, err)

	stmt.Target.C2 = group.Random()
	err = Verify(group, ck, transcript.New([]byte("s")), stmt, proof)
	require.Error(t, err)
}
