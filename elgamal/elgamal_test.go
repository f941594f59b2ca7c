package elgamal

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/barnettsmart/mentalpoker/curve"
)

func testParams() Parameters {
	return Parameters{Group: curve.Ristretto255()}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	params := testParams()
	kp := KeyGen(rand.Reader, params)

	msg := params.Group.Random()
	r := params.Group.RandomScalar()
	ct := Encrypt(params, kp.PK, msg, r)

	got := Decrypt(params, kp.SK, ct)
	require.True(t, msg.IsEqual(got))
}

func TestHomomorphicAdd(t *testing.T) {
	params := testParams()
	kp := KeyGen(rand.Reader, params)

	m1 := params.Group.Random()
	m2 := params.Group.Random()
	r1 := params.Group.RandomScalar()
	r2 := params.Group.RandomScalar()

	ct1 := Encrypt(params, kp.PK, m1, r1)
	ct2 := Encrypt(params, kp.PK, m2, r2)
	sum := Add(params, ct1, ct2)

	want := params.Group.Element().Add(m1, m2)
	got := Decrypt(params, kp.SK, sum)
	require.True(t, want.IsEqual(got))
}

func TestHomomorphicScalarMul(t *testing.T) {
	params := testParams()
	kp := KeyGen(rand.Reader, params)

	m := params.Group.Random()
	r := params.Group.RandomScalar()
	ct := Encrypt(params, kp.PK, m, r)

	s := params.Group.RandomScalar()
	scaled := ScalarMul(params, ct, s)

	want := params.Group.Element().Scale(m, s)
	got := Decrypt(params, kp.SK, scaled)
	require.True(t, want.IsEqual(got))
}

func TestRerandomizePreservesPlaintext(t *testing.T) {
	params := testParams()
	kp := KeyGen(rand.Reader, params)

	m := params.Group.Random()
	r := params.Group.RandomScalar()
	ct := Encrypt(params, kp.PK, m, r)

	r2 := params.Group.RandomScalar()
	ct2 := Rerandomize(params, kp.PK, ct, r2)

	require.False(t, ct.C1.IsEqual(ct2.C1))
	require.True(t, m.IsEqual(Decrypt(params, kp.SK, ct2)))
}

func TestIdentityIsEncryptionOfIdentity(t *testing.T) {
	params := testParams()
	kp := KeyGen(rand.Reader, params)

	id := Identity(params)
	got := Decrypt(params, kp.SK, id)
	require.True(t, got.IsIdentity())
}
