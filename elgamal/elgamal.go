// Package elgamal implements additively-homomorphic lifted ElGamal
// encryption over a curve.Group, following the single-ciphertext
// construction in the top-level encryptVote helper this module
// generalizes to arbitrary group elements as plaintexts (as required
// by a card protocol, where the plaintext is a card's group element
// rather than a small integer).
package elgamal

import (
	"io"

	"github.com/barnettsmart/mentalpoker/curve"
)

// Parameters fixes the group a keypair and ciphertexts are defined
// over.
type Parameters struct {
	Group curve.Group
}

// KeyPair is an ElGamal secret/public key pair: PK = SK * G.
type KeyPair struct {
	SK *curve.Scalar
	PK curve.Element
}

// Ciphertext is a lifted ElGamal ciphertext (C1, C2) = (rG, M + rPK).
type Ciphertext struct {
	C1 curve.Element
	C2 curve.Element
}

// KeyGen samples a fresh keypair.
func KeyGen(rng io.Reader, params Parameters) KeyPair {
	sk := params.Group.RandomScalar()
	pk := params.Group.Element().BaseScale(sk)
	return KeyPair{SK: sk, PK: pk}
}

// Encrypt encrypts plaintext m under pk with the given randomness r.
func Encrypt(params Parameters, pk curve.Element, m curve.Element, r *curve.Scalar) Ciphertext {
	c1 := params.Group.Element().BaseScale(r)
	mask := params.Group.Element().Scale(pk, r)
	c2 := params.Group.Element().Add(m, mask)
	return Ciphertext{C1: c1, C2: c2}
}

// Decrypt recovers the plaintext element from a ciphertext using the
// secret key, i.e. computes C2 - SK*C1.
func Decrypt(params Parameters, sk *curve.Scalar, c Ciphertext) curve.Element {
	shared := params.Group.Element().Scale(c.C1, sk)
	return params.Group.Element().Subtract(c.C2, shared)
}

// Identity returns the neutral element of the ciphertext group, i.e.
// the encryption of the identity plaintext under zero randomness.
func Identity(params Parameters) Ciphertext {
	id := params.Group.Identity()
	return Ciphertext{C1: id, C2: id}
}

// Add homomorphically combines two ciphertexts encrypted under the
// same public key: Add(Enc(a), Enc(b)) = Enc(a+b).
func Add(params Parameters, a, b Ciphertext) Ciphertext {
	return Ciphertext{
		C1: params.Group.Element().Add(a.C1, b.C1),
		C2: params.Group.Element().Add(a.C2, b.C2),
	}
}

// ScalarMul homomorphically scales a ciphertext: ScalarMul(Enc(a), s)
// = Enc(s*a).
func ScalarMul(params Parameters, c Ciphertext, s *curve.Scalar) Ciphertext {
	return Ciphertext{
		C1: params.Group.Element().Scale(c.C1, s),
		C2: params.Group.Element().Scale(c.C2, s),
	}
}

// Rerandomize adds an encryption of the identity under fresh
// randomness r to c, producing a ciphertext indistinguishable from a
// freshly-encrypted one but decrypting to the same plaintext.
func Rerandomize(params Parameters, pk curve.Element, c Ciphertext, r *curve.Scalar) Ciphertext {
	blank := Encrypt(params, pk, params.Group.Identity(), r)
	return Add(params, c, blank)
}
