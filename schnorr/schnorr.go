// Package schnorr implements a Schnorr proof of knowledge of a
// discrete logarithm, used as the card protocol's key-ownership proof:
// a player proves knowledge of the secret key behind a public key
// without revealing it. The commit-challenge-respond structure follows
// the sigma protocol in voteproof.Prove/Verify, specialized to a single
// witness and bound to a player identifier via the transcript.
package schnorr

import (
	"github.com/barnettsmart/mentalpoker/curve"
	"github.com/barnettsmart/mentalpoker/transcript"
)

// Proof is a non-interactive Schnorr proof of knowledge of sk such
// that pk = sk*G.
type Proof struct {
	Commitment curve.Element
	Response   *curve.Scalar
}

// Prove constructs a proof that the caller knows sk for pk = sk*G,
// binding the proof to an application-chosen identifier (e.g. a player
// name) via the transcript.
func Prove(group curve.Group, tr *transcript.Transcript, id []byte, pk curve.Element, sk *curve.Scalar) Proof {
	k := group.RandomScalar()
	commitment := group.Element().BaseScale(k)

	tr.AbsorbLabeled("schnorr/id", id)
	tr.AbsorbElement("schnorr/pk", pk)
	tr.AbsorbElement("schnorr/commitment", commitment)
	c := tr.ChallengeScalar(group)

	response := group.NewScalar().Multiply(c, sk)
	response = group.NewScalar().Add(k, response)

	return Proof{Commitment: commitment, Response: response}
}

// Verify checks a Schnorr proof of knowledge for pk, reproducing the
// same transcript absorption order as Prove.
func Verify(group curve.Group, tr *transcript.Transcript, id []byte, pk curve.Element, proof Proof) bool {
	tr.AbsorbLabeled("schnorr/id", id)
	tr.AbsorbElement("schnorr/pk", pk)
	tr.AbsorbElement("schnorr/commitment", proof.Commitment)
	c := tr.ChallengeScalar(group)

	lhs := group.Element().BaseScale(proof.Response)
	rhs := group.Element().Scale(pk, c)
	rhs = group.Element().Add(rhs, proof.Commitment)
	return lhs.IsEqual(rhs)
}
