// Package chaumpedersen implements a Chaum-Pedersen proof of equality
// of discrete logarithms: given (G, H, X=xG, Y=xH), prove knowledge of
// x without revealing it. The card protocol uses this both for
// remasking proofs (the remasking factor applied to a ciphertext is
// consistent with a public commitment to it) and for reveal-token
// proofs (a revealed share is computed with the same secret key as the
// player's public key). The sigma-protocol shape follows
// voteproof.Prove/Verify's commit-challenge-respond structure,
// specialized to a dual equality rather than the vote proof's
// three-way Pedersen check.
package chaumpedersen

import (
	"github.com/barnettsmart/mentalpoker/curve"
	"github.com/barnettsmart/mentalpoker/transcript"
)

// Proof proves knowledge of x such that X = x*G and Y = x*H for public
// bases G, H.
type Proof struct {
	CommitG  curve.Element
	CommitH  curve.Element
	Response *curve.Scalar
}

// Prove constructs a proof that the caller knows x for X = x*G, Y =
// x*H.
func Prove(group curve.Group, tr *transcript.Transcript, g, h, x, y curve.Element, secret *curve.Scalar) Proof {
	k := group.RandomScalar()
	commitG := group.Element().Scale(g, k)
	commitH := group.Element().Scale(h, k)

	tr.AbsorbElement("chaumpedersen/g", g)
	tr.AbsorbElement("chaumpedersen/h", h)
	tr.AbsorbElement("chaumpedersen/x", x)
	tr.AbsorbElement("chaumpedersen/y", y)
	tr.AbsorbElement("chaumpedersen/commitG", commitG)
	tr.AbsorbElement("chaumpedersen/commitH", commitH)
	c := tr.ChallengeScalar(group)

	response := group.NewScalar().Multiply(c, secret)
	response = group.NewScalar().Add(k, response)

	return Proof{CommitG: commitG, CommitH: commitH, Response: response}
}

// Verify checks a Chaum-Pedersen equality proof for (g, h, x, y).
func Verify(group curve.Group, tr *transcript.Transcript, g, h, x, y curve.Element, proof Proof) bool {
	tr.AbsorbElement("chaumpedersen/g", g)
	tr.AbsorbElement("chaumpedersen/h", h)
	tr.AbsorbElement("chaumpedersen/x", x)
	tr.AbsorbElement("chaumpedersen/y", y)
	tr.AbsorbElement("chaumpedersen/commitG", proof.CommitG)
	tr.AbsorbElement("chaumpedersen/commitH", proof.CommitH)
	c := tr.ChallengeScalar(group)

	lhsG := group.Element().Scale(g, proof.Response)
	rhsG := group.Element().Scale(x, c)
	rhsG = group.Element().Add(rhsG, proof.CommitG)
	if !lhsG.IsEqual(rhsG) {
		return false
	}

	lhsH := group.Element().Scale(h, proof.Response)
	rhsH := group.Element().Scale(y, c)
	rhsH = group.Element().Add(rhsH, proof.CommitH)
	return lhsH.IsEqual(rhsH)
}
