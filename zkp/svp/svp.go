// Package svp implements the single-value product argument: given a
// commitment to a vector a of length n and a public scalar b, prove
// that ∏_i a_i = b without revealing a.
//
// The argument commits to the vector of partial products p (p_i =
// ∏_{j<=i} a_j, so p_{n-1} = b by construction) and proves the
// recurrence p_i = p_{i-1}*a_i (with p_{-1} := 1) via a single
// zero-argument call over the shifted partial-product vector, the
// same pairwise-product reduction the Hadamard-product argument uses.
// The public target b is folded directly into the committed p vector
// at its last coordinate (p's commitment key's final generator is
// scaled by the public b rather than by a prover-chosen value), which
// ties the committed recurrence to the public statement without a
// separate coordinate-opening step.
package svp

import (
	"github.com/barnettsmart/mentalpoker/cerr"
	"github.com/barnettsmart/mentalpoker/curve"
	"github.com/barnettsmart/mentalpoker/internal/vec"
	"github.com/barnettsmart/mentalpoker/pedersen"
	"github.com/barnettsmart/mentalpoker/transcript"
	"github.com/barnettsmart/mentalpoker/zkp/zeroarg"
)

// Statement is the public single-value-product instance.
type Statement struct {
	CA curve.Element // commitment to a
	B  *curve.Scalar // claimed product ∏ a_i
	N  int
}

// Witness is the opening of the committed vector.
type Witness struct {
	A  []*curve.Scalar
	RA *curve.Scalar
}

// Proof is a non-interactive single-value-product proof.
type Proof struct {
	PPrefixCommit curve.Element // commitment to p with its last coordinate zeroed
	ShiftCommit   curve.Element // commitment to the shifted partial-product vector
	Zero          zeroarg.Proof
}

func negOnes(group curve.Group, n int) []*curve.Scalar {
	v := make([]*curve.Scalar, n)
	negOne := group.NewScalar().Negate(group.NewScalar().SetInt64(1))
	for i := range v {
		v[i] = negOne
	}
	return v
}

func negOnesCommitment(group curve.Group, ck pedersen.CommitKey, n int) (curve.Element, error) {
	return ck.Commit(negOnes(group, n), group.NewScalar().SetInt64(0))
}

func partialProducts(group curve.Group, a []*curve.Scalar) []*curve.Scalar {
	p := make([]*curve.Scalar, len(a))
	running := group.NewScalar().SetInt64(1)
	for i, ai := range a {
		running = group.NewScalar().Multiply(running, ai)
		p[i] = running
	}
	return p
}

func shiftedVector(group curve.Group, p []*curve.Scalar) []*curve.Scalar {
	n := len(p)
	s := make([]*curve.Scalar, n)
	s[0] = group.NewScalar().SetInt64(1)
	for i := 1; i < n; i++ {
		s[i] = p[i-1]
	}
	return s
}

// Prove constructs a proof that ∏ wit.A_i = stmt.B.
func Prove(group curve.Group, ck pedersen.CommitKey, tr *transcript.Transcript, stmt Statement, wit Witness) (Proof, error) {
	n := stmt.N
	if len(wit.A) != n {
		return Proof{}, cerr.ErrInvalidVectorLength
	}

	p := partialProducts(group, wit.A)
	padded := append([]*curve.Scalar(nil), p...)
	padded[n-1] = group.NewScalar().SetInt64(0)

	rP := group.RandomScalar()
	cPPrefix, err := ck.Commit(padded, rP)
	if err != nil {
		return Proof{}, err
	}

	shifted := shiftedVector(group, p)
	rShift := group.RandomScalar()
	cShift, err := ck.Commit(shifted, rShift)
	if err != nil {
		return Proof{}, err
	}

	tr.AbsorbElement("svp/cA", stmt.CA)
	tr.AbsorbScalar("svp/b", stmt.B)
	tr.AbsorbElement("svp/pPrefix", cPPrefix)
	tr.AbsorbElement("svp/shift", cShift)
	y := tr.ChallengeScalar(group)
	yPowers := vec.Powers(group, y, n)
	bilinear := zeroarg.WeightedInnerProduct(yPowers)

	negOnesC, err := negOnesCommitment(group, ck, n)
	if err != nil {
		return Proof{}, err
	}
	cPFull := group.Element().Add(cPPrefix, group.Element().Scale(ck.G[n-1], stmt.B))
	pFull := append([]*curve.Scalar(nil), padded[:n-1]...)
	pFull = append(pFull, stmt.B)

	zStmt := zeroarg.Statement{
		CA: []curve.Element{cShift, negOnesC},
		CB: []curve.Element{stmt.CA, cPFull},
		M:  2, N: n,
	}
	zWit := zeroarg.Witness{
		A:  [][]*curve.Scalar{shifted, negOnes(group, n)},
		RA: []*curve.Scalar{rShift, group.NewScalar().SetInt64(0)},
		B:  [][]*curve.Scalar{wit.A, pFull},
		RB: []*curve.Scalar{wit.RA, rP},
	}
	zp, err := zeroarg.Prove(group, ck, bilinear, tr, zStmt, zWit)
	if err != nil {
		return Proof{}, err
	}

	return Proof{PPrefixCommit: cPPrefix, ShiftCommit: cShift, Zero: zp}, nil
}

// Verify checks a single-value-product proof against its statement.
func Verify(group curve.Group, ck pedersen.CommitKey, tr *transcript.Transcript, stmt Statement, proof Proof) error {
	n := stmt.N

	tr.AbsorbElement("svp/cA", stmt.CA)
	tr.AbsorbScalar("svp/b", stmt.B)
	tr.AbsorbElement("svp/pPrefix", proof.PPrefixCommit)
	tr.AbsorbElement("svp/shift", proof.ShiftCommit)
	y := tr.ChallengeScalar(group)
	yPowers := vec.Powers(group, y, n)
	bilinear := zeroarg.WeightedInnerProduct(yPowers)

	negOnesC, err := negOnesCommitment(group, ck, n)
	if err != nil {
		return err
	}
	cPFull := group.Element().Add(proof.PPrefixCommit, group.Element().Scale(ck.G[n-1], stmt.B))

	zStmt := zeroarg.Statement{
		CA: []curve.Element{proof.ShiftCommit, negOnesC},
		CB: []curve.Element{stmt.CA, cPFull},
		M:  2, N: n,
	}
	if err := zeroarg.Verify(group, ck, bilinear, tr, zStmt, proof.Zero); err != nil {
		return cerr.NewProofVerificationError("Single Value Product")
	}
	return nil
}
