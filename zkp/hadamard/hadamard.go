// Package hadamard implements the Hadamard-product argument: given
// commitments to m column vectors a_1..a_m (each length n) and a
// commitment to their entrywise product b = a_1∘a_2∘...∘a_m, prove the
// product relation without revealing the columns.
//
// The argument reduces to a chain of m-1 pairwise entrywise-product
// checks over running partial products, each discharged as a 2-column
// zero-argument instance with a weighted-inner-product bilinear map
// (the weights are powers of a transcript-derived challenge y), the
// composition spec.md describes as "reducing to a zero-argument over
// intermediate Hadamard partial products".
package hadamard

import (
	"github.com/barnettsmart/mentalpoker/cerr"
	"github.com/barnettsmart/mentalpoker/curve"
	"github.com/barnettsmart/mentalpoker/internal/vec"
	"github.com/barnettsmart/mentalpoker/pedersen"
	"github.com/barnettsmart/mentalpoker/transcript"
	"github.com/barnettsmart/mentalpoker/zkp/zeroarg"
)

// Statement is the public Hadamard-product instance.
type Statement struct {
	CA []curve.Element // commitments to a_1..a_m
	CB curve.Element   // commitment to b = ∘ a_i
	M  int
	N  int
}

// Witness is the opening of the committed columns and product.
type Witness struct {
	A  [][]*curve.Scalar
	RA []*curve.Scalar
	B  []*curve.Scalar
	RB *curve.Scalar
}

// roundProof is one pairwise-product step's commitment to the running
// partial product plus the zero-argument proof that it is correct.
type roundProof struct {
	PartialCommit curve.Element
	Zero          zeroarg.Proof
}

// Proof is a non-interactive Hadamard-product proof.
type Proof struct {
	Rounds []roundProof
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

// Prove constructs a Hadamard-product proof.
func Prove(group curve.Group, ck pedersen.CommitKey, tr *transcript.Transcript, stmt Statement, wit Witness) (Proof, error) {
	m, n := stmt.M, stmt.N
	if len(wit.A) != m || len(wit.RA) != m || len(wit.B) != n {
		return Proof{}, cerr.ErrInvalidVectorLength
	}

	negOnesC, err := negOnesCommitment(group, ck, n)
	if err != nil {
		return Proof{}, err
	}

	prevVec, prevRand, prevCommit := wit.A[0], wit.RA[0], stmt.CA[0]

	rounds := make([]roundProof, 0, m-1)
	for k := 1; k < m; k++ {
		curVec, err := vec.Hadamard(group, prevVec, wit.A[k])
		if err != nil {
			return Proof{}, err
		}

		var curRand *curve.Scalar
		var curCommit curve.Element
		if k == m-1 {
			curRand, curCommit = wit.RB, stmt.CB
		} else {
			curRand = group.RandomScalar()
			curCommit, err = ck.Commit(curVec, curRand)
			if err != nil {
				return Proof{}, err
			}
		}

		tr.AbsorbElement("hadamard/prev", prevCommit)
		tr.AbsorbElement("hadamard/factor", stmt.CA[k])
		tr.AbsorbElement("hadamard/cur", curCommit)
		y := tr.ChallengeScalar(group)
		yPowers := vec.Powers(group, y, n)
		bilinear := zeroarg.WeightedInnerProduct(yPowers)

		zStmt := zeroarg.Statement{
			CA: []curve.Element{prevCommit, negOnesC},
			CB: []curve.Element{stmt.CA[k], curCommit},
			M:  2, N: n,
		}
		zWit := zeroarg.Witness{
			A:  [][]*curve.Scalar{prevVec, negOnes(group, n)},
			RA: []*curve.Scalar{prevRand, group.NewScalar().SetInt64(0)},
			B:  [][]*curve.Scalar{wit.A[k], curVec},
			RB: []*curve.Scalar{wit.RA[k], curRand},
		}
		zp, err := zeroarg.Prove(group, ck, bilinear, tr, zStmt, zWit)
		if err != nil {
			return Proof{}, err
		}

		rounds = append(rounds, roundProof{PartialCommit: curCommit, Zero: zp})
		prevVec, prevRand, prevCommit = curVec, curRand, curCommit
	}

	return Proof{Rounds: rounds}, nil
}

// Verify checks a Hadamard-product proof against its statement.
func Verify(group curve.Group, ck pedersen.CommitKey, tr *transcript.Transcript, stmt Statement, proof Proof) error {
	m, n := stmt.M, stmt.N
	if len(stmt.CA) != m || len(proof.Rounds) != m-1 {
		return cerr.NewProofVerificationError("Hadamard")
	}

	negOnesC, err := negOnesCommitment(group, ck, n)
	if err != nil {
		return err
	}

	prevCommit := stmt.CA[0]
	for k := 1; k < m; k++ {
		round := proof.Rounds[k-1]
		curCommit := round.PartialCommit
		if k == m-1 {
			curCommit = stmt.CB
		}

		tr.AbsorbElement("hadamard/prev", prevCommit)
		tr.AbsorbElement("hadamard/factor", stmt.CA[k])
		tr.AbsorbElement("hadamard/cur", curCommit)
		y := tr.ChallengeScalar(group)
		yPowers := vec.Powers(group, y, n)
		bilinear := zeroarg.WeightedInnerProduct(yPowers)

		zStmt := zeroarg.Statement{
			CA: []curve.Element{prevCommit, negOnesC},
			CB: []curve.Element{stmt.CA[k], curCommit},
			M:  2, N: n,
		}
		if err := zeroarg.Verify(group, ck, bilinear, tr, zStmt, round.Zero); err != nil {
			return cerr.NewProofVerificationError("Hadamard")
		}

		prevCommit = curCommit
	}

	return nil
}
