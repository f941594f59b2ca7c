// Package zeroarg implements the zero argument: given Pedersen vector
// commitments to two m-column, n-row scalar matrices A and B, and a
// bilinear map on length-n vectors, prove that Σ_i map(A_i, B_i) = 0
// without revealing A or B. It is the base case the Hadamard-product
// and single-value-product arguments reduce to (the multi-exponentiation
// argument does not use it), following the argument structure described for the Bayer-Groth
// shuffle and the composition sketched in
// proof-toolbox/proof-essentials' zkp::arguments module tree.
package zeroarg

import (
	"math/big"

	"github.com/barnettsmart/mentalpoker/cerr"
	"github.com/barnettsmart/mentalpoker/curve"
	"github.com/barnettsmart/mentalpoker/internal/vec"
	"github.com/barnettsmart/mentalpoker/pedersen"
	"github.com/barnettsmart/mentalpoker/transcript"
)

// BilinearMap computes a scalar from two length-n scalar vectors,
// linear in each argument.
type BilinearMap func(group curve.Group, a, b []*curve.Scalar) (*curve.Scalar, error)

// PlainInnerProduct is the unweighted bilinear map ⟨a, b⟩.
func PlainInnerProduct(group curve.Group, a, b []*curve.Scalar) (*curve.Scalar, error) {
	return vec.InnerProduct(group, a, b)
}

// WeightedInnerProduct returns the bilinear map Σ_t w[t]*a[t]*b[t].
func WeightedInnerProduct(w []*curve.Scalar) BilinearMap {
	return func(group curve.Group, a, b []*curve.Scalar) (*curve.Scalar, error) {
		if len(a) != len(w) || len(b) != len(w) {
			return nil, cerr.ErrInvalidVectorLength
		}
		weighted := make([]*curve.Scalar, len(a))
		for i := range a {
			weighted[i] = group.NewScalar().Multiply(a[i], w[i])
		}
		return vec.InnerProduct(group, weighted, b)
	}
}

// Statement is the public zero-argument instance: commitments to the
// columns of A and B, with their shared dimensions.
type Statement struct {
	CA []curve.Element
	CB []curve.Element
	M  int
	N  int
}

// Witness is the opening of the committed matrices.
type Witness struct {
	A  [][]*curve.Scalar
	RA []*curve.Scalar
	B  [][]*curve.Scalar
	RB []*curve.Scalar
}

// Proof is a non-interactive zero-argument proof.
type Proof struct {
	CoeffCommits []curve.Element
	A            []*curve.Scalar
	RAOpen       *curve.Scalar
	B            []*curve.Scalar
	RBOpen       *curve.Scalar
	T            *curve.Scalar
	SOpen        *curve.Scalar
}

// coeffKeys returns the diagonal indices 0..2m-2 excluding the center
// index m-1, whose coefficient is fixed to zero by the relation being
// proved and is therefore never committed or transmitted.
func coeffKeys(m int) []int {
	keys := make([]int, 0, 2*m-2)
	for k := 0; k <= 2*m-2; k++ {
		if k == m-1 {
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

func scalarPow(group curve.Group, x *curve.Scalar, k int) *curve.Scalar {
	return group.NewScalar().Pow(x, big.NewInt(int64(k)))
}

// diagonalCoefficients computes, for each k in 0..2m-2, the sum over
// i+j=k of map(A_i, B_{m-1-j}); the coefficient at k=m-1 is
// Σ_i map(A_i, B_i), the quantity the argument proves is zero.
func diagonalCoefficients(group curve.Group, bilinear BilinearMap, A, B [][]*curve.Scalar) ([]*curve.Scalar, error) {
	m := len(A)
	coeffs := make([]*curve.Scalar, 2*m-1)
	for k := 0; k <= 2*m-2; k++ {
		sum := group.NewScalar().SetInt64(0)
		iMin, iMax := 0, m-1
		if k-(m-1) > iMin {
			iMin = k - (m - 1)
		}
		if k < iMax {
			iMax = k
		}
		for i := iMin; i <= iMax; i++ {
			j := k - i
			term, err := bilinear(group, A[i], B[m-1-j])
			if err != nil {
				return nil, err
			}
			sum = group.NewScalar().Add(sum, term)
		}
		coeffs[k] = sum
	}
	return coeffs, nil
}

func absorbStatement(tr *transcript.Transcript, stmt Statement) {
	for _, c := range stmt.CA {
		tr.AbsorbElement("zeroarg/cA", c)
	}
	for _, c := range stmt.CB {
		tr.AbsorbElement("zeroarg/cB", c)
	}
}

// Prove constructs a zero-argument proof that Σ_i bilinear(A_i, B_i) =
// 0 for the committed matrices in wit.
func Prove(group curve.Group, ck pedersen.CommitKey, bilinear BilinearMap, tr *transcript.Transcript, stmt Statement, wit Witness) (Proof, error) {
	m, n := stmt.M, stmt.N
	if len(wit.A) != m || len(wit.B) != m || len(wit.RA) != m || len(wit.RB) != m {
		return Proof{}, cerr.ErrInvalidVectorLength
	}
	for i := 0; i < m; i++ {
		if len(wit.A[i]) != n || len(wit.B[i]) != n {
			return Proof{}, cerr.ErrInvalidVectorLength
		}
	}

	coeffs, err := diagonalCoefficients(group, bilinear, wit.A, wit.B)
	if err != nil {
		return Proof{}, err
	}

	keys := coeffKeys(m)
	sRand := make(map[int]*curve.Scalar, len(keys))
	coeffCommits := make([]curve.Element, len(keys))
	for idx, k := range keys {
		sRand[k] = group.RandomScalar()
		c, err := ck.CommitSingle(coeffs[k], sRand[k])
		if err != nil {
			return Proof{}, err
		}
		coeffCommits[idx] = c
	}

	absorbStatement(tr, stmt)
	for _, c := range coeffCommits {
		tr.AbsorbElement("zeroarg/coeff", c)
	}
	x := tr.ChallengeScalar(group)

	a := make([]*curve.Scalar, n)
	b := make([]*curve.Scalar, n)
	for t := 0; t < n; t++ {
		a[t] = group.NewScalar().SetInt64(0)
		b[t] = group.NewScalar().SetInt64(0)
	}
	ra := group.NewScalar().SetInt64(0)
	rb := group.NewScalar().SetInt64(0)

	for i := 0; i < m; i++ {
		xi := scalarPow(group, x, i)
		xmi := scalarPow(group, x, m-1-i)
		for t := 0; t < n; t++ {
			a[t] = group.NewScalar().Add(a[t], group.NewScalar().Multiply(wit.A[i][t], xi))
			b[t] = group.NewScalar().Add(b[t], group.NewScalar().Multiply(wit.B[i][t], xmi))
		}
		ra = group.NewScalar().Add(ra, group.NewScalar().Multiply(wit.RA[i], xi))
		rb = group.NewScalar().Add(rb, group.NewScalar().Multiply(wit.RB[i], xmi))
	}

	tOpen := group.NewScalar().SetInt64(0)
	sOpen := group.NewScalar().SetInt64(0)
	for _, k := range keys {
		xk := scalarPow(group, x, k)
		tOpen = group.NewScalar().Add(tOpen, group.NewScalar().Multiply(coeffs[k], xk))
		sOpen = group.NewScalar().Add(sOpen, group.NewScalar().Multiply(sRand[k], xk))
	}

	return Proof{
		CoeffCommits: coeffCommits,
		A:            a,
		RAOpen:       ra,
		B:            b,
		RBOpen:       rb,
		T:            tOpen,
		SOpen:        sOpen,
	}, nil
}

// Verify checks a zero-argument proof against its statement.
func Verify(group curve.Group, ck pedersen.CommitKey, bilinear BilinearMap, tr *transcript.Transcript, stmt Statement, proof Proof) error {
	m, n := stmt.M, stmt.N
	if len(stmt.CA) != m || len(stmt.CB) != m {
		return cerr.ErrInvalidShuffleStatement
	}
	keys := coeffKeys(m)
	if len(proof.CoeffCommits) != len(keys) || len(proof.A) != n || len(proof.B) != n {
		return cerr.NewProofVerificationError("Zero")
	}

	absorbStatement(tr, stmt)
	for _, c := range proof.CoeffCommits {
		tr.AbsorbElement("zeroarg/coeff", c)
	}
	x := tr.ChallengeScalar(group)

	leftA := group.Identity()
	leftB := group.Identity()
	for i := 0; i < m; i++ {
		xi := scalarPow(group, x, i)
		xmi := scalarPow(group, x, m-1-i)
		leftA = group.Element().Add(leftA, group.Element().Scale(stmt.CA[i], xi))
		leftB = group.Element().Add(leftB, group.Element().Scale(stmt.CB[i], xmi))
	}
	rightA, err := ck.Commit(proof.A, proof.RAOpen)
	if err != nil {
		return err
	}
	if !leftA.IsEqual(rightA) {
		return cerr.NewProofVerificationError("Zero")
	}
	rightB, err := ck.Commit(proof.B, proof.RBOpen)
	if err != nil {
		return err
	}
	if !leftB.IsEqual(rightB) {
		return cerr.NewProofVerificationError("Zero")
	}

	leftC := group.Identity()
	for idx, k := range keys {
		xk := scalarPow(group, x, k)
		leftC = group.Element().Add(leftC, group.Element().Scale(proof.CoeffCommits[idx], xk))
	}
	rightC, err := ck.CommitSingle(proof.T, proof.SOpen)
	if err != nil {
		return err
	}
	if !leftC.IsEqual(rightC) {
		return cerr.NewProofVerificationError("Zero")
	}

	val, err := bilinear(group, proof.A, proof.B)
	if err != nil {
		return err
	}
	if !val.IsEqual(proof.T) {
		return cerr.NewProofVerificationError("Zero")
	}

	return nil
}
