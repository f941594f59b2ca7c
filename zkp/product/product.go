// Package product implements the product argument: given commitments
// to m column vectors (each length n) and a public scalar b, prove
// that the product of all n*m entries equals b. It composes the
// Hadamard-product argument (producing a committed vector d equal to
// the entrywise product of the columns) with the single-value-product
// argument (proving ∏ d_i = b), exactly as the two sub-arguments are
// meant to compose.
package product

import (
	"github.com/barnettsmart/mentalpoker/cerr"
	"github.com/barnettsmart/mentalpoker/curve"
	"github.com/barnettsmart/mentalpoker/internal/vec"
	"github.com/barnettsmart/mentalpoker/pedersen"
	"github.com/barnettsmart/mentalpoker/transcript"
	"github.com/barnettsmart/mentalpoker/zkp/hadamard"
	"github.com/barnettsmart/mentalpoker/zkp/svp"
)

// Statement is the public product-argument instance.
type Statement struct {
	CA []curve.Element
	B  *curve.Scalar
	M  int
	N  int
}

// Witness is the opening of the committed columns.
type Witness struct {
	A  [][]*curve.Scalar
	RA []*curve.Scalar
}

// Proof is a non-interactive product-argument proof.
type Proof struct {
	DCommit  curve.Element
	Hadamard hadamard.Proof
	SVP      svp.Proof
}

func hadamardAll(group curve.Group, columns [][]*curve.Scalar) ([]*curve.Scalar, error) {
	d := columns[0]
	var err error
	for _, col := range columns[1:] {
		d, err = vec.Hadamard(group, d, col)
		if err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Prove constructs a proof that the product of all entries of wit.A is
// stmt.B.
func Prove(group curve.Group, ck pedersen.CommitKey, tr *transcript.Transcript, stmt Statement, wit Witness) (Proof, error) {
	if len(wit.A) != stmt.M {
		return Proof{}, cerr.ErrInvalidVectorLength
	}

	d, err := hadamardAll(group, wit.A)
	if err != nil {
		return Proof{}, err
	}
	rd := group.RandomScalar()
	cd, err := ck.Commit(d, rd)
	if err != nil {
		return Proof{}, err
	}

	hStmt := hadamard.Statement{CA: stmt.CA, CB: cd, M: stmt.M, N: stmt.N}
	hWit := hadamard.Witness{A: wit.A, RA: wit.RA, B: d, RB: rd}
	hp, err := hadamard.Prove(group, ck, tr, hStmt, hWit)
	if err != nil {
		return Proof{}, err
	}

	sStmt := svp.Statement{CA: cd, B: stmt.B, N: stmt.N}
	sWit := svp.Witness{A: d, RA: rd}
	sp, err := svp.Prove(group, ck, tr, sStmt, sWit)
	if err != nil {
		return Proof{}, err
	}

	return Proof{DCommit: cd, Hadamard: hp, SVP: sp}, nil
}

// Verify checks a product-argument proof against its statement.
func Verify(group curve.Group, ck pedersen.CommitKey, tr *transcript.Transcript, stmt Statement, proof Proof) error {
	hStmt := hadamard.Statement{CA: stmt.CA, CB: proof.DCommit, M: stmt.M, N: stmt.N}
	if err := hadamard.Verify(group, ck, tr, hStmt, proof.Hadamard); err != nil {
		return cerr.NewProofVerificationError("Product")
	}

	sStmt := svp.Statement{CA: proof.DCommit, B: stmt.B, N: stmt.N}
	if err := svp.Verify(group, ck, tr, sStmt, proof.SVP); err != nil {
		return cerr.NewProofVerificationError("Product")
	}
	return nil
}
