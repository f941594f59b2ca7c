// Package shuffle implements the Bayer-Groth zero-knowledge shuffle
// argument: given N=m*n input ciphertexts and N output ciphertexts,
// prove that the outputs are a permutation of re-randomizations of the
// inputs, without revealing the permutation or the re-randomization
// factors.
//
// The argument commits once, row by row, to the vector B where
// B[j] = x^π(j) for a transcript-derived challenge x and the witness
// permutation π, and reuses that single commitment for two checks:
//
//   - a product-argument check that {B[j]} is a permutation of
//     {x^0,...,x^(N-1)} as a multiset, via the classical
//     Schwartz-Zippel polynomial-root trick ∏(y-B[j]) = ∏(y-x^j) for a
//     second challenge y, reduced to the product argument on the
//     commitment derived homomorphically from the B commitment;
//   - a multi-exponentiation-argument check that Σ_j B[j]·old[j] +
//     Encrypt(0, ⟨B,ρ⟩) equals the x-weighted sum of the output
//     ciphertexts, which holds exactly when new[π(j)] =
//     remask(old[j], ρ[j]) for every j.
package shuffle

import (
	"math/big"

	"github.com/barnettsmart/mentalpoker/card"
	"github.com/barnettsmart/mentalpoker/cerr"
	"github.com/barnettsmart/mentalpoker/curve"
	"github.com/barnettsmart/mentalpoker/elgamal"
	"github.com/barnettsmart/mentalpoker/pedersen"
	"github.com/barnettsmart/mentalpoker/transcript"
	"github.com/barnettsmart/mentalpoker/zkp/multiexp"
	"github.com/barnettsmart/mentalpoker/zkp/product"
)

// Statement is the public shuffle instance.
type Statement struct {
	Params elgamal.Parameters
	PK     curve.Element
	Old    []elgamal.Ciphertext
	New    []elgamal.Ciphertext
	M, N   int
}

// IsValid checks the statement's dimensions.
func (s Statement) IsValid() error {
	if len(s.Old) != s.M*s.N || len(s.New) != s.M*s.N {
		return cerr.ErrInvalidShuffleStatement
	}
	return nil
}

// Witness is the permutation and re-randomization factors behind a
// shuffle: New[π(j)] = Remask(Old[j], Rho[j]) for all j.
type Witness struct {
	Permutation *card.Permutation
	Rho         []*curve.Scalar
}

// Proof is a non-interactive shuffle proof.
type Proof struct {
	BCommits []curve.Element
	Product  product.Proof
	MultiExp multiexp.Proof
}

func chunk(flat []elgamal.Ciphertext, m, n int) [][]elgamal.Ciphertext {
	rows := make([][]elgamal.Ciphertext, m)
	for r := 0; r < m; r++ {
		rows[r] = flat[r*n : (r+1)*n]
	}
	return rows
}

func chunkScalars(flat []*curve.Scalar, m, n int) [][]*curve.Scalar {
	rows := make([][]*curve.Scalar, m)
	for r := 0; r < m; r++ {
		rows[r] = flat[r*n : (r+1)*n]
	}
	return rows
}

func absorbCiphertexts(tr *transcript.Transcript, label string, cs []elgamal.Ciphertext) {
	for _, c := range cs {
		tr.AbsorbElement(label+"/c1", c.C1)
		tr.AbsorbElement(label+"/c2", c.C2)
	}
}

// sumGenerators computes Σ_{t<n} G[t], the commitment to the all-ones
// vector of length n under zero randomness.
func sumGenerators(ck pedersen.CommitKey, n int) curve.Element {
	sum := ck.Group.Identity()
	for _, g := range ck.G[:n] {
		sum = ck.Group.Element().Add(sum, g)
	}
	return sum
}

// weightedOutputSum computes Σ_i x^i * New[i] over the global index i.
func weightedOutputSum(group curve.Group, params elgamal.Parameters, cs []elgamal.Ciphertext, x *curve.Scalar) elgamal.Ciphertext {
	acc := elgamal.Identity(params)
	xi := group.NewScalar().SetInt64(1)
	for _, c := range cs {
		acc = elgamal.Add(params, acc, elgamal.ScalarMul(params, c, xi))
		xi = group.NewScalar().Multiply(xi, x)
	}
	return acc
}

// publicRootProduct computes ∏_{j=0}^{N-1} (y - x^j).
func publicRootProduct(group curve.Group, x, y *curve.Scalar, n int) *curve.Scalar {
	prod := group.NewScalar().SetInt64(1)
	xi := group.NewScalar().SetInt64(1)
	for i := 0; i < n; i++ {
		term := group.NewScalar().Subtract(y, xi)
		prod = group.NewScalar().Multiply(prod, term)
		xi = group.NewScalar().Multiply(xi, x)
	}
	return prod
}

// Prove constructs a non-interactive shuffle proof for the given
// statement and witness.
func Prove(group curve.Group, ck pedersen.CommitKey, tr *transcript.Transcript, stmt Statement, wit Witness) (Proof, error) {
	if err := stmt.IsValid(); err != nil {
		return Proof{}, err
	}
	m, n := stmt.M, stmt.N
	nTotal := m * n
	if wit.Permutation.Len() != nTotal || len(wit.Rho) != nTotal {
		return Proof{}, cerr.ErrInvalidShuffleStatement
	}

	absorbCiphertexts(tr, "shuffle/old", stmt.Old)
	absorbCiphertexts(tr, "shuffle/new", stmt.New)
	x := tr.ChallengeScalar(group)

	b := make([]*curve.Scalar, nTotal)
	for j := 0; j < nTotal; j++ {
		b[j] = group.NewScalar().Pow(x, big.NewInt(int64(wit.Permutation.At(j))))
	}
	bRows := chunkScalars(b, m, n)

	rB := make([]*curve.Scalar, m)
	cB := make([]curve.Element, m)
	for r := 0; r < m; r++ {
		rB[r] = group.RandomScalar()
		c, err := ck.Commit(bRows[r], rB[r])
		if err != nil {
			return Proof{}, err
		}
		cB[r] = c
	}

	for _, c := range cB {
		tr.AbsorbElement("shuffle/cB", c)
	}
	y := tr.ChallengeScalar(group)

	// Check A: {b[j]} is a permutation of {x^0,...,x^{N-1}}.
	genSum := sumGenerators(ck, n)
	wRows := make([][]*curve.Scalar, m)
	negRB := make([]*curve.Scalar, m)
	cW := make([]curve.Element, m)
	for r := 0; r < m; r++ {
		wRows[r] = make([]*curve.Scalar, n)
		for t := 0; t < n; t++ {
			wRows[r][t] = group.NewScalar().Subtract(y, bRows[r][t])
		}
		negRB[r] = group.NewScalar().Negate(rB[r])
		cW[r] = group.Element().Subtract(group.Element().Scale(genSum, y), cB[r])
	}
	targetA := publicRootProduct(group, x, y, nTotal)

	pStmt := product.Statement{CA: cW, B: targetA, M: m, N: n}
	pWit := product.Witness{A: wRows, RA: negRB}
	productProof, err := product.Prove(group, ck, tr, pStmt, pWit)
	if err != nil {
		return Proof{}, err
	}

	// Check B: the shuffle relation itself, via multi-exponentiation.
	rhoTilde := group.NewScalar().SetInt64(0)
	for j := 0; j < nTotal; j++ {
		rhoTilde = group.NewScalar().Add(rhoTilde, group.NewScalar().Multiply(b[j], wit.Rho[j]))
	}
	targetB := weightedOutputSum(group, stmt.Params, stmt.New, x)
	oldRows := chunk(stmt.Old, m, n)

	mStmt := multiexp.Statement{
		Params: stmt.Params, PK: stmt.PK,
		CA: cB, C: oldRows, Target: targetB, M: m, N: n,
	}
	mWit := multiexp.Witness{A: bRows, RA: rB, Rho: rhoTilde}
	multiExpProof, err := multiexp.Prove(group, ck, tr, mStmt, mWit)
	if err != nil {
		return Proof{}, err
	}

	return Proof{BCommits: cB, Product: productProof, MultiExp: multiExpProof}, nil
}

// Verify checks a shuffle proof against its statement.
func Verify(group curve.Group, ck pedersen.CommitKey, tr *transcript.Transcript, stmt Statement, proof Proof) error {
	if err := stmt.IsValid(); err != nil {
		return err
	}
	m, n := stmt.M, stmt.N
	nTotal := m * n
	if len(proof.BCommits) != m {
		return cerr.NewProofVerificationError("Shuffle")
	}

	absorbCiphertexts(tr, "shuffle/old", stmt.Old)
	absorbCiphertexts(tr, "shuffle/new", stmt.New)
	x := tr.ChallengeScalar(group)

	for _, c := range proof.BCommits {
		tr.AbsorbElement("shuffle/cB", c)
	}
	y := tr.ChallengeScalar(group)

	genSum := sumGenerators(ck, n)
	cW := make([]curve.Element, m)
	for r := 0; r < m; r++ {
		cW[r] = group.Element().Subtract(group.Element().Scale(genSum, y), proof.BCommits[r])
	}
	targetA := publicRootProduct(group, x, y, nTotal)

	pStmt := product.Statement{CA: cW, B: targetA, M: m, N: n}
	if err := product.Verify(group, ck, tr, pStmt, proof.Product); err != nil {
		return cerr.NewProofVerificationError("Shuffle")
	}

	targetB := weightedOutputSum(group, stmt.Params, stmt.New, x)
	oldRows := chunk(stmt.Old, m, n)
	mStmt := multiexp.Statement{
		Params: stmt.Params, PK: stmt.PK,
		CA: proof.BCommits, C: oldRows, Target: targetB, M: m, N: n,
	}
	if err := multiexp.Verify(group, ck, tr, mStmt, proof.MultiExp); err != nil {
		return cerr.NewProofVerificationError("Shuffle")
	}

	return nil
}
