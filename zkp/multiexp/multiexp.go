// Package multiexp implements the multi-exponentiation argument: given
// a public m-by-n ciphertext matrix C, commitments to an m-by-n
// exponent matrix A (committed column by column with an externally
// supplied commitment key, so this argument can reuse a commitment
// produced elsewhere, e.g. the shuffle argument's permutation-power
// commitment), a blinding scalar rho, and a target ciphertext,
// prove that
//
//	Σ_j ⟨A_j, C_j⟩ + Encrypt(0, rho) = target
//
// where ⟨A_j, C_j⟩ denotes the homomorphic combination Σ_i A_j[i]•C_j[i].
//
// The argument works by building, for every diagonal k = i-j+(m-1) in
// 0..2m-2, a ciphertext E_k that aggregates all cross terms ⟨A_j,
// C_i⟩ with i-j = k-(m-1), blinded by a fresh random scalar, except at
// the center diagonal k=m-1 where the relation forces E_{m-1} to equal
// the public target directly (so it needs no extra transmission). A
// single challenge x then collapses the identity Σ_k x^{k+1} E_k =
// Encrypt(0, Σ_k x^{k+1} rho_k) + Σ_i x^i ⟨a, C_i⟩ (with a = Σ_j
// x^{m-j} A_j, rho_k the blinding scalar of E_k, and rho_{m-1} = rho)
// into one checkable equation, with a opened alongside a homomorphic
// consistency check against the column commitments.
package multiexp

import (
	"math/big"

	"github.com/barnettsmart/mentalpoker/cerr"
	"github.com/barnettsmart/mentalpoker/curve"
	"github.com/barnettsmart/mentalpoker/elgamal"
	"github.com/barnettsmart/mentalpoker/pedersen"
	"github.com/barnettsmart/mentalpoker/transcript"
)

// Statement is the public multi-exponentiation instance.
type Statement struct {
	Params elgamal.Parameters
	PK     curve.Element
	CA     []curve.Element        // commitments to the exponent columns
	C      [][]elgamal.Ciphertext // m rows, each n ciphertexts
	Target elgamal.Ciphertext
	M, N   int
}

// Witness is the opening of the committed exponent matrix plus the
// blinding scalar tying it to the target ciphertext.
type Witness struct {
	A   [][]*curve.Scalar
	RA  []*curve.Scalar
	Rho *curve.Scalar
}

// Proof is a non-interactive multi-exponentiation proof.
type Proof struct {
	ECommits []elgamal.Ciphertext
	A        []*curve.Scalar
	RAOpen   *curve.Scalar
	RhoOpen  *curve.Scalar
}

func diagKeys(m int) []int {
	keys := make([]int, 0, 2*m-2)
	for k := 0; k <= 2*m-2; k++ {
		if k == m-1 {
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

func scalarPow(group curve.Group, x *curve.Scalar, e int) *curve.Scalar {
	return group.NewScalar().Pow(x, big.NewInt(int64(e)))
}

func innerCipher(params elgamal.Parameters, a []*curve.Scalar, c []elgamal.Ciphertext) elgamal.Ciphertext {
	acc := elgamal.Identity(params)
	for t := range a {
		acc = elgamal.Add(params, acc, elgamal.ScalarMul(params, c[t], a[t]))
	}
	return acc
}

// diagonalCiphertext computes Σ_{i-j=offset} ⟨A_j, C_i⟩ for the given
// diagonal offset (offset = k-(m-1)).
func diagonalCiphertext(params elgamal.Parameters, A [][]*curve.Scalar, C [][]elgamal.Ciphertext, m, offset int) elgamal.Ciphertext {
	acc := elgamal.Identity(params)
	for j := 0; j < m; j++ {
		i := j + offset
		if i < 0 || i >= m {
			continue
		}
		acc = elgamal.Add(params, acc, innerCipher(params, A[j], C[i]))
	}
	return acc
}

func absorbStatement(tr *transcript.Transcript, stmt Statement) {
	for _, c := range stmt.CA {
		tr.AbsorbElement("multiexp/cA", c)
	}
	tr.AbsorbElement("multiexp/target1", stmt.Target.C1)
	tr.AbsorbElement("multiexp/target2", stmt.Target.C2)
}

// Prove constructs a multi-exponentiation proof.
func Prove(group curve.Group, ck pedersen.CommitKey, tr *transcript.Transcript, stmt Statement, wit Witness) (Proof, error) {
	m, n := stmt.M, stmt.N
	if len(wit.A) != m || len(wit.RA) != m {
		return Proof{}, cerr.ErrInvalidVectorLength
	}

	keys := diagKeys(m)
	rho := make(map[int]*curve.Scalar, len(keys)+1)
	rho[m-1] = wit.Rho

	eCommits := make([]elgamal.Ciphertext, len(keys))
	for idx, k := range keys {
		offset := k - (m - 1)
		cross := diagonalCiphertext(stmt.Params, wit.A, stmt.C, m, offset)
		rho[k] = group.RandomScalar()
		blind := elgamal.Encrypt(stmt.Params, stmt.PK, stmt.Params.Group.Identity(), rho[k])
		eCommits[idx] = elgamal.Add(stmt.Params, blind, cross)
	}

	absorbStatement(tr, stmt)
	for _, e := range eCommits {
		tr.AbsorbElement("multiexp/e1", e.C1)
		tr.AbsorbElement("multiexp/e2", e.C2)
	}
	x := tr.ChallengeScalar(group)

	a := make([]*curve.Scalar, n)
	for t := 0; t < n; t++ {
		a[t] = group.NewScalar().SetInt64(0)
	}
	ra := group.NewScalar().SetInt64(0)
	for j := 0; j < m; j++ {
		w := scalarPow(group, x, m-j)
		for t := 0; t < n; t++ {
			a[t] = group.NewScalar().Add(a[t], group.NewScalar().Multiply(wit.A[j][t], w))
		}
		ra = group.NewScalar().Add(ra, group.NewScalar().Multiply(wit.RA[j], w))
	}

	rhoOpen := group.NewScalar().SetInt64(0)
	for k := 0; k <= 2*m-2; k++ {
		w := scalarPow(group, x, k+1)
		rhoOpen = group.NewScalar().Add(rhoOpen, group.NewScalar().Multiply(rho[k], w))
	}

	return Proof{ECommits: eCommits, A: a, RAOpen: ra, RhoOpen: rhoOpen}, nil
}

// Verify checks a multi-exponentiation proof against its statement.
func Verify(group curve.Group, ck pedersen.CommitKey, tr *transcript.Transcript, stmt Statement, proof Proof) error {
	m, n := stmt.M, stmt.N
	keys := diagKeys(m)
	if len(proof.ECommits) != len(keys) || len(proof.A) != n {
		return cerr.NewProofVerificationError("Multi Exponentiation")
	}

	absorbStatement(tr, stmt)
	for _, e := range proof.ECommits {
		tr.AbsorbElement("multiexp/e1", e.C1)
		tr.AbsorbElement("multiexp/e2", e.C2)
	}
	x := tr.ChallengeScalar(group)

	// LHS = Σ_k x^{k+1} E_k, with the center diagonal equal to the
	// public target directly.
	lhs := elgamal.Identity(stmt.Params)
	for idx, k := range keys {
		w := scalarPow(group, x, k+1)
		lhs = elgamal.Add(stmt.Params, lhs, elgamal.ScalarMul(stmt.Params, proof.ECommits[idx], w))
	}
	centerW := scalarPow(group, x, m)
	lhs = elgamal.Add(stmt.Params, lhs, elgamal.ScalarMul(stmt.Params, stmt.Target, centerW))

	rhs := elgamal.Encrypt(stmt.Params, stmt.PK, stmt.Params.Group.Identity(), proof.RhoOpen)
	for i := 0; i < m; i++ {
		w := scalarPow(group, x, i)
		term := innerCipher(stmt.Params, proof.A, stmt.C[i])
		rhs = elgamal.Add(stmt.Params, rhs, elgamal.ScalarMul(stmt.Params, term, w))
	}

	if !lhs.C1.IsEqual(rhs.C1) || !lhs.C2.IsEqual(rhs.C2) {
		return cerr.NewProofVerificationError("Multi Exponentiation")
	}

	leftCommit := group.Identity()
	for j := 0; j < m; j++ {
		w := scalarPow(group, x, m-j)
		leftCommit = group.Element().Add(leftCommit, group.Element().Scale(stmt.CA[j], w))
	}
	rightCommit, err := ck.Commit(proof.A, proof.RAOpen)
	if err != nil {
		return err
	}
	if !leftCommit.IsEqual(rightCommit) {
		return cerr.NewProofVerificationError("Multi Exponentiation")
	}

	return nil
}
