// Package pedersen implements Pedersen vector commitments, generalizing
// the single-value util.PedersenCommit helper this module was adapted
// from to commit to a vector of scalars at once (needed by the
// Bayer-Groth shuffle argument's column commitments).
package pedersen

import (
	"io"

	"github.com/barnettsmart/mentalpoker/cerr"
	"github.com/barnettsmart/mentalpoker/curve"
)

// CommitKey holds the generators used by a Pedersen vector commitment:
// H blinds the commitment, and G[i] is bound to the i-th vector entry.
type CommitKey struct {
	Group curve.Group
	H     curve.Element
	G     []curve.Element
}

// Setup derives a commit key for vectors of length n by hashing
// domain-separated labels to group elements, so the discrete logs of
// H and each G[i] relative to the generator and to each other remain
// unknown to any party.
func Setup(rng io.Reader, group curve.Group, n int) (CommitKey, error) {
	h, err := group.Element().MapToGroup([]byte("pedersen-commit-key"), []byte("H"))
	if err != nil {
		return CommitKey{}, err
	}

	g := make([]curve.Element, n)
	for i := 0; i < n; i++ {
		gi, err := group.Element().MapToGroup([]byte("pedersen-commit-key"), indexLabel(i))
		if err != nil {
			return CommitKey{}, err
		}
		g[i] = gi
	}

	return CommitKey{Group: group, H: h, G: g}, nil
}

func indexLabel(i int) []byte {
	return []byte{byte(i >> 24), byte(i >> 16), byte(i >> 8), byte(i)}
}

// Commit computes C = r*H + Σ v[i]*G[i].
func (ck CommitKey) Commit(v []*curve.Scalar, r *curve.Scalar) (curve.Element, error) {
	if len(v) > len(ck.G) {
		return nil, cerr.ErrCommitKeyTooShort
	}

	c := ck.Group.Element().Scale(ck.H, r)
	for i, vi := range v {
		term := ck.Group.Element().Scale(ck.G[i], vi)
		c = ck.Group.Element().Add(c, term)
	}
	return c, nil
}

// CommitSingle commits to a single scalar value using the key's first
// generator, as the zero argument does for its coefficient
// commitments.
func (ck CommitKey) CommitSingle(v, r *curve.Scalar) (curve.Element, error) {
	return ck.Commit([]*curve.Scalar{v}, r)
}
