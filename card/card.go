// Package card defines the plaintext-card and permutation types shared
// by the card-protocol facade and the shuffle argument. A card is
// simply a group element whose discrete logarithm no party knows; the
// mapping from a card to a human-meaningful label (e.g. a playing
// card's rank and suit) is left to callers, following the convention
// that deck semantics live above this module's core.
package card

import (
	"fmt"

	"github.com/barnettsmart/mentalpoker/cerr"
	"github.com/barnettsmart/mentalpoker/curve"
)

// Card is a plaintext card: an opaque group element.
type Card = curve.Element

// Permutation is a bijection on {0, ..., N-1}, represented as the
// image of each index: Image[j] = π(j).
type Permutation struct {
	Image []int
}

// New validates and wraps a permutation image vector.
func New(image []int) (*Permutation, error) {
	n := len(image)
	seen := make([]bool, n)
	for _, v := range image {
		if v < 0 || v >= n || seen[v] {
			return nil, fmt.Errorf("%w: not a bijection on [0,%d)", cerr.ErrInvalidVectorLength, n)
		}
		seen[v] = true
	}
	return &Permutation{Image: image}, nil
}

// Len returns the size of the permutation's domain.
func (p *Permutation) Len() int {
	return len(p.Image)
}

// At returns π(j).
func (p *Permutation) At(j int) int {
	return p.Image[j]
}

// Inverse returns π^-1.
func (p *Permutation) Inverse() *Permutation {
	inv := make([]int, len(p.Image))
	for j, pj := range p.Image {
		inv[pj] = j
	}
	return &Permutation{Image: inv}
}

// Apply returns a new slice with new[π(j)] = old[j] for all j.
func Apply[T any](p *Permutation, old []T) []T {
	out := make([]T, len(old))
	for j, v := range old {
		out[p.Image[j]] = v
	}
	return out
}
