// Package vec implements componentwise scalar-vector and
// element-vector arithmetic shared by the zkp argument packages,
// generalizing the big.Int vector helpers in the bulletproofs package
// this module was adapted from to operate on curve.Scalar/curve.Element.
package vec

import (
	"math/big"

	"github.com/barnettsmart/mentalpoker/cerr"
	"github.com/barnettsmart/mentalpoker/curve"
)

// Add returns a + b componentwise.
func Add(g curve.Group, a, b []*curve.Scalar) ([]*curve.Scalar, error) {
	if len(a) != len(b) {
		return nil, cerr.ErrInvalidVectorLength
	}
	result := make([]*curve.Scalar, len(a))
	for i := range a {
		result[i] = g.NewScalar().Add(a[i], b[i])
	}
	return result, nil
}

// Sub returns a - b componentwise.
func Sub(g curve.Group, a, b []*curve.Scalar) ([]*curve.Scalar, error) {
	if len(a) != len(b) {
		return nil, cerr.ErrInvalidVectorLength
	}
	result := make([]*curve.Scalar, len(a))
	for i := range a {
		result[i] = g.NewScalar().Subtract(a[i], b[i])
	}
	return result, nil
}

// Hadamard returns a ∘ b, the componentwise product.
func Hadamard(g curve.Group, a, b []*curve.Scalar) ([]*curve.Scalar, error) {
	if len(a) != len(b) {
		return nil, cerr.ErrInvalidVectorLength
	}
	result := make([]*curve.Scalar, len(a))
	for i := range a {
		result[i] = g.NewScalar().Multiply(a[i], b[i])
	}
	return result, nil
}

// ScalarMul returns c*a componentwise.
func ScalarMul(g curve.Group, a []*curve.Scalar, c *curve.Scalar) []*curve.Scalar {
	result := make([]*curve.Scalar, len(a))
	for i := range a {
		result[i] = g.NewScalar().Multiply(a[i], c)
	}
	return result
}

// AddConst returns a + c componentwise.
func AddConst(g curve.Group, a []*curve.Scalar, c *curve.Scalar) []*curve.Scalar {
	result := make([]*curve.Scalar, len(a))
	for i := range a {
		result[i] = g.NewScalar().Add(a[i], c)
	}
	return result
}

// InnerProduct returns ⟨a, b⟩ = Σ a_i*b_i.
func InnerProduct(g curve.Group, a, b []*curve.Scalar) (*curve.Scalar, error) {
	if len(a) != len(b) {
		return nil, cerr.ErrInvalidVectorLength
	}
	sum := g.NewScalar().SetInt64(0)
	for i := range a {
		term := g.NewScalar().Multiply(a[i], b[i])
		sum = g.NewScalar().Add(sum, term)
	}
	return sum, nil
}

// Powers returns (x^0, x^1, ..., x^(n-1)).
func Powers(g curve.Group, x *curve.Scalar, n int) []*curve.Scalar {
	result := make([]*curve.Scalar, n)
	cur := g.NewScalar().SetInt64(1)
	for i := 0; i < n; i++ {
		result[i] = cur
		cur = g.NewScalar().Multiply(cur, x)
	}
	return result
}

// Ones returns a length-n vector of 1s.
func Ones(g curve.Group, n int) []*curve.Scalar {
	result := make([]*curve.Scalar, n)
	for i := range result {
		result[i] = g.NewScalar().SetInt64(1)
	}
	return result
}

// ElementAdd returns a + b componentwise, as group elements.
func ElementAdd(g curve.Group, a, b []curve.Element) ([]curve.Element, error) {
	if len(a) != len(b) {
		return nil, cerr.ErrInvalidVectorLength
	}
	result := make([]curve.Element, len(a))
	for i := range a {
		result[i] = g.Element().Add(a[i], b[i])
	}
	return result, nil
}

// MultiScalarMul returns Σ scalars[i]*points[i].
func MultiScalarMul(g curve.Group, scalars []*curve.Scalar, points []curve.Element) (curve.Element, error) {
	if len(scalars) != len(points) {
		return nil, cerr.ErrInvalidVectorLength
	}
	acc := g.Identity()
	for i := range scalars {
		term := g.Element().Scale(points[i], scalars[i])
		acc = g.Element().Add(acc, term)
	}
	return acc, nil
}

// BigIntToScalar reduces a big.Int into the group's scalar field.
func BigIntToScalar(g curve.Group, v *big.Int) *curve.Scalar {
	return g.NewScalar().SetBigInt(v)
}
