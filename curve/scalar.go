package curve

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
)

// Scalar is an element of the scalar field of a Group, i.e. an integer
// modulo the group's prime order. All arithmetic methods reduce the
// result into [0, order) and return the receiver.
type Scalar struct {
	order *big.Int
	val   *big.Int
}

func newScalar(order *big.Int) *Scalar {
	return &Scalar{order: order, val: new(big.Int)}
}

// Order returns the modulus this scalar is defined over.
func (s *Scalar) Order() *big.Int {
	return s.order
}

// SetInt64 sets the receiver to v mod order.
func (s *Scalar) SetInt64(v int64) *Scalar {
	s.val = new(big.Int).Mod(big.NewInt(v), s.order)
	return s
}

// SetBigInt sets the receiver to v mod order.
func (s *Scalar) SetBigInt(v *big.Int) *Scalar {
	s.val = new(big.Int).Mod(v, s.order)
	return s
}

// BigInt returns a copy of the scalar's value as a big.Int in [0, order).
func (s *Scalar) BigInt() *big.Int {
	return new(big.Int).Set(s.val)
}

// Random sets the receiver to a uniformly sampled scalar.
func (s *Scalar) Random() *Scalar {
	v, err := rand.Int(rand.Reader, s.order)
	if err != nil {
		// crypto/rand failing is not recoverable.
		panic(err)
	}
	s.val = v
	return s
}

// Add sets the receiver to a + b.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	s.order = a.order
	s.val = new(big.Int).Mod(new(big.Int).Add(a.val, b.val), a.order)
	return s
}

// Subtract sets the receiver to a - b.
func (s *Scalar) Subtract(a, b *Scalar) *Scalar {
	s.order = a.order
	s.val = new(big.Int).Mod(new(big.Int).Sub(a.val, b.val), a.order)
	return s
}

// Multiply sets the receiver to a * b.
func (s *Scalar) Multiply(a, b *Scalar) *Scalar {
	s.order = a.order
	s.val = new(big.Int).Mod(new(big.Int).Mul(a.val, b.val), a.order)
	return s
}

// Negate sets the receiver to -a.
func (s *Scalar) Negate(a *Scalar) *Scalar {
	s.order = a.order
	s.val = new(big.Int).Mod(new(big.Int).Neg(a.val), a.order)
	return s
}

// Inverse sets the receiver to a^-1. a must be non-zero.
func (s *Scalar) Inverse(a *Scalar) *Scalar {
	s.order = a.order
	s.val = new(big.Int).ModInverse(a.val, a.order)
	return s
}

// Pow sets the receiver to a^e.
func (s *Scalar) Pow(a *Scalar, e *big.Int) *Scalar {
	s.order = a.order
	exp := e
	if exp.Sign() < 0 {
		exp = new(big.Int).Mod(exp, new(big.Int).Sub(a.order, big.NewInt(1)))
	}
	s.val = new(big.Int).Exp(a.val, exp, a.order)
	return s
}

// IsZero reports whether the scalar is 0.
func (s *Scalar) IsZero() bool {
	return s.val.Sign() == 0
}

// IsEqual reports whether the two scalars hold the same value.
func (s *Scalar) IsEqual(o *Scalar) bool {
	return s.val.Cmp(o.val) == 0
}

// Bytes returns the big-endian byte encoding of the scalar's value.
func (s *Scalar) Bytes() []byte {
	return s.val.Bytes()
}

// byteLen returns the fixed width, in bytes, that every scalar defined
// over order marshals to: enough bytes to hold order-1, so the
// encoding neither depends on the particular value nor truncates it.
func byteLen(order *big.Int) int {
	return (order.BitLen() + 7) / 8
}

// MarshalBinary encodes the scalar as a fixed-length, zero-padded
// big-endian byte string of width byteLen(order), mirroring
// circl/group's fixed-length element encoding so Scalar and Element
// share one canonical wire convention.
func (s *Scalar) MarshalBinary() ([]byte, error) {
	if s.order == nil {
		return nil, fmt.Errorf("curve: scalar has no group order to encode against")
	}
	n := byteLen(s.order)
	raw := s.val.Bytes()
	if len(raw) > n {
		return nil, fmt.Errorf("curve: scalar value overflows %d-byte encoding", n)
	}
	out := make([]byte, n)
	copy(out[n-len(raw):], raw)
	return out, nil
}

// UnmarshalBinary decodes a fixed-length big-endian scalar encoding
// produced by MarshalBinary, rejecting values that are not already
// canonically reduced modulo order.
func (s *Scalar) UnmarshalBinary(data []byte) error {
	if s.order == nil {
		return fmt.Errorf("curve: scalar has no group order to reduce against")
	}
	if len(data) != byteLen(s.order) {
		return fmt.Errorf("curve: invalid scalar encoding length %d", len(data))
	}
	v := new(big.Int).SetBytes(data)
	if v.Cmp(s.order) >= 0 {
		return fmt.Errorf("curve: scalar encoding %s not reduced modulo order", v.String())
	}
	s.val = v
	return nil
}

func (s *Scalar) String() string {
	return s.val.String()
}

func (s *Scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.val.String())
}

func (s *Scalar) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	v, ok := new(big.Int).SetString(str, 10)
	if !ok {
		return fmt.Errorf("curve: invalid scalar encoding %q", str)
	}
	if s.order == nil {
		return fmt.Errorf("curve: scalar has no group order to reduce against")
	}
	s.val = new(big.Int).Mod(v, s.order)
	return nil
}
