package curve

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"

	circl "github.com/cloudflare/circl/group"
)

type ristrettoGroup struct {
	order *big.Int
	name  string
}

type ristrettoElement struct {
	curve *ristrettoGroup
	val   circl.Element
}

func (g *ristrettoGroup) Name() string { return g.name }

func (g *ristrettoGroup) MarshalJSON() ([]byte, error) {
	return json.Marshal(&GroupId{g.name})
}

func (g *ristrettoGroup) Order() *big.Int { return g.order }

func (g *ristrettoGroup) NewScalar() *Scalar {
	return newScalar(g.order)
}

func (g *ristrettoGroup) RandomScalar() *Scalar {
	return newScalar(g.order).Random()
}

func (g *ristrettoGroup) Generator() Element {
	return &ristrettoElement{curve: g, val: circl.Ristretto255.Generator()}
}

func (g *ristrettoGroup) Identity() Element {
	return &ristrettoElement{curve: g, val: circl.Ristretto255.Identity()}
}

func (g *ristrettoGroup) Random() Element {
	return &ristrettoElement{curve: g, val: circl.Ristretto255.RandomElement(rand.Reader)}
}

func (g *ristrettoGroup) Element() Element {
	return &ristrettoElement{curve: g, val: circl.Ristretto255.NewElement()}
}

func (e *ristrettoElement) check(a Element) *ristrettoElement {
	ea, ok := a.(*ristrettoElement)
	if !ok {
		panic("curve: incompatible group element type")
	}
	return ea
}

func (e *ristrettoElement) Add(a, b Element) Element {
	ca, cb := e.check(a), e.check(b)
	e.curve = ca.curve
	e.val = circl.Ristretto255.NewElement().Add(ca.val, cb.val)
	return e
}

func (e *ristrettoElement) Subtract(a, b Element) Element {
	neg := e.check(b).curve.Identity()
	neg.Negate(b)
	return e.Add(a, neg)
}

func (e *ristrettoElement) Negate(a Element) Element {
	ca := e.check(a)
	e.curve = ca.curve
	e.val = circl.Ristretto255.NewElement().Neg(ca.val)
	return e
}

func (e *ristrettoElement) IsEqual(b Element) bool {
	return e.val.IsEqual(e.check(b).val)
}

func (e *ristrettoElement) Set(x Element) Element {
	cx := e.check(x)
	e.curve = cx.curve
	e.val = circl.Ristretto255.NewElement().Set(cx.val)
	return e
}

func (e *ristrettoElement) SetBytes(b []byte) Element {
	e.val = circl.Ristretto255.NewElement()
	_ = e.val.UnmarshalBinary(b)
	return e
}

func (e *ristrettoElement) Scale(x Element, s *Scalar) Element {
	cx := e.check(x)
	e.curve = cx.curve
	sc := circl.Ristretto255.NewScalar().SetBigInt(s.BigInt())
	e.val = circl.Ristretto255.NewElement().Mul(cx.val, sc)
	return e
}

func (e *ristrettoElement) BaseScale(s *Scalar) Element {
	sc := circl.Ristretto255.NewScalar().SetBigInt(s.BigInt())
	e.val = circl.Ristretto255.NewElement().MulGen(sc)
	return e
}

func (e *ristrettoElement) MapToGroup(dst, msg []byte) (Element, error) {
	e.val = circl.Ristretto255.HashToElement(msg, dst)
	return e, nil
}

func (e *ristrettoElement) String() string {
	tmp, _ := e.val.MarshalBinary()
	return fmt.Sprintf("%x", tmp)
}

func (e *ristrettoElement) IsIdentity() bool { return e.val.IsIdentity() }

func (e *ristrettoElement) MarshalBinary() ([]byte, error) { return e.val.MarshalBinary() }

func (e *ristrettoElement) UnmarshalBinary(data []byte) error {
	return e.val.UnmarshalBinary(data)
}

func (e *ristrettoElement) MarshalJSON() ([]byte, error) {
	tmp, err := e.val.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return json.Marshal(EncodedPoint{Data: tmp})
}

func (e *ristrettoElement) UnmarshalJSON(data []byte) error {
	var enc EncodedPoint
	if err := json.Unmarshal(data, &enc); err != nil {
		return err
	}
	e.val = circl.Ristretto255.NewElement()
	return e.val.UnmarshalBinary(enc.Data)
}

// Ristretto255 returns the group facade backed by circl's ristretto255
// implementation: a prime-order group with no cofactor, the default
// backend used throughout this module.
func Ristretto255() Group {
	n, _ := new(big.Int).SetString("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed", 16)
	return &ristrettoGroup{order: n, name: "ristretto255"}
}
