package curve

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"

	circl "github.com/cloudflare/circl/group"
)

type p256Group struct {
	fieldOrder *big.Int
	curveOrder *big.Int
	name       string
}

type p256Element struct {
	curve *p256Group
	val   circl.Element
}

// ECPoint is the affine JSON encoding used for the P-256 backend,
// mirroring the curve's own uncompressed point format.
type ECPoint struct {
	X *big.Int `json:"x"`
	Y *big.Int `json:"y"`
}

func (g *p256Group) Name() string { return g.name }

func (g *p256Group) MarshalJSON() ([]byte, error) {
	return json.Marshal(&GroupId{g.name})
}

func (g *p256Group) Order() *big.Int { return g.curveOrder }

func (g *p256Group) NewScalar() *Scalar {
	return newScalar(g.curveOrder)
}

func (g *p256Group) RandomScalar() *Scalar {
	return newScalar(g.curveOrder).Random()
}

func (g *p256Group) Generator() Element {
	return &p256Element{curve: g, val: circl.P256.Generator()}
}

func (g *p256Group) Identity() Element {
	return &p256Element{curve: g, val: circl.P256.Identity()}
}

func (g *p256Group) Random() Element {
	return &p256Element{curve: g, val: circl.P256.RandomElement(rand.Reader)}
}

func (g *p256Group) Element() Element {
	return &p256Element{curve: g, val: circl.P256.NewElement()}
}

func (e *p256Element) check(a Element) *p256Element {
	ea, ok := a.(*p256Element)
	if !ok {
		panic("curve: incompatible group element type")
	}
	return ea
}

func (e *p256Element) Add(a, b Element) Element {
	ca, cb := e.check(a), e.check(b)
	e.curve = ca.curve
	e.val = circl.P256.NewElement().Add(ca.val, cb.val)
	return e
}

func (e *p256Element) Subtract(a, b Element) Element {
	neg := e.check(b).curve.Identity()
	neg.Negate(b)
	return e.Add(a, neg)
}

func (e *p256Element) Negate(a Element) Element {
	ca := e.check(a)
	e.curve = ca.curve
	e.val = circl.P256.NewElement().Neg(ca.val)
	return e
}

func (e *p256Element) IsEqual(b Element) bool {
	return e.val.IsEqual(e.check(b).val)
}

func (e *p256Element) Set(x Element) Element {
	cx := e.check(x)
	e.curve = cx.curve
	e.val = circl.P256.NewElement().Set(cx.val)
	return e
}

func (e *p256Element) SetBytes(b []byte) Element {
	e.val = circl.P256.NewElement()
	_ = e.val.UnmarshalBinary(b)
	return e
}

func (e *p256Element) Scale(x Element, s *Scalar) Element {
	cx := e.check(x)
	e.curve = cx.curve
	sc := circl.P256.NewScalar().SetBigInt(s.BigInt())
	e.val = circl.P256.NewElement().Mul(cx.val, sc)
	return e
}

func (e *p256Element) BaseScale(s *Scalar) Element {
	sc := circl.P256.NewScalar().SetBigInt(s.BigInt())
	e.val = circl.P256.NewElement().MulGen(sc)
	return e
}

func (e *p256Element) MapToGroup(dst, msg []byte) (Element, error) {
	e.val = circl.P256.HashToElement(msg, dst)
	return e, nil
}

func (e *p256Element) String() string {
	tmp, _ := e.val.MarshalBinary()
	return fmt.Sprintf("%x", tmp)
}

func (e *p256Element) IsIdentity() bool { return e.val.IsIdentity() }

func (e *p256Element) MarshalBinary() ([]byte, error) { return e.val.MarshalBinary() }

func (e *p256Element) UnmarshalBinary(data []byte) error {
	return e.val.UnmarshalBinary(data)
}

func (e *p256Element) MarshalJSON() ([]byte, error) {
	tmp, err := e.val.MarshalBinary()
	if err != nil {
		return nil, err
	}

	xVal, yVal := big.NewInt(0), big.NewInt(0)
	// tmp[0] == 0 encodes the point at infinity.
	if len(tmp) > 0 && tmp[0] != 0 {
		xBytes := tmp[1 : 32+1]
		yBytes := tmp[1+32:]
		if len(xBytes) != 32 || len(xBytes) != len(yBytes) {
			return nil, fmt.Errorf("curve: malformed P-256 binary encoding")
		}
		xVal.SetBytes(xBytes)
		yVal.SetBytes(yBytes)
	}

	return json.Marshal(&ECPoint{X: xVal, Y: yVal})
}

func (e *p256Element) UnmarshalJSON(data []byte) error {
	var point ECPoint
	if err := json.Unmarshal(data, &point); err != nil {
		return err
	}

	e.val = circl.P256.NewElement()
	if point.X.Sign() == 0 && point.Y.Sign() == 0 {
		return e.val.UnmarshalBinary([]byte{0})
	}

	const byteLen = 32
	xBytes, yBytes := point.X.Bytes(), point.Y.Bytes()
	tmp := make([]byte, 1+2*byteLen)
	tmp[0] = 4
	copy(tmp[1+byteLen-len(xBytes):byteLen+1], xBytes)
	copy(tmp[1+2*byteLen-len(yBytes):], yBytes)
	return e.val.UnmarshalBinary(tmp)
}

// P256 returns the group facade backed by circl's NIST P-256
// implementation, offered as an alternate backend to demonstrate the
// facade is not tied to a single curve.
func P256() Group {
	p, _ := new(big.Int).SetString("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff", 16)
	n, _ := new(big.Int).SetString("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551", 16)
	return &p256Group{fieldOrder: p, curveOrder: n, name: "P-256"}
}
