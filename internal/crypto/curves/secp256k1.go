package curves

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"math/big"
	"sync"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const secp256k1ID = byte(1)

var (
	secp256k1Once sync.Once
	secp256k1Inst *Secp256k1Curve
)

// Secp256k1Curve is the secp256k1 backend, wrapping decred's implementation.
type Secp256k1Curve struct {
	g *Secp256k1Point
	h *Secp256k1Point
}

// Secp256k1 returns the single instantiation of the secp256k1 curve.
func Secp256k1() *Secp256k1Curve {
	secp256k1Once.Do(initSecp256k1)
	return secp256k1Inst
}

func initSecp256k1() {
	var one secp256k1.ModNScalar
	one.SetInt(1)

	var g secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&one, &g)
	g.ToAffine()

	base := &Secp256k1Point{p: g}

	// H: hash the compressed generator and rehash until it is a valid x coordinate.
	compressed := secp256k1.NewPublicKey(&g.X, &g.Y).SerializeCompressed()
	alt := findPoint(compressed, func(b []byte) (*Secp256k1Point, error) {
		pk, err := secp256k1.ParsePubKey(b)
		if err != nil {
			return nil, err
		}
		var h secp256k1.JacobianPoint
		pk.AsJacobian(&h)
		return &Secp256k1Point{p: h}, nil
	})

	secp256k1Inst = &Secp256k1Curve{g: base, h: alt}
}

func (c *Secp256k1Curve) Name() string {
	return "secp256k1"
}

func (c *Secp256k1Curve) ID() byte {
	return secp256k1ID
}

func (c *Secp256k1Curve) Order() *big.Int {
	return new(big.Int).Set(secp256k1.S256().N)
}

func (c *Secp256k1Curve) NewScalar() (Scalar, error) {
	// Generate random integer in [0, N-1]
	k, err := rand.Int(rand.Reader, secp256k1.S256().N)
	if err != nil {
		return nil, err
	}
	return c.NewScalarFromBigInt(k), nil
}

func (c *Secp256k1Curve) NewScalarFromBigInt(n *big.Int) Scalar {
	// SetByteSlice truncates to 32 bytes instead of reducing, so reduce first.
	r := reduce(n, secp256k1.S256().N)

	s := new(Secp256k1Scalar)
	s.s.SetByteSlice(r.Bytes())
	return s
}

func (c *Secp256k1Curve) NewPointFromBytes(b []byte) (Point, error) {
	pk, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: secp256k1: %v", ErrInvalidEncoding, err)
	}
	p := new(Secp256k1Point)
	pk.AsJacobian(&p.p)
	return p, nil
}

func (c *Secp256k1Curve) BasePoint() Point {
	return c.g
}

func (c *Secp256k1Curve) AltBasePoint() Point {
	return c.h
}

// Secp256k1Scalar implements Scalar
type Secp256k1Scalar struct {
	s secp256k1.ModNScalar
}

func assertSecp256k1Scalar(s Scalar) *Secp256k1Scalar {
	o, ok := s.(*Secp256k1Scalar)
	if !ok {
		panic(ErrCurveMismatch)
	}
	return o
}

func (s *Secp256k1Scalar) Bytes() []byte {
	b := s.s.Bytes()
	return b[:]
}

func (s *Secp256k1Scalar) BigInt() *big.Int {
	b := s.s.Bytes()
	return new(big.Int).SetBytes(b[:])
}

func (s *Secp256k1Scalar) Add(other Scalar) Scalar {
	o := assertSecp256k1Scalar(other)
	res := new(Secp256k1Scalar)
	res.s.Add2(&s.s, &o.s)
	return res
}

func (s *Secp256k1Scalar) Mul(other Scalar) Scalar {
	o := assertSecp256k1Scalar(other)
	res := new(Secp256k1Scalar)
	res.s.Mul2(&s.s, &o.s)
	return res
}

func (s *Secp256k1Scalar) Neg() Scalar {
	res := new(Secp256k1Scalar)
	res.s.NegateVal(&s.s)
	return res
}

func (s *Secp256k1Scalar) Invert() Scalar {
	res := new(Secp256k1Scalar)
	res.s.InverseValNonConst(&s.s)
	return res
}

func (s *Secp256k1Scalar) Equal(other Scalar) bool {
	o, ok := other.(*Secp256k1Scalar)
	return ok && s.s.Equals(&o.s)
}

// Secp256k1Point implements Point. The wrapped point is always in affine
// form, with X = Y = 0 standing for the point at infinity.
type Secp256k1Point struct {
	p secp256k1.JacobianPoint
}

func assertSecp256k1Point(p Point) *Secp256k1Point {
	o, ok := p.(*Secp256k1Point)
	if !ok {
		panic(ErrCurveMismatch)
	}
	return o
}

func (p *Secp256k1Point) isInfinity() bool {
	return (p.p.X.IsZero() && p.p.Y.IsZero()) || p.p.Z.IsZero()
}

// Bytes returns the 65-byte uncompressed public key, or 0x00 for infinity.
func (p *Secp256k1Point) Bytes() []byte {
	if p.isInfinity() {
		return []byte{0x00}
	}
	return secp256k1.NewPublicKey(&p.p.X, &p.p.Y).SerializeUncompressed()
}

func (p *Secp256k1Point) Add(other Point) Point {
	o := assertSecp256k1Point(other)
	res := new(Secp256k1Point)
	secp256k1.AddNonConst(&p.p, &o.p, &res.p)
	res.p.ToAffine()
	return res
}

func (p *Secp256k1Point) ScalarMult(scalar Scalar) Point {
	s := assertSecp256k1Scalar(scalar)
	res := new(Secp256k1Point)
	secp256k1.ScalarMultNonConst(&s.s, &p.p, &res.p)
	res.p.ToAffine()
	return res
}

func (p *Secp256k1Point) Equal(other Point) bool {
	o, ok := other.(*Secp256k1Point)
	if !ok {
		return false
	}
	if p.isInfinity() || o.isInfinity() {
		return p.isInfinity() == o.isInfinity()
	}
	return p.p.X.Equals(&o.p.X) && p.p.Y.Equals(&o.p.Y)
}

// findPoint derives a point from seed by try-and-increment: x = SHA-256(seed),
// then x = SHA-256(x) until 0x02||x decodes on the curve.
func findPoint[P any](seed []byte, decode func([]byte) (P, error)) P {
	x := sha256.Sum256(seed)
	for {
		p, err := decode(append([]byte{0x02}, x[:]...))
		if err == nil {
			return p
		}
		x = sha256.Sum256(x[:])
	}
}
