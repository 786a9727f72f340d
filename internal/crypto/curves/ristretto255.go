package curves

import (
	"crypto/rand"
	"crypto/sha512"
	"fmt"
	"math/big"
	"sync"

	"github.com/gtank/ristretto255"

	"github.com/smallyu/go-curv-hash/internal/crypto/bigint"
)

const ristretto255ID = byte(3)

var (
	ristrettoOnce sync.Once
	ristrettoInst *Ristretto255Curve
)

// Ristretto255Curve is the ristretto255 prime-order group built on edwards25519.
// It shares the scalar field of Ed25519Curve.
type Ristretto255Curve struct {
	g *Ristretto255Point
	h *Ristretto255Point
}

// Ristretto255 returns the single instantiation of the ristretto255 group.
func Ristretto255() *Ristretto255Curve {
	ristrettoOnce.Do(initRistretto255)
	return ristrettoInst
}

func initRistretto255() {
	g := ristretto255.NewElement().Base()

	// H is the one-way map of SHA-512(G).
	digest := sha512.Sum512(g.Encode(nil))
	h := ristretto255.NewElement().FromUniformBytes(digest[:])

	ristrettoInst = &Ristretto255Curve{
		g: &Ristretto255Point{e: g},
		h: &Ristretto255Point{e: h},
	}
}

func (c *Ristretto255Curve) Name() string {
	return "ristretto255"
}

func (c *Ristretto255Curve) ID() byte {
	return ristretto255ID
}

func (c *Ristretto255Curve) Order() *big.Int {
	return new(big.Int).Set(ed25519Order)
}

func (c *Ristretto255Curve) NewScalar() (Scalar, error) {
	var b [64]byte
	if _, err := rand.Read(b[:]); err != nil {
		return nil, err
	}
	return &Ristretto255Scalar{s: ristretto255.NewScalar().FromUniformBytes(b[:])}, nil
}

func (c *Ristretto255Curve) NewScalarFromBigInt(n *big.Int) Scalar {
	return newRistrettoScalar(reduce(n, ed25519Order))
}

// newRistrettoScalar expects v already reduced modulo l.
func newRistrettoScalar(v *big.Int) *Ristretto255Scalar {
	s := ristretto255.NewScalar()
	if err := s.Decode(bigint.ToBytesLE(v, 32)); err != nil {
		// unreachable: v is canonical
		panic(err)
	}
	return &Ristretto255Scalar{s: s}
}

func (c *Ristretto255Curve) NewPointFromBytes(b []byte) (Point, error) {
	e := ristretto255.NewElement()
	if err := e.Decode(b); err != nil {
		return nil, fmt.Errorf("%w: ristretto255: %v", ErrInvalidEncoding, err)
	}
	return &Ristretto255Point{e: e}, nil
}

func (c *Ristretto255Curve) BasePoint() Point {
	return c.g
}

func (c *Ristretto255Curve) AltBasePoint() Point {
	return c.h
}

// Ristretto255Scalar implements Scalar
type Ristretto255Scalar struct {
	s *ristretto255.Scalar
}

func assertRistrettoScalar(s Scalar) *Ristretto255Scalar {
	o, ok := s.(*Ristretto255Scalar)
	if !ok {
		panic(ErrCurveMismatch)
	}
	return o
}

// Bytes returns the 32-byte little-endian encoding.
func (s *Ristretto255Scalar) Bytes() []byte {
	return s.s.Encode(nil)
}

func (s *Ristretto255Scalar) BigInt() *big.Int {
	return bigint.FromBytesLE(s.s.Encode(nil))
}

func (s *Ristretto255Scalar) Add(other Scalar) Scalar {
	o := assertRistrettoScalar(other)
	return &Ristretto255Scalar{s: ristretto255.NewScalar().Add(s.s, o.s)}
}

func (s *Ristretto255Scalar) Mul(other Scalar) Scalar {
	o := assertRistrettoScalar(other)
	return &Ristretto255Scalar{s: ristretto255.NewScalar().Multiply(s.s, o.s)}
}

func (s *Ristretto255Scalar) Neg() Scalar {
	return &Ristretto255Scalar{s: ristretto255.NewScalar().Negate(s.s)}
}

func (s *Ristretto255Scalar) Invert() Scalar {
	inv := new(big.Int).ModInverse(s.BigInt(), ed25519Order)
	if inv == nil {
		inv = new(big.Int)
	}
	return newRistrettoScalar(inv)
}

func (s *Ristretto255Scalar) Equal(other Scalar) bool {
	o, ok := other.(*Ristretto255Scalar)
	return ok && s.s.Equal(o.s) == 1
}

// Ristretto255Point implements Point
type Ristretto255Point struct {
	e *ristretto255.Element
}

// Bytes returns the 32-byte ristretto encoding.
func (p *Ristretto255Point) Bytes() []byte {
	return p.e.Encode(nil)
}

func (p *Ristretto255Point) Add(other Point) Point {
	o, ok := other.(*Ristretto255Point)
	if !ok {
		panic(ErrCurveMismatch)
	}
	return &Ristretto255Point{e: ristretto255.NewElement().Add(p.e, o.e)}
}

func (p *Ristretto255Point) ScalarMult(scalar Scalar) Point {
	s := assertRistrettoScalar(scalar)
	return &Ristretto255Point{e: ristretto255.NewElement().ScalarMult(s.s, p.e)}
}

func (p *Ristretto255Point) Equal(other Point) bool {
	o, ok := other.(*Ristretto255Point)
	return ok && p.e.Equal(o.e) == 1
}
