package curves

import (
	"bytes"
	"crypto/elliptic"
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"

	"filippo.io/nistec"
	"github.com/cloudflare/circl/group"

	"github.com/smallyu/go-curv-hash/internal/crypto/bigint"
)

const (
	p256ID = byte(4)
	p384ID = byte(5)

	p384AltDST = "go-curv-hash:P384:alt-base-point"
)

var (
	p256Once sync.Once
	p256Inst *P256Curve

	p384Once sync.Once
	p384Inst *P384Curve
)

// NistScalar is the scalar of the NIST backends, an integer modulo the group
// order. Neither nistec nor the point API of circl expose a scalar field we
// can do arithmetic in, so the value is kept as a big.Int.
type NistScalar struct {
	v     *big.Int
	order *big.Int
	size  int
	id    byte
}

func newNistScalar(v, order *big.Int, size int, id byte) *NistScalar {
	return &NistScalar{v: reduce(v, order), order: order, size: size, id: id}
}

func (s *NistScalar) assert(other Scalar) *NistScalar {
	o, ok := other.(*NistScalar)
	if !ok || o.id != s.id {
		panic(ErrCurveMismatch)
	}
	return o
}

// Bytes returns the fixed-width big-endian encoding.
func (s *NistScalar) Bytes() []byte {
	return bigint.PadBytes(s.v.Bytes(), s.size)
}

func (s *NistScalar) BigInt() *big.Int {
	return new(big.Int).Set(s.v)
}

func (s *NistScalar) Add(other Scalar) Scalar {
	o := s.assert(other)
	return newNistScalar(new(big.Int).Add(s.v, o.v), s.order, s.size, s.id)
}

func (s *NistScalar) Mul(other Scalar) Scalar {
	o := s.assert(other)
	return newNistScalar(new(big.Int).Mul(s.v, o.v), s.order, s.size, s.id)
}

func (s *NistScalar) Neg() Scalar {
	return newNistScalar(new(big.Int).Neg(s.v), s.order, s.size, s.id)
}

func (s *NistScalar) Invert() Scalar {
	inv := new(big.Int).ModInverse(s.v, s.order)
	if inv == nil {
		inv = new(big.Int)
	}
	return newNistScalar(inv, s.order, s.size, s.id)
}

func (s *NistScalar) Equal(other Scalar) bool {
	o, ok := other.(*NistScalar)
	return ok && o.id == s.id && s.v.Cmp(o.v) == 0
}

func randomNistScalar(order *big.Int, size int, id byte) (Scalar, error) {
	k, err := rand.Int(rand.Reader, order)
	if err != nil {
		return nil, err
	}
	return newNistScalar(k, order, size, id), nil
}

// P256Curve is the NIST P-256 backend, wrapping filippo.io/nistec.
type P256Curve struct {
	order *big.Int
	g     *P256Point
	h     *P256Point
}

// P256 returns the single instantiation of the P-256 curve.
func P256() *P256Curve {
	p256Once.Do(initP256)
	return p256Inst
}

func initP256() {
	g := nistec.NewP256Point().SetGenerator()

	h := findPoint(g.BytesCompressed(), func(b []byte) (*P256Point, error) {
		p, err := nistec.NewP256Point().SetBytes(b)
		if err != nil {
			return nil, err
		}
		return &P256Point{p: p}, nil
	})

	p256Inst = &P256Curve{
		order: elliptic.P256().Params().N,
		g:     &P256Point{p: g},
		h:     h,
	}
}

func (c *P256Curve) Name() string {
	return "p256"
}

func (c *P256Curve) ID() byte {
	return p256ID
}

func (c *P256Curve) Order() *big.Int {
	return new(big.Int).Set(c.order)
}

func (c *P256Curve) NewScalar() (Scalar, error) {
	return randomNistScalar(c.order, 32, p256ID)
}

func (c *P256Curve) NewScalarFromBigInt(n *big.Int) Scalar {
	return newNistScalar(n, c.order, 32, p256ID)
}

func (c *P256Curve) NewPointFromBytes(b []byte) (Point, error) {
	p, err := nistec.NewP256Point().SetBytes(b)
	if err != nil {
		return nil, fmt.Errorf("%w: p256: %v", ErrInvalidEncoding, err)
	}
	return &P256Point{p: p}, nil
}

func (c *P256Curve) BasePoint() Point {
	return c.g
}

func (c *P256Curve) AltBasePoint() Point {
	return c.h
}

// P256Point implements Point
type P256Point struct {
	p *nistec.P256Point
}

// Bytes returns the 65-byte uncompressed encoding, or 0x00 for infinity.
func (p *P256Point) Bytes() []byte {
	return p.p.Bytes()
}

func (p *P256Point) Add(other Point) Point {
	o, ok := other.(*P256Point)
	if !ok {
		panic(ErrCurveMismatch)
	}
	return &P256Point{p: nistec.NewP256Point().Add(p.p, o.p)}
}

func (p *P256Point) ScalarMult(scalar Scalar) Point {
	s, ok := scalar.(*NistScalar)
	if !ok || s.id != p256ID {
		panic(ErrCurveMismatch)
	}
	res, err := nistec.NewP256Point().ScalarMult(p.p, s.Bytes())
	if err != nil {
		// unreachable: the scalar is always 32 bytes
		panic(err)
	}
	return &P256Point{p: res}
}

func (p *P256Point) Equal(other Point) bool {
	o, ok := other.(*P256Point)
	return ok && bytes.Equal(p.p.Bytes(), o.p.Bytes())
}

// P384Curve is the NIST P-384 backend, wrapping circl's prime-order group.
type P384Curve struct {
	order *big.Int
	h     *P384Point
}

// P384 returns the single instantiation of the P-384 curve.
func P384() *P384Curve {
	p384Once.Do(initP384)
	return p384Inst
}

func initP384() {
	g, err := group.P384.Generator().MarshalBinary()
	if err != nil {
		panic(err)
	}

	p384Inst = &P384Curve{
		order: elliptic.P384().Params().N,
		h:     &P384Point{e: group.P384.HashToElement(g, []byte(p384AltDST))},
	}
}

func (c *P384Curve) Name() string {
	return "p384"
}

func (c *P384Curve) ID() byte {
	return p384ID
}

func (c *P384Curve) Order() *big.Int {
	return new(big.Int).Set(c.order)
}

func (c *P384Curve) NewScalar() (Scalar, error) {
	return randomNistScalar(c.order, 48, p384ID)
}

func (c *P384Curve) NewScalarFromBigInt(n *big.Int) Scalar {
	return newNistScalar(n, c.order, 48, p384ID)
}

func (c *P384Curve) NewPointFromBytes(b []byte) (Point, error) {
	e := group.P384.NewElement()
	if err := e.UnmarshalBinary(b); err != nil {
		return nil, fmt.Errorf("%w: p384: %v", ErrInvalidEncoding, err)
	}
	return &P384Point{e: e}, nil
}

func (c *P384Curve) BasePoint() Point {
	return &P384Point{e: group.P384.Generator()}
}

func (c *P384Curve) AltBasePoint() Point {
	return c.h
}

// P384Point implements Point
type P384Point struct {
	e group.Element
}

// Bytes returns the 97-byte uncompressed encoding, or 0x00 for infinity.
func (p *P384Point) Bytes() []byte {
	b, err := p.e.MarshalBinary()
	if err != nil {
		// circl only fails to marshal elements of foreign groups
		panic(err)
	}
	return b
}

func (p *P384Point) Add(other Point) Point {
	o, ok := other.(*P384Point)
	if !ok {
		panic(ErrCurveMismatch)
	}
	return &P384Point{e: group.P384.NewElement().Add(p.e, o.e)}
}

func (p *P384Point) ScalarMult(scalar Scalar) Point {
	s, ok := scalar.(*NistScalar)
	if !ok || s.id != p384ID {
		panic(ErrCurveMismatch)
	}
	k := group.P384.NewScalar()
	if err := k.UnmarshalBinary(s.Bytes()); err != nil {
		// unreachable: the scalar is reduced and 48 bytes wide
		panic(err)
	}
	return &P384Point{e: group.P384.NewElement().Mul(p.e, k)}
}

func (p *P384Point) Equal(other Point) bool {
	o, ok := other.(*P384Point)
	return ok && p.e.IsEqual(o.e)
}
