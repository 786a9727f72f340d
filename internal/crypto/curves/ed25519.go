package curves

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"

	"github.com/smallyu/go-curv-hash/internal/crypto/bigint"
)

const ed25519ID = byte(2)

var (
	ed25519Once sync.Once
	ed25519Inst *Ed25519Curve

	ed25519Order = newEd25519Order()
)

// newEd25519Order returns l = 2^252 + 27742317777372353535851937790883648493.
func newEd25519Order() *big.Int {
	delta, _ := new(big.Int).SetString("27742317777372353535851937790883648493", 10)
	return new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 252), delta)
}

// Ed25519Curve is the prime-order subgroup of edwards25519. Decoded points
// outside the subgroup are rejected.
type Ed25519Curve struct {
	h *Ed25519Point
}

// Ed25519 returns the single instantiation of the ed25519 curve.
func Ed25519() *Ed25519Curve {
	ed25519Once.Do(initEd25519)
	return ed25519Inst
}

func initEd25519() {
	ed25519Inst = &Ed25519Curve{
		h: &Ed25519Point{p: keccakToPoint(edwards25519.NewGeneratorPoint().Bytes())},
	}
}

// keccakToPoint returns 8*decode(Keccak256(data)), rehashing until the
// digest decodes to a point outside the small-order subgroup. For the
// standard generator this is Monero's H and succeeds on the first try.
func keccakToPoint(data []byte) *edwards25519.Point {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	digest := h.Sum(nil)

	identity := edwards25519.NewIdentityPoint()
	for {
		p, err := new(edwards25519.Point).SetBytes(digest)
		if err == nil {
			p.MultByCofactor(p)
			if p.Equal(identity) != 1 {
				return p
			}
		}
		h.Reset()
		h.Write(digest)
		digest = h.Sum(nil)
	}
}

func (c *Ed25519Curve) Name() string {
	return "ed25519"
}

func (c *Ed25519Curve) ID() byte {
	return ed25519ID
}

func (c *Ed25519Curve) Order() *big.Int {
	return new(big.Int).Set(ed25519Order)
}

func (c *Ed25519Curve) NewScalar() (Scalar, error) {
	var b [64]byte
	_, err := rand.Read(b[:])
	if err != nil {
		return nil, err
	}

	s, err := edwards25519.NewScalar().SetUniformBytes(b[:])
	if err != nil {
		return nil, err
	}
	return &Ed25519Scalar{s: s}, nil
}

func (c *Ed25519Curve) NewScalarFromBigInt(n *big.Int) Scalar {
	// edwards25519 scalars are little-endian and must be canonical.
	buf := bigint.ToBytesLE(reduce(n, ed25519Order), 32)

	s, err := edwards25519.NewScalar().SetCanonicalBytes(buf)
	if err != nil {
		// unreachable: buf is reduced modulo l
		panic(err)
	}
	return &Ed25519Scalar{s: s}
}

func (c *Ed25519Curve) BasePoint() Point {
	return &Ed25519Point{p: edwards25519.NewGeneratorPoint()}
}

func (c *Ed25519Curve) AltBasePoint() Point {
	return c.h
}

func (c *Ed25519Curve) NewPointFromBytes(b []byte) (Point, error) {
	p, err := edwards25519.NewIdentityPoint().SetBytes(b)
	if err != nil {
		return nil, fmt.Errorf("%w: ed25519: %v", ErrInvalidEncoding, err)
	}
	if !torsionFree(p) {
		return nil, fmt.Errorf("%w: ed25519: point has a small-order component", ErrInvalidEncoding)
	}
	return &Ed25519Point{p: p}, nil
}

// torsionFree reports whether l*p is the identity, computed as (l-1)*p + p
// since l itself is not a canonical scalar.
func torsionFree(p *edwards25519.Point) bool {
	one := make([]byte, 32)
	one[0] = 1
	s, err := edwards25519.NewScalar().SetCanonicalBytes(one)
	if err != nil {
		panic(err)
	}
	lMinusOne := edwards25519.NewScalar().Negate(s)

	q := edwards25519.NewIdentityPoint().ScalarMult(lMinusOne, p)
	q.Add(q, p)
	return q.Equal(edwards25519.NewIdentityPoint()) == 1
}

// Ed25519Scalar implements Scalar
type Ed25519Scalar struct {
	s *edwards25519.Scalar
}

func assertEd25519Scalar(s Scalar) *Ed25519Scalar {
	o, ok := s.(*Ed25519Scalar)
	if !ok {
		panic(ErrCurveMismatch)
	}
	return o
}

// Bytes returns the 32-byte little-endian encoding.
func (s *Ed25519Scalar) Bytes() []byte {
	return s.s.Bytes()
}

func (s *Ed25519Scalar) BigInt() *big.Int {
	return bigint.FromBytesLE(s.s.Bytes())
}

func (s *Ed25519Scalar) Add(other Scalar) Scalar {
	o := assertEd25519Scalar(other)
	res := edwards25519.NewScalar().Add(s.s, o.s)
	return &Ed25519Scalar{s: res}
}

func (s *Ed25519Scalar) Mul(other Scalar) Scalar {
	o := assertEd25519Scalar(other)
	res := edwards25519.NewScalar().Multiply(s.s, o.s)
	return &Ed25519Scalar{s: res}
}

func (s *Ed25519Scalar) Neg() Scalar {
	res := edwards25519.NewScalar().Negate(s.s)
	return &Ed25519Scalar{s: res}
}

func (s *Ed25519Scalar) Invert() Scalar {
	res := edwards25519.NewScalar().Invert(s.s)
	return &Ed25519Scalar{s: res}
}

func (s *Ed25519Scalar) Equal(other Scalar) bool {
	o, ok := other.(*Ed25519Scalar)
	return ok && s.s.Equal(o.s) == 1
}

// Ed25519Point implements Point
type Ed25519Point struct {
	p *edwards25519.Point
}

// Bytes returns the 32-byte compressed encoding.
func (p *Ed25519Point) Bytes() []byte {
	return p.p.Bytes()
}

func (p *Ed25519Point) Add(other Point) Point {
	o, ok := other.(*Ed25519Point)
	if !ok {
		panic(ErrCurveMismatch)
	}
	res := edwards25519.NewIdentityPoint().Add(p.p, o.p)
	return &Ed25519Point{p: res}
}

func (p *Ed25519Point) ScalarMult(scalar Scalar) Point {
	s := assertEd25519Scalar(scalar)
	res := edwards25519.NewIdentityPoint().ScalarMult(s.s, p.p)
	return &Ed25519Point{p: res}
}

func (p *Ed25519Point) Equal(other Point) bool {
	o, ok := other.(*Ed25519Point)
	return ok && p.p.Equal(o.p) == 1
}
