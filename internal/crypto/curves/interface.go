package curves

import (
	"errors"
	"math/big"
)

var (
	// ErrInvalidEncoding is returned when bytes do not decode to a valid point of the curve.
	ErrInvalidEncoding = errors.New("curves: invalid point encoding")

	// ErrUnsupportedCurve is returned by registry lookups for unknown curves.
	ErrUnsupportedCurve = errors.New("curves: unsupported curve")

	// ErrCurveMismatch is the panic value used when points or scalars of
	// different curves are combined.
	ErrCurveMismatch = errors.New("curves: curve mismatch")
)

// Point represents a point on an elliptic curve.
// Points are immutable: every operation returns a new value.
type Point interface {
	// Bytes returns the canonical public-key encoding of the point.
	// It is deterministic and is the representation fed into transcripts.
	Bytes() []byte

	// Add adds this point to another point.
	Add(p Point) Point

	// ScalarMult multiplies this point by a scalar.
	ScalarMult(s Scalar) Point

	// Equal reports whether both points are the same group element.
	Equal(p Point) bool
}

// Scalar represents a scalar value in the curve's scalar field.
// Scalars are always reduced modulo the group order.
type Scalar interface {
	// Bytes returns the serialization of the scalar.
	Bytes() []byte

	// BigInt returns the scalar as a big integer in [0, order).
	BigInt() *big.Int

	// Add adds this scalar to another scalar.
	Add(s Scalar) Scalar

	// Mul multiplies this scalar by another scalar.
	Mul(s Scalar) Scalar

	// Neg returns the additive inverse of the scalar.
	Neg() Scalar

	// Invert returns the modular inverse of the scalar. Zero inverts to zero.
	Invert() Scalar

	// Equal reports whether both scalars hold the same value.
	Equal(s Scalar) bool
}

// Curve is the contract every backend implements so that hashing and
// protocol code never reference a concrete curve's types.
type Curve interface {
	// Name returns the registry name of the curve.
	Name() string

	// ID returns the byte identifier of the curve.
	ID() byte

	// Order returns the order of the base point (group order).
	Order() *big.Int

	// NewScalar generates a uniformly random scalar.
	NewScalar() (Scalar, error)

	// NewScalarFromBigInt reduces n modulo the group order.
	// It is defined for every integer, including zero and values wider than the order.
	NewScalarFromBigInt(n *big.Int) Scalar

	// NewPointFromBytes deserializes a point, failing with ErrInvalidEncoding.
	NewPointFromBytes(b []byte) (Point, error)

	// BasePoint returns the generator point G.
	BasePoint() Point

	// AltBasePoint returns a second generator H whose discrete log
	// with respect to G is unknown.
	AltBasePoint() Point
}

// reduce returns n mod order as a fresh value. A nil n is treated as zero.
func reduce(n, order *big.Int) *big.Int {
	if n == nil {
		return new(big.Int)
	}
	return new(big.Int).Mod(n, order)
}
