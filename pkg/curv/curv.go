// Package curv exposes the transcript hash of this module to protocol code:
// hash an ordered list of integers or curve points into a challenge integer
// or a scalar of any registered curve.
package curv

import (
	"math/big"

	"github.com/smallyu/go-curv-hash/internal/crypto/curves"
	"github.com/smallyu/go-curv-hash/internal/crypto/hashing"
)

// Point, Scalar and Curve are the curve abstraction every backend implements.
type (
	Point  = curves.Point
	Scalar = curves.Scalar
	Curve  = curves.Curve
)

// Errors returned at the package boundary.
var (
	ErrInvalidEncoding   = curves.ErrInvalidEncoding
	ErrUnsupportedCurve  = curves.ErrUnsupportedCurve
	ErrUnsupportedDigest = hashing.ErrUnsupportedDigest
)

// HashToInt hashes the ordered values with SHA-256 and returns the digest as
// an integer.
func HashToInt(values ...*big.Int) *big.Int {
	return hashing.HashToInt[hashing.SHA256](values...)
}

// HashToScalar hashes the ordered points with SHA-256 and reduces the digest
// into the scalar field of c.
func HashToScalar(c Curve, points ...Point) Scalar {
	return hashing.HashToScalar[hashing.SHA256](c, points...)
}

// CurveByName returns a registered curve.
func CurveByName(name string) (Curve, error) {
	return curves.ByName(name)
}

// Curves returns the names of the compiled-in curves.
func Curves() []string {
	return curves.Names()
}
