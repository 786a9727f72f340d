// Package hashing implements the challenge hash used by the proofs and
// commitments of this module: an ordered list of integers or curve points is
// serialized, hashed once, and the digest is read back as an integer or as a
// scalar of the curve.
package hashing

import (
	"math/big"

	"github.com/smallyu/go-curv-hash/internal/crypto/curves"
)

// HashToInt hashes the concatenated big-endian encodings of values with D and
// returns the digest as an unsigned integer. With no values it returns the
// digest of the empty string.
func HashToInt[D Digest](values ...*big.Int) *big.Int {
	var d D
	return NewTranscript(d).AppendInts(values...).Int()
}

// HashToScalar hashes the concatenated encodings of points with D and reduces
// the digest modulo the order of c.
func HashToScalar[D Digest](c curves.Curve, points ...curves.Point) curves.Scalar {
	var d D
	return NewTranscript(d).AppendPoints(points...).Scalar(c)
}
