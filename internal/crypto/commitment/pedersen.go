package commitment

import (
	"errors"

	"github.com/smallyu/go-curv-hash/internal/crypto/curves"
)

// PedersenCommitment is C = m*G + r*H, where G and H are the base point and
// the alternative base point of the curve.
type PedersenCommitment struct {
	C curves.Point  // The commitment point
	R curves.Scalar // The blinding scalar
}

// NewPedersen commits to m with a random blinding scalar.
func NewPedersen(c curves.Curve, m curves.Scalar) (*PedersenCommitment, error) {
	if c == nil || m == nil {
		return nil, errors.New("commitment: inputs cannot be nil")
	}

	r, err := c.NewScalar()
	if err != nil {
		return nil, err
	}

	return &PedersenCommitment{
		C: Pedersen(c, m, r),
		R: r,
	}, nil
}

// Pedersen computes m*G + r*H.
func Pedersen(c curves.Curve, m, r curves.Scalar) curves.Point {
	mG := c.BasePoint().ScalarMult(m)
	rH := c.AltBasePoint().ScalarMult(r)
	return mG.Add(rH)
}

// VerifyPedersen checks that commitment opens to m with blinding r.
func VerifyPedersen(c curves.Curve, commitment curves.Point, m, r curves.Scalar) bool {
	if c == nil || commitment == nil || m == nil || r == nil {
		return false
	}
	return Pedersen(c, m, r).Equal(commitment)
}
