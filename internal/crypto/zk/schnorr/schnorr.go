package schnorr

import (
	"errors"

	"github.com/smallyu/go-curv-hash/internal/crypto/curves"
	"github.com/smallyu/go-curv-hash/internal/crypto/hashing"
)

// Proof represents a Schnorr proof of knowledge of a discrete logarithm.
// Proves knowledge of x such that X = x * G.
type Proof struct {
	R curves.Point  // Commitment R = k * G
	S curves.Scalar // Response s = k + e * x
}

// Prove generates a Schnorr proof for the secret x, public key X = x*G,
// on any registered curve.
func Prove(c curves.Curve, x curves.Scalar, X curves.Point) (*Proof, error) {
	if c == nil || x == nil || X == nil {
		return nil, errors.New("schnorr: inputs cannot be nil")
	}

	// 1. Generate random nonce k
	k, err := c.NewScalar()
	if err != nil {
		return nil, err
	}

	// 2. Compute R = k * G
	R := c.BasePoint().ScalarMult(k)

	// 3. Compute challenge e = H(R, G, X)
	e := challenge(c, X, R)

	// 4. Compute s = k + e * x mod n
	s := k.Add(e.Mul(x))

	return &Proof{
		R: R,
		S: s,
	}, nil
}

// Verify checks the validity of the Schnorr proof for public key X.
func (p *Proof) Verify(c curves.Curve, X curves.Point) bool {
	if p == nil || p.R == nil || p.S == nil || c == nil || X == nil {
		return false
	}

	// 1. Recompute challenge e = H(R, G, X)
	e := challenge(c, X, p.R)

	// 2. Check s*G = R + e*X
	lhs := c.BasePoint().ScalarMult(p.S)
	rhs := p.R.Add(X.ScalarMult(e))

	return lhs.Equal(rhs)
}

// challenge computes H(R, G, X) mod n
func challenge(c curves.Curve, X, R curves.Point) curves.Scalar {
	return hashing.HashToScalar[hashing.SHA256](c, R, c.BasePoint(), X)
}
