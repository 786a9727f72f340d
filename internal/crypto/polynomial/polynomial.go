package polynomial

import (
	"errors"
	"math/big"

	"github.com/smallyu/go-curv-hash/internal/crypto/curves"
)

var (
	// ErrNoShares is returned when interpolating without points.
	ErrNoShares = errors.New("polynomial: no shares to interpolate")

	// ErrDuplicateIndex is returned when two shares have the same x coordinate.
	ErrDuplicateIndex = errors.New("polynomial: duplicate share index")
)

// Polynomial represents a polynomial f(x) = a_0 + a_1*x + ... + a_t*x^t
// over the scalar field of the curve.
type Polynomial struct {
	Coefficients []curves.Scalar
	Curve        curves.Curve
}

// New generates a random polynomial of given degree with the constant term (secret) provided.
// If secret is nil, a random constant term is generated.
func New(curve curves.Curve, degree int, secret curves.Scalar) (*Polynomial, error) {
	if degree < 0 {
		return nil, errors.New("polynomial: degree must not be negative")
	}

	coeffs := make([]curves.Scalar, degree+1)
	var err error

	// a_0 is the secret
	if secret == nil {
		coeffs[0], err = curve.NewScalar()
		if err != nil {
			return nil, err
		}
	} else {
		coeffs[0] = secret
	}

	// Generate random coefficients a_1 ... a_t
	for i := 1; i <= degree; i++ {
		coeffs[i], err = curve.NewScalar()
		if err != nil {
			return nil, err
		}
	}

	return &Polynomial{
		Coefficients: coeffs,
		Curve:        curve,
	}, nil
}

// Evaluate calculates f(x) mod q
func (p *Polynomial) Evaluate(x curves.Scalar) curves.Scalar {
	// Horner's method
	// result = a_t
	// for i = t-1 down to 0:
	//   result = result * x + a_i
	degree := len(p.Coefficients) - 1
	result := p.Coefficients[degree]

	for i := degree - 1; i >= 0; i-- {
		result = result.Mul(x).Add(p.Coefficients[i])
	}

	return result
}

// EvaluateMulti calculates f(x) for multiple x values
func (p *Polynomial) EvaluateMulti(xs []curves.Scalar) []curves.Scalar {
	results := make([]curves.Scalar, len(xs))
	for i, x := range xs {
		results[i] = p.Evaluate(x)
	}
	return results
}

// Commitments returns the Feldman VSS commitments C_k = a_k * G.
func (p *Polynomial) Commitments() []curves.Point {
	g := p.Curve.BasePoint()
	out := make([]curves.Point, len(p.Coefficients))
	for i, a := range p.Coefficients {
		out[i] = g.ScalarMult(a)
	}
	return out
}

// VerifyShare checks share = f(x) against the Feldman commitments:
// share * G == sum_k x^k * C_k
func VerifyShare(curve curves.Curve, commitments []curves.Point, x, share curves.Scalar) bool {
	if len(commitments) == 0 || x == nil || share == nil {
		return false
	}

	// Horner's method in the exponent
	degree := len(commitments) - 1
	rhs := commitments[degree]
	for i := degree - 1; i >= 0; i-- {
		rhs = rhs.ScalarMult(x).Add(commitments[i])
	}

	return curve.BasePoint().ScalarMult(share).Equal(rhs)
}

// Interpolate recovers f(0) from points (xs[i], ys[i]) by Lagrange interpolation.
func Interpolate(curve curves.Curve, xs, ys []curves.Scalar) (curves.Scalar, error) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return nil, ErrNoShares
	}

	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if xs[i].Equal(xs[j]) {
				return nil, ErrDuplicateIndex
			}
		}
	}

	one := curve.NewScalarFromBigInt(big.NewInt(1))
	result := curve.NewScalarFromBigInt(big.NewInt(0))
	for i := range xs {
		// L_i(0) = prod_{j != i} x_j / (x_j - x_i)
		num, den := one, one
		for j := range xs {
			if j == i {
				continue
			}
			num = num.Mul(xs[j])
			den = den.Mul(xs[j].Add(xs[i].Neg()))
		}
		result = result.Add(ys[i].Mul(num).Mul(den.Invert()))
	}

	return result, nil
}
