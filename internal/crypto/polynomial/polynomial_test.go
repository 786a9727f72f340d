package polynomial

import (
	"errors"
	"math/big"
	"testing"

	"github.com/smallyu/go-curv-hash/internal/crypto/curves"
)

func scalars(curve curves.Curve, vs ...int64) []curves.Scalar {
	out := make([]curves.Scalar, len(vs))
	for i, v := range vs {
		out[i] = curve.NewScalarFromBigInt(big.NewInt(v))
	}
	return out
}

func TestNew(t *testing.T) {
	curve := curves.Secp256k1()

	t.Run("with random secret", func(t *testing.T) {
		poly, err := New(curve, 2, nil)
		if err != nil {
			t.Fatalf("Failed to create polynomial: %v", err)
		}

		if len(poly.Coefficients) != 3 {
			t.Errorf("Expected 3 coefficients for degree 2, got %d", len(poly.Coefficients))
		}

		// All coefficients should be non-nil and within range
		for i, c := range poly.Coefficients {
			if c == nil {
				t.Fatalf("Coefficient %d is nil", i)
			}
			if c.BigInt().Cmp(curve.Order()) >= 0 {
				t.Errorf("Coefficient %d is out of range", i)
			}
		}
	})

	t.Run("with provided secret", func(t *testing.T) {
		secret := curve.NewScalarFromBigInt(big.NewInt(12345))
		poly, err := New(curve, 2, secret)
		if err != nil {
			t.Fatalf("Failed to create polynomial: %v", err)
		}

		if !poly.Coefficients[0].Equal(secret) {
			t.Errorf("Expected a_0 = %s, got %s", secret.BigInt(), poly.Coefficients[0].BigInt())
		}
	})

	t.Run("degree 0", func(t *testing.T) {
		secret := curve.NewScalarFromBigInt(big.NewInt(999))
		poly, err := New(curve, 0, secret)
		if err != nil {
			t.Fatalf("Failed to create polynomial: %v", err)
		}

		if len(poly.Coefficients) != 1 {
			t.Errorf("Expected 1 coefficient for degree 0, got %d", len(poly.Coefficients))
		}
	})

	t.Run("negative degree", func(t *testing.T) {
		if _, err := New(curve, -1, nil); err == nil {
			t.Error("Expected error for negative degree")
		}
	})
}

func TestEvaluate(t *testing.T) {
	curve := curves.Secp256k1()

	t.Run("constant polynomial", func(t *testing.T) {
		// f(x) = 5
		poly := &Polynomial{
			Coefficients: scalars(curve, 5),
			Curve:        curve,
		}

		for _, x := range scalars(curve, 0, 100) {
			result := poly.Evaluate(x)
			if result.BigInt().Cmp(big.NewInt(5)) != 0 {
				t.Errorf("f(%s) = %s, expected 5", x.BigInt(), result.BigInt())
			}
		}
	})

	t.Run("quadratic polynomial", func(t *testing.T) {
		// f(x) = 1 + 2x + 3x^2
		poly := &Polynomial{
			Coefficients: scalars(curve, 1, 2, 3),
			Curve:        curve,
		}

		xs := scalars(curve, 0, 1, 2, 3)
		expected := []int64{1, 6, 17, 34}
		for i, x := range xs {
			result := poly.Evaluate(x)
			if result.BigInt().Cmp(big.NewInt(expected[i])) != 0 {
				t.Errorf("f(%s) = %s, expected %d", x.BigInt(), result.BigInt(), expected[i])
			}
		}
	})

	t.Run("modular reduction", func(t *testing.T) {
		// f(x) = q-1 + 2x (should wrap around)
		qMinus1 := curve.NewScalarFromBigInt(new(big.Int).Sub(curve.Order(), big.NewInt(1)))
		poly := &Polynomial{
			Coefficients: []curves.Scalar{qMinus1, curve.NewScalarFromBigInt(big.NewInt(2))},
			Curve:        curve,
		}

		// f(1) = (q-1) + 2 = q+1 mod q = 1
		result := poly.Evaluate(curve.NewScalarFromBigInt(big.NewInt(1)))
		if result.BigInt().Cmp(big.NewInt(1)) != 0 {
			t.Errorf("f(1) = %s, expected 1 (after mod q)", result.BigInt())
		}
	})
}

func TestEvaluateMulti(t *testing.T) {
	curve := curves.Ed25519()

	// f(x) = 5 + 3x
	poly := &Polynomial{
		Coefficients: scalars(curve, 5, 3),
		Curve:        curve,
	}

	xs := scalars(curve, 0, 1, 2, 10)
	expected := []int64{5, 8, 11, 35}

	results := poly.EvaluateMulti(xs)

	if len(results) != len(expected) {
		t.Fatalf("Expected %d results, got %d", len(expected), len(results))
	}

	for i, r := range results {
		if r.BigInt().Cmp(big.NewInt(expected[i])) != 0 {
			t.Errorf("f(%s) = %s, expected %d", xs[i].BigInt(), r.BigInt(), expected[i])
		}
	}
}

func TestFeldmanVSS(t *testing.T) {
	for _, curve := range curves.All() {
		t.Run(curve.Name(), func(t *testing.T) {
			secret := curve.NewScalarFromBigInt(big.NewInt(42))
			poly, err := New(curve, 2, secret) // degree 2 means 3 shares needed
			if err != nil {
				t.Fatalf("Failed to create polynomial: %v", err)
			}
			commitments := poly.Commitments()

			xs := scalars(curve, 1, 2, 3, 4)
			shares := poly.EvaluateMulti(xs)

			for i := range xs {
				if !VerifyShare(curve, commitments, xs[i], shares[i]) {
					t.Errorf("Share %d failed verification", i+1)
				}
			}

			// a tampered share must fail
			bad := shares[0].Add(curve.NewScalarFromBigInt(big.NewInt(1)))
			if VerifyShare(curve, commitments, xs[0], bad) {
				t.Error("Tampered share passed verification")
			}

			// any 3 shares reconstruct the secret
			reconstructed, err := Interpolate(curve, xs[1:], shares[1:])
			if err != nil {
				t.Fatalf("Interpolate failed: %v", err)
			}
			if !reconstructed.Equal(secret) {
				t.Errorf("Reconstructed secret = %s, expected 42", reconstructed.BigInt())
			}
		})
	}
}

func TestInterpolateErrors(t *testing.T) {
	curve := curves.P256()

	if _, err := Interpolate(curve, nil, nil); !errors.Is(err, ErrNoShares) {
		t.Errorf("Expected ErrNoShares, got %v", err)
	}

	xs := scalars(curve, 1, 1)
	ys := scalars(curve, 5, 6)
	if _, err := Interpolate(curve, xs, ys); !errors.Is(err, ErrDuplicateIndex) {
		t.Errorf("Expected ErrDuplicateIndex, got %v", err)
	}

	if VerifyShare(curve, nil, xs[0], ys[0]) {
		t.Error("VerifyShare passed without commitments")
	}
}
