package curv

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashToInt(t *testing.T) {
	// Very basic test here, mirrors the smallest useful calls
	HashToInt()

	result := HashToInt(big.NewInt(1), big.NewInt(0))
	assert.Equal(t, 1, result.Sign())
}

func TestHashToScalar(t *testing.T) {
	c, err := CurveByName("secp256k1")
	require.NoError(t, err)

	point := c.AltBasePoint()
	result1 := HashToScalar(c, point, c.BasePoint())
	assert.Equal(t, -1, result1.BigInt().Cmp(c.Order()))

	result2 := HashToScalar(c, c.BasePoint(), point)
	assert.False(t, result1.Equal(result2))

	result3 := HashToScalar(c, c.BasePoint(), point)
	assert.True(t, result2.Equal(result3))
}

func TestSuite(t *testing.T) {
	s, err := NewSuite(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "secp256k1", s.Curve().Name())
	assert.Equal(t, "sha256", s.Digest())

	// the default suite matches the package-level functions
	v := big.NewInt(99)
	assert.Equal(t, 0, s.HashToInt(v).Cmp(HashToInt(v)))
	g := s.Curve().BasePoint()
	assert.True(t, s.HashToScalar(g).Equal(HashToScalar(s.Curve(), g)))

	// a mixed transcript of only points matches HashToScalar
	tr := s.NewTranscript().AppendPoint(g)
	assert.True(t, tr.Scalar(s.Curve()).Equal(s.HashToScalar(g)))
}

func TestSuiteOtherDigest(t *testing.T) {
	s, err := NewSuite(Config{Curve: "ristretto255", Digest: "sha512"})
	require.NoError(t, err)

	assert.Len(t, s.HashToInt().Bytes(), 64)
	assert.Equal(t, -1, s.HashToScalar(s.Curve().BasePoint()).BigInt().Cmp(s.Curve().Order()))

	sha256Suite, err := NewSuite(Config{Curve: "ristretto255", Digest: "sha256"})
	require.NoError(t, err)
	assert.NotEqual(t, 0, s.HashToInt().Cmp(sha256Suite.HashToInt()))
}

func TestSuiteInvalidConfig(t *testing.T) {
	_, err := NewSuite(Config{Curve: "jubjub", Digest: "sha256"})
	assert.True(t, errors.Is(err, ErrUnsupportedCurve))

	_, err = NewSuite(Config{Curve: "ed25519", Digest: "md5"})
	assert.True(t, errors.Is(err, ErrUnsupportedDigest))
}

func TestCurves(t *testing.T) {
	assert.Contains(t, Curves(), "secp256k1")
	assert.Contains(t, Curves(), "ed25519")

	_, err := CurveByName("curve448")
	assert.True(t, errors.Is(err, ErrUnsupportedCurve))
}
