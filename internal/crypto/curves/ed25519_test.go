package curves

import (
	"encoding/hex"
	"math/big"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEd25519Scalar(t *testing.T) {
	curve := Ed25519()

	// Test NewScalar
	s1, err := curve.NewScalar()
	assert.NoError(t, err)
	assert.NotNil(t, s1)

	// Test NewScalarFromBigInt
	val := big.NewInt(12345)
	s2 := curve.NewScalarFromBigInt(val)
	assert.Equal(t, val, s2.BigInt())

	// Test Add
	s3 := s2.Add(s2)
	assert.Equal(t, big.NewInt(24690), s3.BigInt())

	// Test Mul
	s4 := s2.Mul(s2)
	expected := new(big.Int).Mul(val, val)
	assert.Equal(t, expected, s4.BigInt())

	// Test Invert
	s5 := s2.Invert()
	s6 := s5.Mul(s2)
	assert.Equal(t, big.NewInt(1), s6.BigInt())

	// Test Neg
	assert.Equal(t, 0, s2.Add(s2.Neg()).BigInt().Sign())
}

func TestEd25519ScalarReduction(t *testing.T) {
	curve := Ed25519()

	// l + 5 and a 512-bit value must both land in [0, l)
	lPlus5 := new(big.Int).Add(curve.Order(), big.NewInt(5))
	assert.Equal(t, big.NewInt(5), curve.NewScalarFromBigInt(lPlus5).BigInt())

	wide := new(big.Int).Lsh(big.NewInt(1), 511)
	s := curve.NewScalarFromBigInt(wide)
	assert.Equal(t, new(big.Int).Mod(wide, curve.Order()), s.BigInt())
}

func TestEd25519Point(t *testing.T) {
	curve := Ed25519()

	// Test BasePoint
	g := curve.BasePoint()
	assert.NotNil(t, g)

	// Test ScalarMult
	s := curve.NewScalarFromBigInt(big.NewInt(2))
	p2 := g.ScalarMult(s)

	// Test Add
	p3 := g.Add(g)
	assert.Equal(t, p2.Bytes(), p3.Bytes())
	assert.True(t, p2.Equal(p3))

	// Test NewPointFromBytes
	bytes := p2.Bytes()
	p4, err := curve.NewPointFromBytes(bytes)
	assert.NoError(t, err)
	assert.Equal(t, p2.Bytes(), p4.Bytes())
}

func TestEd25519AltBasePoint(t *testing.T) {
	// H = 8 * decode(Keccak256(G)), the Monero amount generator.
	expected, err := hex.DecodeString("8b655970153799af2aeadc9ff1add0ea6c7251d54154cfa92c173a0dd39c1f94")
	require.NoError(t, err)

	h := Ed25519().AltBasePoint()
	assert.Equal(t, expected, h.Bytes())
	assert.Equal(t, "5866666666666666666666666666666666666666666666666666666666666666",
		hex.EncodeToString(Ed25519().BasePoint().Bytes()))
}

func TestEd25519RejectsTorsion(t *testing.T) {
	curve := Ed25519()

	// (0, -1) has order 2, the all-zero encoding (sqrt(-1), 0) has order 4
	order2, err := hex.DecodeString("ecffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f")
	require.NoError(t, err)
	order4 := make([]byte, 32)

	for _, b := range [][]byte{order2, order4} {
		_, err := new(edwards25519.Point).SetBytes(b)
		require.NoError(t, err, "encoding must be on the curve")

		_, err = curve.NewPointFromBytes(b)
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	}

	// G plus a point of order 4 is on the curve but outside the subgroup
	torsion, err := new(edwards25519.Point).SetBytes(order4)
	require.NoError(t, err)
	mixed := new(edwards25519.Point).Add(edwards25519.NewGeneratorPoint(), torsion)
	_, err = curve.NewPointFromBytes(mixed.Bytes())
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	// the identity and subgroup points still decode
	for _, p := range []Point{curve.BasePoint(), curve.AltBasePoint(), curve.BasePoint().ScalarMult(curve.NewScalarFromBigInt(big.NewInt(0)))} {
		decoded, err := curve.NewPointFromBytes(p.Bytes())
		require.NoError(t, err)
		assert.True(t, decoded.Equal(p))
	}
}
