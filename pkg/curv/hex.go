package curv

import (
	"math/big"

	"github.com/smallyu/go-curv-hash/internal/crypto/bigint"
	"github.com/tmthrgd/go-hex"
)

// HashToIntHex is HashToInt over hex-encoded non-negative integers. The
// result is the lowercase hex digest integer without leading zeros.
func HashToIntHex(values []string) (string, error) {
	ints := make([]*big.Int, len(values))
	for i, v := range values {
		n, err := bigint.FromRadix(v, 16)
		if err != nil {
			return "", newInputError(i, "invalid integer", err)
		}
		if n.Sign() < 0 {
			return "", newInputError(i, "negative integer", bigint.ErrInvalidRadix)
		}
		ints[i] = n
	}
	return bigint.ToRadix(HashToInt(ints...), 16), nil
}

// HashToScalarHex is HashToScalar over hex-encoded points of the named curve.
// The result is the canonical scalar encoding in hex.
func HashToScalarHex(curveName string, points []string) (string, error) {
	c, err := CurveByName(curveName)
	if err != nil {
		return "", err
	}
	ps := make([]Point, len(points))
	for i, s := range points {
		b, err := hex.DecodeString(s)
		if err != nil {
			return "", newInputError(i, "invalid hex", ErrInvalidEncoding)
		}
		if ps[i], err = c.NewPointFromBytes(b); err != nil {
			return "", newInputError(i, "invalid point", err)
		}
	}
	return hex.EncodeToString(HashToScalar(c, ps...).Bytes()), nil
}
