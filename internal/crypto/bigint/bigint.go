package bigint

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalidRadix is returned when a string cannot be parsed in the requested base.
var ErrInvalidRadix = errors.New("bigint: invalid radix string")

// ToBytes returns the canonical big-endian encoding of v.
// Zero and nil encode as an empty slice. The sign is dropped.
func ToBytes(v *big.Int) []byte {
	if v == nil {
		return []byte{}
	}
	return v.Bytes()
}

// FromBytes interprets b as an unsigned big-endian integer.
func FromBytes(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// ToRadix formats v in the given base (2 to 62).
func ToRadix(v *big.Int, base int) string {
	if v == nil {
		return "0"
	}
	return v.Text(base)
}

// FromRadix parses s in the given base.
func FromRadix(s string, base int) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("%w: %q in base %d", ErrInvalidRadix, s, base)
	}
	return v, nil
}

// PadBytes left-pads b with zeros to size bytes.
// If b is longer than size, only the low-order size bytes are kept.
func PadBytes(b []byte, size int) []byte {
	out := make([]byte, size)
	if len(b) > size {
		copy(out, b[len(b)-size:])
	} else {
		copy(out[size-len(b):], b)
	}
	return out
}

// ToBytesLE returns v as a little-endian slice of exactly size bytes.
// The caller must reduce v beforehand if it may not fit.
func ToBytesLE(v *big.Int, size int) []byte {
	out := PadBytes(ToBytes(v), size)
	reverse(out)
	return out
}

// FromBytesLE interprets b as an unsigned little-endian integer.
func FromBytesLE(b []byte) *big.Int {
	buf := make([]byte, len(b))
	copy(buf, b)
	reverse(buf)
	return new(big.Int).SetBytes(buf)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
