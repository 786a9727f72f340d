package hashing

import (
	"math/big"

	"github.com/smallyu/go-curv-hash/internal/crypto/bigint"
	"github.com/smallyu/go-curv-hash/internal/crypto/curves"
)

// Transcript accumulates the byte image of an ordered sequence of integers
// and points, then hashes it once.
//
// Encodings are concatenated with no length prefix, separator or domain tag,
// so two sequences whose encodings concatenate to the same bytes hash to the
// same value. Callers needing separation should use LabeledTranscript.
type Transcript struct {
	digest Digest
	buf    []byte
}

// NewTranscript returns an empty transcript hashed with d.
func NewTranscript(d Digest) *Transcript {
	return &Transcript{digest: d}
}

// AppendInt appends the canonical big-endian encoding of v.
func (t *Transcript) AppendInt(v *big.Int) *Transcript {
	t.buf = append(t.buf, bigint.ToBytes(v)...)
	return t
}

// AppendFixedInt appends v left-padded to exactly size bytes. Only the
// low-order size bytes are kept, so callers must bound v first.
func (t *Transcript) AppendFixedInt(v *big.Int, size int) *Transcript {
	t.buf = append(t.buf, bigint.PadBytes(bigint.ToBytes(v), size)...)
	return t
}

// AppendInts appends each value in order.
func (t *Transcript) AppendInts(values ...*big.Int) *Transcript {
	for _, v := range values {
		t.AppendInt(v)
	}
	return t
}

// AppendPoint appends the canonical public-key encoding of p.
func (t *Transcript) AppendPoint(p curves.Point) *Transcript {
	t.buf = append(t.buf, p.Bytes()...)
	return t
}

// AppendPoints appends each point in order.
func (t *Transcript) AppendPoints(points ...curves.Point) *Transcript {
	for _, p := range points {
		t.AppendPoint(p)
	}
	return t
}

// Bytes returns a copy of the serialized transcript.
func (t *Transcript) Bytes() []byte {
	out := make([]byte, len(t.buf))
	copy(out, t.buf)
	return out
}

// Len returns the length of the serialized transcript.
func (t *Transcript) Len() int {
	return len(t.buf)
}

// Sum hashes the whole transcript with a fresh hash instance.
// The transcript itself is left untouched.
func (t *Transcript) Sum() []byte {
	h := t.digest.New()
	h.Write(t.buf)
	return h.Sum(nil)
}

// Int returns the digest read as a big-endian unsigned integer.
func (t *Transcript) Int() *big.Int {
	return bigint.FromBytes(t.Sum())
}

// Scalar returns the digest reduced into the scalar field of c.
func (t *Transcript) Scalar(c curves.Curve) curves.Scalar {
	return c.NewScalarFromBigInt(t.Int())
}
