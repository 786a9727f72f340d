package hashing

import (
	"math/big"

	"github.com/gtank/merlin"

	"github.com/smallyu/go-curv-hash/internal/crypto/bigint"
	"github.com/smallyu/go-curv-hash/internal/crypto/curves"
)

// LabeledTranscript is a domain-separated transcript built on merlin. Every
// value is framed with its label and length, so unlike Transcript distinct
// sequences never share a byte image. Challenges are extracted statefully:
// each extraction is absorbed into the transcript.
type LabeledTranscript struct {
	t *merlin.Transcript
}

// NewLabeledTranscript starts a transcript bound to the protocol name.
func NewLabeledTranscript(protocol string) *LabeledTranscript {
	return &LabeledTranscript{t: merlin.NewTranscript(protocol)}
}

// AppendInt absorbs the big-endian encoding of v under label.
func (l *LabeledTranscript) AppendInt(label string, v *big.Int) {
	l.t.AppendMessage([]byte(label), bigint.ToBytes(v))
}

// AppendPoint absorbs the encoding of p under label.
func (l *LabeledTranscript) AppendPoint(label string, p curves.Point) {
	l.t.AppendMessage([]byte(label), p.Bytes())
}

// ChallengeBytes squeezes size bytes under label.
func (l *LabeledTranscript) ChallengeBytes(label string, size int) []byte {
	return l.t.ExtractBytes([]byte(label), size)
}

// ChallengeScalar squeezes 128 bits more than the order of c and reduces,
// keeping the modular bias negligible.
func (l *LabeledTranscript) ChallengeScalar(label string, c curves.Curve) curves.Scalar {
	size := (c.Order().BitLen() + 128 + 7) / 8
	return c.NewScalarFromBigInt(bigint.FromBytes(l.ChallengeBytes(label, size)))
}
