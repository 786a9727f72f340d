package commitment

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"math/big"

	"github.com/smallyu/go-curv-hash/internal/crypto/bigint"
	"github.com/smallyu/go-curv-hash/internal/crypto/hashing"
)

// BlindingBits is the size of the random blinding factor.
const BlindingBits = 256

var (
	// ErrInvalidBlinding is returned for a negative blinding or one wider than BlindingBits.
	ErrInvalidBlinding = errors.New("commitment: blinding out of range")

	// ErrInvalidMessage is returned for a nil or negative message.
	ErrInvalidMessage = errors.New("commitment: message must be a non-negative integer")
)

// Commitment represents the output of a hash commitment scheme.
// C = H(blinding || message), with the blinding encoded on exactly
// BlindingBits/8 bytes so the message boundary is fixed.
type Commitment struct {
	C *big.Int // The commitment value (hash)
	D *big.Int // The decommitment value (blinding)
}

// New commits to message using a random 256-bit blinding factor.
// Returns the commitment hash C and the blinding D.
func New(message *big.Int) (*Commitment, error) {
	if message == nil {
		return nil, ErrInvalidMessage
	}

	blinding, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), BlindingBits))
	if err != nil {
		return nil, err
	}

	return NewWithBlinding(message, blinding)
}

// NewWithBlinding commits to message with a caller-chosen blinding factor.
func NewWithBlinding(message, blinding *big.Int) (*Commitment, error) {
	if message == nil || message.Sign() < 0 {
		return nil, ErrInvalidMessage
	}
	if !validBlinding(blinding) {
		return nil, ErrInvalidBlinding
	}

	return &Commitment{
		C: hash(message, blinding),
		D: new(big.Int).Set(blinding),
	}, nil
}

// Verify checks if the commitment c opens to message with blinding d.
func Verify(c, d, message *big.Int) bool {
	if c == nil || message == nil || message.Sign() < 0 || !validBlinding(d) {
		return false
	}

	size := hashing.SHA256{}.New().Size()
	if c.Sign() < 0 || len(c.Bytes()) > size {
		return false
	}

	computed := hash(message, d)
	return subtle.ConstantTimeCompare(
		bigint.PadBytes(computed.Bytes(), size),
		bigint.PadBytes(c.Bytes(), size),
	) == 1
}

func validBlinding(d *big.Int) bool {
	return d != nil && d.Sign() >= 0 && d.BitLen() <= BlindingBits
}

func hash(message, blinding *big.Int) *big.Int {
	return hashing.NewTranscript(hashing.SHA256{}).
		AppendFixedInt(blinding, BlindingBits/8).
		AppendInt(message).
		Int()
}
