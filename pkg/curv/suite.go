package curv

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-curv-hash/internal/crypto/curves"
	"github.com/smallyu/go-curv-hash/internal/crypto/hashing"
)

// Config selects the curve and the digest of a Suite by name.
type Config struct {
	Curve  string // The elliptic curve to use (e.g., "secp256k1")
	Digest string // The hash function to use (e.g., "sha256")
}

// DefaultConfig returns secp256k1 with SHA-256.
func DefaultConfig() Config {
	return Config{
		Curve:  "secp256k1",
		Digest: "sha256",
	}
}

// Suite binds a curve and a digest chosen at runtime.
type Suite struct {
	curve  curves.Curve
	digest hashing.Digest
}

// NewSuite resolves cfg against the curve and digest registries.
func NewSuite(cfg Config) (*Suite, error) {
	c, err := curves.ByName(cfg.Curve)
	if err != nil {
		return nil, fmt.Errorf("curv: invalid config: %w", err)
	}
	d, err := hashing.DigestByName(cfg.Digest)
	if err != nil {
		return nil, fmt.Errorf("curv: invalid config: %w", err)
	}
	return &Suite{curve: c, digest: d}, nil
}

// Curve returns the curve of the suite.
func (s *Suite) Curve() Curve {
	return s.curve
}

// Digest returns the name of the digest of the suite.
func (s *Suite) Digest() string {
	return s.digest.Name()
}

// HashToInt hashes the ordered values and returns the digest as an integer.
func (s *Suite) HashToInt(values ...*big.Int) *big.Int {
	return hashing.NewTranscript(s.digest).AppendInts(values...).Int()
}

// HashToScalar hashes the ordered points and reduces the digest into the
// scalar field of the suite's curve.
func (s *Suite) HashToScalar(points ...Point) Scalar {
	return hashing.NewTranscript(s.digest).AppendPoints(points...).Scalar(s.curve)
}

// NewTranscript starts a transcript for mixed sequences of integers and points.
func (s *Suite) NewTranscript() *hashing.Transcript {
	return hashing.NewTranscript(s.digest)
}
