package hashing

import (
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// ErrUnsupportedDigest is returned by DigestByName for unknown digests.
var ErrUnsupportedDigest = errors.New("hashing: unsupported digest")

// Digest selects the fixed-output hash function of a transcript.
// The output width is whatever New().Size() reports.
type Digest interface {
	Name() string
	New() hash.Hash
}

// SHA256 is the 256-bit SHA-2 digest.
type SHA256 struct{}

func (SHA256) Name() string   { return "sha256" }
func (SHA256) New() hash.Hash { return sha256.New() }

// SHA512 is the 512-bit SHA-2 digest.
type SHA512 struct{}

func (SHA512) Name() string   { return "sha512" }
func (SHA512) New() hash.Hash { return sha512.New() }

// SHA3_256 is the 256-bit FIPS 202 digest.
type SHA3_256 struct{}

func (SHA3_256) Name() string   { return "sha3-256" }
func (SHA3_256) New() hash.Hash { return sha3.New256() }

// Keccak256 is the original Keccak padding variant used by Ethereum and Monero.
type Keccak256 struct{}

func (Keccak256) Name() string   { return "keccak256" }
func (Keccak256) New() hash.Hash { return sha3.NewLegacyKeccak256() }

// BLAKE2b256 is unkeyed BLAKE2b with a 32-byte output.
type BLAKE2b256 struct{}

func (BLAKE2b256) Name() string { return "blake2b-256" }

func (BLAKE2b256) New() hash.Hash {
	h, err := blake2b.New256(nil)
	if err != nil {
		// only reachable with a key longer than 64 bytes
		panic(err)
	}
	return h
}

var digests = []Digest{SHA256{}, SHA512{}, SHA3_256{}, Keccak256{}, BLAKE2b256{}}

// Digests returns every supported digest.
func Digests() []Digest {
	out := make([]Digest, len(digests))
	copy(out, digests)
	return out
}

// DigestByName returns the digest registered under name.
func DigestByName(name string) (Digest, error) {
	for _, d := range digests {
		if d.Name() == name {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedDigest, name)
}
