package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// HashAlgorithm names an artifact checksum algorithm
type HashAlgorithm string

const (
	SHA256  HashAlgorithm = "sha256"
	BLAKE2b HashAlgorithm = "blake2b"
)

// ParseHashAlgorithm accepts the algorithm names used in reports and flags
func ParseHashAlgorithm(name string) (HashAlgorithm, error) {
	switch HashAlgorithm(name) {
	case SHA256, BLAKE2b:
		return HashAlgorithm(name), nil
	}
	return "", fmt.Errorf("unknown hash algorithm %q", name)
}

// Hasher checksums artifact contents
type Hasher struct {
	algorithm HashAlgorithm
}

// NewHasher creates a hasher; unknown algorithms fall back to SHA256
func NewHasher(algorithm HashAlgorithm) *Hasher {
	if _, err := ParseHashAlgorithm(string(algorithm)); err != nil {
		algorithm = SHA256
	}
	return &Hasher{algorithm: algorithm}
}

// DefaultHasher returns a SHA256 hasher
func DefaultHasher() *Hasher {
	return NewHasher(SHA256)
}

// Algorithm returns the algorithm in use
func (h *Hasher) Algorithm() HashAlgorithm {
	return h.algorithm
}

func (h *Hasher) newHash() hash.Hash {
	if h.algorithm == BLAKE2b {
		// Only fails for keys longer than 64 bytes
		d, _ := blake2b.New256(nil)
		return d
	}
	return sha256.New()
}

// Hash returns the hex digest of data
func (h *Hasher) Hash(data []byte) string {
	d := h.newHash()
	d.Write(data)
	return hex.EncodeToString(d.Sum(nil))
}

// HashString returns the hex digest of s
func (h *Hasher) HashString(s string) string {
	return h.Hash([]byte(s))
}

// ShortHash returns the first 8 characters of a digest for display
func ShortHash(digest string) string {
	if len(digest) < 8 {
		return digest
	}
	return digest[:8]
}
