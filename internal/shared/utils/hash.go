package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/bytedance/sonic"
)

// HashAlgorithm represents the hashing algorithm to use
type HashAlgorithm string

const (
	SHA256     HashAlgorithm = "sha256"
	HMACSHA256 HashAlgorithm = "hmac-sha256"
)

// FingerprintLength is the number of hex characters kept by Fingerprint
const FingerprintLength = 16

// Hasher produces stable digests for identifiers and payloads
type Hasher struct {
	algorithm HashAlgorithm
	key       []byte
}

// NewHasher creates a new hasher with the specified algorithm
func NewHasher(algorithm HashAlgorithm) *Hasher {
	return &Hasher{algorithm: algorithm}
}

// NewKeyedHasher creates an HMAC-SHA256 hasher. An empty key degrades to
// plain SHA-256.
func NewKeyedHasher(key []byte) *Hasher {
	if len(key) == 0 {
		return DefaultHasher()
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &Hasher{algorithm: HMACSHA256, key: k}
}

// DefaultHasher returns a hasher with the default algorithm
func DefaultHasher() *Hasher {
	return NewHasher(SHA256)
}

// Hash computes a hex digest of the input data
func (h *Hasher) Hash(data []byte) string {
	switch h.algorithm {
	case HMACSHA256:
		mac := hmac.New(sha256.New, h.key)
		mac.Write(data)
		return hex.EncodeToString(mac.Sum(nil))
	default:
		sum := sha256.Sum256(data)
		return hex.EncodeToString(sum[:])
	}
}

// HashString computes a hash of a string
func (h *Hasher) HashString(s string) string {
	return h.Hash([]byte(s))
}

// HashJSON computes a hash of a JSON-serializable value. Map keys are
// sorted so equal values always hash the same.
func (h *Hasher) HashJSON(v interface{}) (string, error) {
	data, err := sonic.ConfigStd.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return h.Hash(data), nil
}

// HashFields computes an order-independent hash from multiple fields
func (h *Hasher) HashFields(fields ...string) string {
	sorted := make([]string, len(fields))
	copy(sorted, fields)
	sort.Strings(sorted)

	return h.HashString(strings.Join(sorted, "|"))
}

// Fingerprint returns a short digest safe to log in place of an identifier.
func (h *Hasher) Fingerprint(number string) string {
	full := h.HashString(number)
	return full[:FingerprintLength]
}

// MaskNumber keeps the first keepHead and last keepTail characters and
// replaces the rest with '*'. Short inputs are fully masked.
func MaskNumber(number string, keepHead, keepTail int) string {
	if keepHead < 0 {
		keepHead = 0
	}
	if keepTail < 0 {
		keepTail = 0
	}
	if len(number) <= keepHead+keepTail {
		return strings.Repeat("*", len(number))
	}
	return number[:keepHead] + strings.Repeat("*", len(number)-keepHead-keepTail) + number[len(number)-keepTail:]
}
