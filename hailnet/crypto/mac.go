package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
)

const (
	// KeySize is the required group key length.
	KeySize = 32
	// TagSize is the truncated tag length used on the wire.
	TagSize = 16
)

var (
	ErrInvalidKeyLength = errors.New("crypto: key must be 32 bytes")
	ErrInvalidTagLength = errors.New("crypto: tag length out of range")
)

// ComputeMAC returns the first tagLen bytes of HMAC-SHA256(key, message).
// The key must be exactly KeySize bytes and tagLen at most the full digest
// size. Deterministic: identical inputs always yield identical tags.
func ComputeMAC(message, key []byte, tagLen int) ([]byte, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeyLength
	}
	if tagLen < 1 || tagLen > sha256.Size {
		return nil, ErrInvalidTagLength
	}
	h := hmac.New(sha256.New, key)
	h.Write(message)
	return h.Sum(nil)[:tagLen], nil
}

// VerifyMAC recomputes the tag for message and compares it to candidate in
// constant time. It is a total predicate: bad key or tag lengths count as
// verification failure, never an error, so callers handling network input
// have exactly one rejection path.
func VerifyMAC(message, key, candidate []byte, tagLen int) bool {
	computed, err := ComputeMAC(message, key, tagLen)
	if err != nil {
		return false
	}
	return hmac.Equal(computed, candidate)
}
