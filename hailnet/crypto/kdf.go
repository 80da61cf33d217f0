package crypto

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DeriveKey derives a key of the specified length using HKDF-SHA256.
// salt can be nil (uses zero salt), info provides context binding.
func DeriveKey(secret, salt, info []byte, length int) ([]byte, error) {
	hk := hkdf.New(sha256.New, secret, salt, info)
	key := make([]byte, length)
	if _, err := io.ReadFull(hk, key); err != nil {
		return nil, err
	}
	return key, nil
}

// DeriveGroupKey turns an out-of-band shared secret into a group key of
// KeySize bytes, bound to the group name so the same secret can back
// multiple independent groups.
func DeriveGroupKey(secret []byte, group string) ([]byte, error) {
	info := make([]byte, 0, len("hailnet-group-key")+len(group))
	info = append(info, []byte("hailnet-group-key")...)
	info = append(info, []byte(group)...)
	return DeriveKey(secret, nil, info, KeySize)
}
