package crypto

import (
	"bytes"
	"crypto/sha256"
	"testing"
)

func testKey() []byte {
	key := make([]byte, KeySize)
	for i := range key {
		key[i] = byte(i)
	}
	return key
}

func TestComputeMACDeterministic(t *testing.T) {
	key := testKey()
	msg := []byte("the same message")

	a, err := ComputeMAC(msg, key, TagSize)
	if err != nil {
		t.Fatalf("ComputeMAC: %v", err)
	}
	b, err := ComputeMAC(msg, key, TagSize)
	if err != nil {
		t.Fatalf("ComputeMAC: %v", err)
	}
	if len(a) != TagSize {
		t.Fatalf("tag length: got %d want %d", len(a), TagSize)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("identical inputs produced different tags")
	}
}

func TestComputeMACTruncationIsPrefix(t *testing.T) {
	key := testKey()
	msg := []byte("prefix property")

	full, err := ComputeMAC(msg, key, sha256.Size)
	if err != nil {
		t.Fatalf("ComputeMAC: %v", err)
	}
	short, err := ComputeMAC(msg, key, TagSize)
	if err != nil {
		t.Fatalf("ComputeMAC: %v", err)
	}
	if !bytes.Equal(short, full[:TagSize]) {
		t.Fatalf("truncated tag is not a prefix of the full digest")
	}
}

func TestComputeMACInputSensitivity(t *testing.T) {
	key := testKey()
	a, _ := ComputeMAC([]byte("message a"), key, TagSize)
	b, _ := ComputeMAC([]byte("message b"), key, TagSize)
	if bytes.Equal(a, b) {
		t.Fatalf("different messages produced the same tag")
	}

	key2 := testKey()
	key2[0] ^= 0xff
	c, _ := ComputeMAC([]byte("message a"), key2, TagSize)
	if bytes.Equal(a, c) {
		t.Fatalf("different keys produced the same tag")
	}
}

func TestComputeMACKeyLength(t *testing.T) {
	if _, err := ComputeMAC([]byte("m"), make([]byte, 16), TagSize); err != ErrInvalidKeyLength {
		t.Fatalf("expected ErrInvalidKeyLength, got %v", err)
	}
	if _, err := ComputeMAC([]byte("m"), make([]byte, 33), TagSize); err != ErrInvalidKeyLength {
		t.Fatalf("expected ErrInvalidKeyLength, got %v", err)
	}
	if _, err := ComputeMAC([]byte("m"), nil, TagSize); err != ErrInvalidKeyLength {
		t.Fatalf("expected ErrInvalidKeyLength, got %v", err)
	}
}

func TestComputeMACTagLength(t *testing.T) {
	key := testKey()
	if _, err := ComputeMAC([]byte("m"), key, 33); err != ErrInvalidTagLength {
		t.Fatalf("expected ErrInvalidTagLength, got %v", err)
	}
	if _, err := ComputeMAC([]byte("m"), key, 0); err != ErrInvalidTagLength {
		t.Fatalf("expected ErrInvalidTagLength, got %v", err)
	}
	tag, err := ComputeMAC([]byte("m"), key, sha256.Size)
	if err != nil {
		t.Fatalf("full-length tag: %v", err)
	}
	if len(tag) != sha256.Size {
		t.Fatalf("full-length tag size: %d", len(tag))
	}
}

func TestVerifyMAC(t *testing.T) {
	key := testKey()
	msg := []byte("verify me")
	tag, err := ComputeMAC(msg, key, TagSize)
	if err != nil {
		t.Fatalf("ComputeMAC: %v", err)
	}

	if !VerifyMAC(msg, key, tag, TagSize) {
		t.Fatalf("valid tag rejected")
	}

	tampered := append([]byte(nil), tag...)
	tampered[0] ^= 0x01
	if VerifyMAC(msg, key, tampered, TagSize) {
		t.Fatalf("tampered tag accepted")
	}

	if VerifyMAC([]byte("other"), key, tag, TagSize) {
		t.Fatalf("tag accepted for a different message")
	}

	if VerifyMAC(msg, key, tag[:TagSize-1], TagSize) {
		t.Fatalf("short candidate accepted")
	}
}

func TestVerifyMACNeverErrors(t *testing.T) {
	// Internal failures must collapse to false, not escape as errors.
	if VerifyMAC([]byte("m"), make([]byte, 5), make([]byte, TagSize), TagSize) {
		t.Fatalf("bad key length should verify as false")
	}
	if VerifyMAC([]byte("m"), testKey(), make([]byte, TagSize), 64) {
		t.Fatalf("out-of-range tag length should verify as false")
	}
	if VerifyMAC(nil, nil, nil, TagSize) {
		t.Fatalf("all-nil input should verify as false")
	}
}

func BenchmarkComputeMAC(b *testing.B) {
	key := testKey()
	msg := make([]byte, 1024)
	b.SetBytes(int64(len(msg)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ComputeMAC(msg, key, TagSize)
	}
}

func BenchmarkVerifyMAC(b *testing.B) {
	key := testKey()
	msg := make([]byte, 1024)
	tag, _ := ComputeMAC(msg, key, TagSize)
	b.SetBytes(int64(len(msg)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = VerifyMAC(msg, key, tag, TagSize)
	}
}
