package identity

import (
	"crypto/rand"
	"encoding/hex"
	"io"
)

// Size is the width of a NodeID in bytes.
const Size = 6

// NodeID is the short anonymous identifier a node announces itself with.
// It carries no semantic substructure; it is not a MAC address, just an
// opaque 6-byte tag, usually random.
type NodeID [Size]byte

// Generate returns a new NodeID drawn from the system CSPRNG.
// A failing entropy source leaves no safe way to proceed, so it panics.
func Generate() NodeID {
	var id NodeID
	if _, err := io.ReadFull(rand.Reader, id[:]); err != nil {
		panic("identity: entropy source unavailable: " + err.Error())
	}
	return id
}

// Pad normalizes arbitrary bytes to a NodeID: inputs shorter than 6 bytes
// are right-padded with zeros, longer inputs keep only the first 6 bytes.
// The truncation is silent and intentional; callers relying on it are part
// of the protocol contract.
func Pad(b []byte) NodeID {
	var id NodeID
	copy(id[:], b)
	return id
}

// FromHex decodes a hex string and normalizes it via Pad.
// An empty string yields the all-zero NodeID.
func FromHex(s string) (NodeID, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return NodeID{}, err
	}
	return Pad(b), nil
}

func (id NodeID) String() string {
	return hex.EncodeToString(id[:])
}
