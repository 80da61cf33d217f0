package packet

import (
	"github.com/tobyvane/hailnet/hailnet/crypto"
	"github.com/tobyvane/hailnet/hailnet/identity"
)

// Build assembles an authenticated packet from caller inputs. The id is
// normalized via identity.Pad before anything else, and the MAC is computed
// over the normalized id concatenated with the raw payload. Any payload is
// valid, including empty; the only failure is a mis-sized key.
func Build(id, payload, key []byte) (Packet, error) {
	nodeID := identity.Pad(id)
	mac, err := crypto.ComputeMAC(macMessage(nodeID, payload), key, MACSize)
	if err != nil {
		return Packet{}, err
	}
	return Packet{MAC: mac, NodeID: nodeID, Payload: payload}, nil
}

// BuildBytes is Build followed by Encode.
func BuildBytes(id, payload, key []byte) ([]byte, error) {
	p, err := Build(id, payload, key)
	if err != nil {
		return nil, err
	}
	return p.Encode(), nil
}

// Parse is a pure structural decode with no authentication.
// A packet obtained this way must never be treated as trusted.
func Parse(b []byte) (Packet, bool) {
	return Decode(b)
}

// Validate checks the packet's MAC against the key in constant time.
func Validate(p Packet, key []byte) bool {
	return crypto.VerifyMAC(macMessage(p.NodeID, p.Payload), key, p.MAC, MACSize)
}

// ParseAndValidate is the single entry point for untrusted input: it
// returns a packet only if both structure and authenticity hold. Short,
// corrupted and wrongly keyed inputs all collapse to the same false result
// so the rejection path leaks nothing usable as an oracle.
func ParseAndValidate(b, key []byte) (Packet, bool) {
	p, ok := Parse(b)
	if !ok {
		return Packet{}, false
	}
	if !Validate(p, key) {
		return Packet{}, false
	}
	return p, true
}

func macMessage(id identity.NodeID, payload []byte) []byte {
	msg := make([]byte, 0, identity.Size+len(payload))
	msg = append(msg, id[:]...)
	msg = append(msg, payload...)
	return msg
}
