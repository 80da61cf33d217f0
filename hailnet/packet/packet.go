package packet

import (
	"errors"

	"github.com/tobyvane/hailnet/hailnet/identity"
)

const (
	// MACSize is the truncated authentication tag width on the wire.
	MACSize = 16
	// MinSize is the smallest well-formed packet: MAC + NodeID, empty payload.
	MinSize = MACSize + identity.Size
	// MaxDatagramSize is the practical upper bound from UDP/IPv4. The packet
	// layer itself enforces no maximum.
	MaxDatagramSize = 65507
)

var ErrInvalidMACLength = errors.New("packet: mac must be 16 bytes")

// Packet is a single authenticated datagram. Well-formedness (field widths)
// is guaranteed by construction; authenticity only by Validate.
type Packet struct {
	MAC     []byte
	NodeID  identity.NodeID
	Payload []byte
}

// New constructs a well-formed packet, enforcing the MAC width.
// The NodeID width is enforced by its type.
func New(mac []byte, id identity.NodeID, payload []byte) (Packet, error) {
	if len(mac) != MACSize {
		return Packet{}, ErrInvalidMACLength
	}
	return Packet{MAC: mac, NodeID: id, Payload: payload}, nil
}

// Encode serializes to wire format: MAC(16) || NodeID(6) || Payload(N).
func (p Packet) Encode() []byte {
	out := make([]byte, 0, MinSize+len(p.Payload))
	out = append(out, p.MAC...)
	out = append(out, p.NodeID[:]...)
	out = append(out, p.Payload...)
	return out
}

// Len returns the wire size of the packet.
func (p Packet) Len() int {
	return MinSize + len(p.Payload)
}

// Decode restores structure from wire bytes. It reports false for anything
// shorter than MinSize and never evaluates authenticity. Everything past
// the fixed-width fields is payload.
func Decode(b []byte) (Packet, bool) {
	if len(b) < MinSize {
		return Packet{}, false
	}
	mac := make([]byte, MACSize)
	copy(mac, b[:MACSize])
	payload := make([]byte, len(b)-MinSize)
	copy(payload, b[MinSize:])
	return Packet{
		MAC:     mac,
		NodeID:  identity.Pad(b[MACSize:MinSize]),
		Payload: payload,
	}, true
}
