package discovery

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/tobyvane/hailnet/hailnet/identity"
)

var ErrAnnounceMissingID = errors.New("discovery: announce missing node_id")

// Announce is the payload a node broadcasts to make itself discoverable.
// It is carried inside an authenticated packet, so it needs no signature of
// its own; the packet MAC already proves group membership. The node_id is
// repeated here only so the payload is self-describing when logged or
// relayed.
type Announce struct {
	NodeID       string            `json:"node_id"`
	Port         uint16            `json:"port"`
	TimestampSec int64             `json:"timestamp_sec"`
	Capabilities map[string]string `json:"capabilities,omitempty"`
}

func NewAnnounce(id identity.NodeID, port uint16, capabilities map[string]string) Announce {
	capsCopy := map[string]string{}
	for k, v := range capabilities {
		capsCopy[k] = v
	}
	return Announce{
		NodeID:       id.String(),
		Port:         port,
		TimestampSec: time.Now().Unix(),
		Capabilities: capsCopy,
	}
}

func EncodeAnnounce(a Announce) ([]byte, error) {
	return json.Marshal(a)
}

func DecodeAnnounce(b []byte) (Announce, error) {
	var a Announce
	if err := json.Unmarshal(b, &a); err != nil {
		return Announce{}, err
	}
	if a.NodeID == "" {
		return Announce{}, ErrAnnounceMissingID
	}
	if _, err := identity.FromHex(a.NodeID); err != nil {
		return Announce{}, err
	}
	return a, nil
}
