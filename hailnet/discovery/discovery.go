package discovery

import (
	"errors"
	"net/netip"
	"time"

	"github.com/tobyvane/hailnet/hailnet/identity"
)

var ErrNotFound = errors.New("discovery: node not found")

// NodeInfo is the minimal record discovery keeps per node. The application
// decides how to use capabilities; discovery only stores them.
type NodeInfo struct {
	ID           identity.NodeID
	Addr         netip.Addr
	Port         uint16
	Capabilities map[string]string
	LastSeen     time.Time
}

// Table is a generic node table. Implementations can be backed by memory,
// a file, or anything that can answer "who have we heard from".
type Table interface {
	Record(info NodeInfo) error
	Lookup(id identity.NodeID) (NodeInfo, error)
	List() ([]NodeInfo, error)
}
