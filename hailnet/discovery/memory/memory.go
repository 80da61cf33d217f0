package memory

import (
	"sync"
	"time"

	"github.com/tobyvane/hailnet/hailnet/discovery"
	"github.com/tobyvane/hailnet/hailnet/identity"
)

// Table is an in-memory node table. It is useful for tests, examples and
// embedding in applications.
type Table struct {
	mu    sync.RWMutex
	nodes map[identity.NodeID]discovery.NodeInfo
}

func New() *Table {
	return &Table{nodes: map[identity.NodeID]discovery.NodeInfo{}}
}

func (t *Table) Record(info discovery.NodeInfo) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	copyCaps := map[string]string{}
	for k, v := range info.Capabilities {
		copyCaps[k] = v
	}
	info.Capabilities = copyCaps
	if info.LastSeen.IsZero() {
		info.LastSeen = time.Now()
	}
	t.nodes[info.ID] = info
	return nil
}

func (t *Table) Lookup(id identity.NodeID) (discovery.NodeInfo, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	info, ok := t.nodes[id]
	if !ok {
		return discovery.NodeInfo{}, discovery.ErrNotFound
	}
	copyCaps := map[string]string{}
	for k, v := range info.Capabilities {
		copyCaps[k] = v
	}
	info.Capabilities = copyCaps
	return info, nil
}

func (t *Table) List() ([]discovery.NodeInfo, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]discovery.NodeInfo, 0, len(t.nodes))
	for _, info := range t.nodes {
		copyCaps := map[string]string{}
		for k, v := range info.Capabilities {
			copyCaps[k] = v
		}
		info.Capabilities = copyCaps
		out = append(out, info)
	}
	return out, nil
}

// Prune removes nodes not heard from within maxAge and reports how many
// were dropped.
func (t *Table) Prune(maxAge time.Duration) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for id, info := range t.nodes {
		if info.LastSeen.Before(cutoff) {
			delete(t.nodes, id)
			removed++
		}
	}
	return removed
}
