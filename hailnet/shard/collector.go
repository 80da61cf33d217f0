package shard

import (
	"encoding/binary"
	"sync"
	"time"

	"github.com/klauspost/reedsolomon"
)

type group struct {
	shards     [][]byte
	have       int
	data       int
	parity     int
	shardSize  int
	origLen    int
	compressed bool
	created    time.Time
	done       bool
}

// Collector gathers shards from incoming datagrams and reconstructs
// payloads as soon as enough of a group has arrived. Shards may arrive in
// any order and from interleaved groups. Collector assumes shard contents
// have already passed packet authentication.
type Collector struct {
	mu     sync.Mutex
	groups map[uint32]*group
}

func NewCollector() *Collector {
	return &Collector{groups: map[uint32]*group{}}
}

// Add ingests one shard. It returns (payload, true, nil) once the shard's
// group becomes recoverable; duplicates and shards for already-recovered
// groups are ignored.
func (c *Collector) Add(b []byte) ([]byte, bool, error) {
	if len(b) <= HeaderSize {
		return nil, false, ErrShardInvalid
	}

	id := binary.BigEndian.Uint32(b[0:4])
	index := int(b[4])
	data := int(b[5])
	parity := int(b[6])
	compressed := b[7]&flagCompressed != 0
	origLen := int(binary.BigEndian.Uint32(b[8:12]))
	body := b[HeaderSize:]

	if data <= 0 || parity <= 0 || data+parity > MaxShards || index >= data+parity {
		return nil, false, ErrShardInvalid
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	g, ok := c.groups[id]
	if !ok {
		g = &group{
			shards:     make([][]byte, data+parity),
			data:       data,
			parity:     parity,
			shardSize:  len(body),
			origLen:    origLen,
			compressed: compressed,
			created:    time.Now(),
		}
		c.groups[id] = g
	}
	if g.done {
		return nil, false, nil
	}
	if data != g.data || parity != g.parity || len(body) != g.shardSize ||
		origLen != g.origLen || compressed != g.compressed {
		return nil, false, ErrShardMismatch
	}
	if g.shards[index] != nil {
		return nil, false, nil
	}

	g.shards[index] = append([]byte(nil), body...)
	g.have++
	if g.have < g.data {
		return nil, false, nil
	}

	payload, err := g.recover()
	if err != nil {
		return nil, false, err
	}
	// Keep the entry so late duplicates are swallowed; Cleanup drops it.
	g.done = true
	g.shards = nil
	return payload, true, nil
}

func (g *group) recover() ([]byte, error) {
	enc, err := reedsolomon.New(g.data, g.parity)
	if err != nil {
		return nil, err
	}
	if err := enc.ReconstructData(g.shards); err != nil {
		if err == reedsolomon.ErrTooFewShards {
			return nil, ErrTooManyLost
		}
		return nil, err
	}

	body := make([]byte, 0, g.origLen)
	for i := 0; i < g.data && len(body) < g.origLen; i++ {
		remaining := g.origLen - len(body)
		if remaining >= len(g.shards[i]) {
			body = append(body, g.shards[i]...)
		} else {
			body = append(body, g.shards[i][:remaining]...)
		}
	}

	if g.compressed {
		return decompress(body)
	}
	return body, nil
}

// Cleanup drops groups older than maxAge, recovered or not, and reports how
// many were removed.
func (c *Collector) Cleanup(maxAge time.Duration) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for id, g := range c.groups {
		if g.created.Before(cutoff) {
			delete(c.groups, id)
			removed++
		}
	}
	return removed
}

// Pending reports how many groups are buffered, complete or not.
func (c *Collector) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.groups)
}
