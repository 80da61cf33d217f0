package shard

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"io"

	"github.com/klauspost/reedsolomon"
)

const (
	// HeaderSize is the per-shard header prepended to each datagram payload:
	// group id (4) || index (1) || data count (1) || parity count (1) ||
	// flags (1) || original length (4).
	HeaderSize = 12

	flagCompressed = 0x01

	// MaxShards bounds data+parity so the index fits one byte.
	MaxShards = 255
)

var (
	ErrInvalidConfig = errors.New("shard: invalid data/parity configuration")
	ErrEmptyPayload  = errors.New("shard: empty payload")
	ErrTooManyLost   = errors.New("shard: too many shards lost, cannot recover")
	ErrShardInvalid  = errors.New("shard: malformed shard")
	ErrShardMismatch = errors.New("shard: shard inconsistent with its group")
)

// Codec fans a payload out into Reed-Solomon coded shards.
type Codec struct {
	enc    reedsolomon.Encoder
	data   int
	parity int
}

// NewCodec creates a codec with dataShards data and parityShards parity
// shards. Up to parityShards datagrams of a group may be lost.
func NewCodec(dataShards, parityShards int) (*Codec, error) {
	if dataShards <= 0 || parityShards <= 0 || dataShards+parityShards > MaxShards {
		return nil, ErrInvalidConfig
	}
	enc, err := reedsolomon.New(dataShards, parityShards)
	if err != nil {
		return nil, err
	}
	return &Codec{enc: enc, data: dataShards, parity: parityShards}, nil
}

func (c *Codec) DataShards() int   { return c.data }
func (c *Codec) ParityShards() int { return c.parity }
func (c *Codec) TotalShards() int  { return c.data + c.parity }

// Overhead returns the size overhead ratio (e.g. 1.4 for a 10+4 config).
func (c *Codec) Overhead() float64 {
	return float64(c.TotalShards()) / float64(c.data)
}

// Fan encodes payload into TotalShards independent datagram payloads, each
// self-describing via its header. The payload is compressed first when that
// actually shrinks it.
func (c *Codec) Fan(payload []byte) ([][]byte, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}

	body := payload
	flags := byte(0)
	if compressed, err := compress(payload); err == nil && len(compressed) < len(payload) {
		body = compressed
		flags = flagCompressed
	}

	shards, err := c.enc.Split(body)
	if err != nil {
		return nil, err
	}
	if err := c.enc.Encode(shards); err != nil {
		return nil, err
	}

	var group [4]byte
	if _, err := io.ReadFull(rand.Reader, group[:]); err != nil {
		return nil, err
	}

	out := make([][]byte, len(shards))
	for i, s := range shards {
		b := make([]byte, HeaderSize+len(s))
		copy(b[0:4], group[:])
		b[4] = byte(i)
		b[5] = byte(c.data)
		b[6] = byte(c.parity)
		b[7] = flags
		binary.BigEndian.PutUint32(b[8:12], uint32(len(body)))
		copy(b[HeaderSize:], s)
		out[i] = b
	}
	return out, nil
}
