// Package shard spreads one payload across several independent datagrams so
// it survives best-effort delivery without retransmission.
//
// A payload is LZ4-compressed when that helps, Reed-Solomon encoded into
// data+parity shards, and each shard is emitted as its own datagram payload
// with a small self-describing header. A receiver can reconstruct the
// original payload from any `data` of the `data+parity` shards; with 10+4,
// any 4 datagrams may be lost.
//
// The layer sits strictly above the packet protocol: every shard is still
// built and validated as a normal authenticated packet, and no ordering or
// session state is introduced.
package shard
