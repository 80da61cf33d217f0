// Package hailnet implements an anonymous, authenticated datagram protocol
// for node discovery and message exchange over unreliable, possibly
// broadcast, networks.
//
// A node announces itself with a random 6-byte identifier and authenticates
// every datagram with a truncated HMAC-SHA256 under a pre-shared 32-byte
// group key. There is no handshake, no session and no central authority:
// every datagram stands alone, and any holder of the group key can validate
// it.
//
// The protocol deliberately provides no encryption, replay protection,
// ordering or retransmission. In particular, a captured datagram revalidates
// forever; re-evaluate before using this where replay matters.
package hailnet
