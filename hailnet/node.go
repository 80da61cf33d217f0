package hailnet

import (
	"context"
	"errors"
	"net"

	"github.com/tobyvane/hailnet/hailnet/crypto"
	"github.com/tobyvane/hailnet/hailnet/identity"
	"github.com/tobyvane/hailnet/hailnet/packet"
	"github.com/tobyvane/hailnet/hailnet/transport/udp"
)

var ErrNotBound = errors.New("hailnet: node is not bound")

// Message is one authenticated datagram as delivered to the application.
type Message struct {
	From    identity.NodeID
	Payload []byte
	Addr    *net.UDPAddr
}

// Node is a high-level helper that combines identity + packet pipeline +
// transport. It intentionally stays small so applications can customize
// discovery and higher-level behavior.
type Node struct {
	ID   identity.NodeID
	key  []byte
	sock *udp.Socket
}

// NewNode creates a node with a fresh random identifier.
func NewNode(key []byte) (*Node, error) {
	return NewNodeWithID(identity.Generate(), key)
}

// NewNodeWithID creates a node with a caller-chosen identifier.
func NewNodeWithID(id identity.NodeID, key []byte) (*Node, error) {
	if len(key) != crypto.KeySize {
		return nil, crypto.ErrInvalidKeyLength
	}
	return &Node{ID: id, key: append([]byte(nil), key...)}, nil
}

// Bind opens the node's socket. Use the group's well-known port to take
// part in discovery, or ":0" for send-mostly nodes.
func (n *Node) Bind(addr string) error {
	sock, err := udp.Listen(addr)
	if err != nil {
		return err
	}
	n.sock = sock
	return nil
}

func (n *Node) Close() error {
	if n.sock == nil {
		return nil
	}
	return n.sock.Close()
}

func (n *Node) LocalAddr() *net.UDPAddr {
	if n.sock == nil {
		return nil
	}
	return n.sock.LocalAddr()
}

// Send builds an authenticated packet around payload and sends it to one
// destination.
func (n *Node) Send(payload []byte, to *net.UDPAddr) error {
	if n.sock == nil {
		return ErrNotBound
	}
	wire, err := packet.BuildBytes(n.ID[:], payload, n.key)
	if err != nil {
		return err
	}
	return n.sock.Send(wire, to)
}

// Broadcast sends an authenticated packet to the local network on port.
func (n *Node) Broadcast(payload []byte, port int) error {
	if n.sock == nil {
		return ErrNotBound
	}
	wire, err := packet.BuildBytes(n.ID[:], payload, n.key)
	if err != nil {
		return err
	}
	return n.sock.Broadcast(wire, port)
}

// Receive blocks until an authentic datagram arrives or ctx ends.
// Datagrams that fail structural or MAC validation are dropped silently;
// the caller never learns why something was rejected.
func (n *Node) Receive(ctx context.Context) (Message, error) {
	if n.sock == nil {
		return Message{}, ErrNotBound
	}
	for {
		b, addr, err := n.sock.Receive(ctx)
		if err != nil {
			return Message{}, err
		}
		p, ok := packet.ParseAndValidate(b, n.key)
		if !ok {
			continue
		}
		return Message{From: p.NodeID, Payload: p.Payload, Addr: addr}, nil
	}
}
