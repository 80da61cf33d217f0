// Package udp provides the broadcast-capable datagram socket HailNet nodes
// exchange packets over. It moves bytes only; building and validating those
// bytes is the packet package's job.
package udp

import (
	"context"
	"net"
	"time"

	"github.com/tobyvane/hailnet/hailnet/packet"
)

// BroadcastAddr is the limited broadcast address announcements go to.
var BroadcastAddr = net.IPv4bcast

// Socket is a UDP socket configured for shared-port discovery:
// SO_REUSEADDR, SO_REUSEPORT (where the platform has it) and SO_BROADCAST
// are set so multiple nodes on one host can listen on the same port and
// announce to the local network.
type Socket struct {
	conn *net.UDPConn
}

// Listen binds a configured socket. Use ":0" for an ephemeral port or the
// group's well-known port for discovery.
func Listen(addr string) (*Socket, error) {
	lc := net.ListenConfig{Control: control}
	pc, err := lc.ListenPacket(context.Background(), "udp4", addr)
	if err != nil {
		return nil, err
	}
	return &Socket{conn: pc.(*net.UDPConn)}, nil
}

func (s *Socket) LocalAddr() *net.UDPAddr {
	return s.conn.LocalAddr().(*net.UDPAddr)
}

func (s *Socket) Close() error { return s.conn.Close() }

// Send writes one datagram. The transport must deliver exactly these bytes
// or nothing; it never truncates or pads.
func (s *Socket) Send(b []byte, to *net.UDPAddr) error {
	_, err := s.conn.WriteToUDP(b, to)
	return err
}

// Broadcast sends one datagram to the limited broadcast address on port.
func (s *Socket) Broadcast(b []byte, port int) error {
	return s.Send(b, &net.UDPAddr{IP: BroadcastAddr, Port: port})
}

// Receive blocks until a datagram arrives, the context ends, or the socket
// is closed. This is the only blocking point in the system.
func (s *Socket) Receive(ctx context.Context) ([]byte, *net.UDPAddr, error) {
	// Clear any deadline a previously cancelled call left behind, then
	// arrange for this context to unblock the read.
	s.conn.SetReadDeadline(time.Time{})
	stop := context.AfterFunc(ctx, func() {
		s.conn.SetReadDeadline(time.Now())
	})
	defer stop()

	buf := make([]byte, packet.MaxDatagramSize)
	n, addr, err := s.conn.ReadFromUDP(buf)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, nil, ctxErr
		}
		return nil, nil, err
	}
	return buf[:n], addr, nil
}
