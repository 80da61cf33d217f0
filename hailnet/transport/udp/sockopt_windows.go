//go:build windows

package udp

import "syscall"

// Windows has no SO_REUSEPORT; SO_REUSEADDR covers the shared-port case.
func control(network, address string, c syscall.RawConn) error {
	var optErr error
	err := c.Control(func(fd uintptr) {
		h := syscall.Handle(fd)
		if err := syscall.SetsockoptInt(h, syscall.SOL_SOCKET, syscall.SO_REUSEADDR, 1); err != nil {
			optErr = err
			return
		}
		optErr = syscall.SetsockoptInt(h, syscall.SOL_SOCKET, syscall.SO_BROADCAST, 1)
	})
	if err != nil {
		return err
	}
	return optErr
}
