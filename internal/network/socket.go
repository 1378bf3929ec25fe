// Socket setup for the datagram listener
package network

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"

	"golang.org/x/sys/unix"
)

var (
	ErrAddrInUse        = errors.New("address already in use")
	ErrPermissionDenied = errors.New("permission denied")
)

// Binds a UDP socket on all interfaces.
// Port 0 requests an ephemeral port; the port is passed through to the OS unvalidated.
func ListenUDP(ctx context.Context, port int) (conn *net.UDPConn, err error) {
	address := net.JoinHostPort("", strconv.Itoa(port))

	var cfg net.ListenConfig
	pc, err := cfg.ListenPacket(ctx, "udp", address)
	if err != nil {
		err = classifyBindError(address, err)
		return
	}

	conn, ok := pc.(*net.UDPConn)
	if !ok {
		pc.Close()
		err = fmt.Errorf("unexpected packet connection type %T for %s", pc, address)
		return
	}
	return
}

// Port the socket is actually bound to (resolves ephemeral requests)
func BoundPort(conn *net.UDPConn) (port int) {
	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return
	}
	port = addr.Port
	return
}

// Maps errno of a failed bind to descriptive errors
func classifyBindError(address string, bindErr error) (err error) {
	switch {
	case errors.Is(bindErr, unix.EADDRINUSE):
		err = fmt.Errorf("failed to bind %s: %w: %v", address, ErrAddrInUse, bindErr)
	case errors.Is(bindErr, unix.EACCES), errors.Is(bindErr, unix.EPERM):
		err = fmt.Errorf("failed to bind %s: %w (privileged port?): %v", address, ErrPermissionDenied, bindErr)
	default:
		err = fmt.Errorf("failed to bind %s: %w", address, bindErr)
	}
	return
}
