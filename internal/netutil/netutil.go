// Package netutil discovers the address and port the gallery binds to so
// the startup banner can print a URL reachable from other devices on the
// local network.
package netutil

import (
	"fmt"
	"net"
)

// LocalIP returns the IP of the primary network interface. It dials a
// public address over UDP, which sends no packets but lets the kernel
// pick the outbound interface. Falls back to loopback when the machine
// is offline.
func LocalIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "127.0.0.1"
	}
	defer conn.Close()

	if addr, ok := conn.LocalAddr().(*net.UDPAddr); ok {
		return addr.IP.String()
	}
	return "127.0.0.1"
}

// FindAvailablePort returns the first TCP port at or above start that can
// be bound on all interfaces.
func FindAvailablePort(start int) (int, error) {
	for port := start; port < 65535; port++ {
		l, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err != nil {
			continue
		}
		l.Close()
		return port, nil
	}
	return 0, fmt.Errorf("no available port at or above %d", start)
}
