//go:build !linux

package web

import (
	"errors"
	"net"
	"time"
)

func roundTrip(*net.TCPConn) (time.Duration, error) {
	return 0, errors.New("web: round trip time not available")
}
