// Package tcp implements the Transport port over a plain net.Conn.
//
// APRS-IS is a line-oriented text protocol; the engine drives the socket
// from a single cooperative loop and must never block on it. Reads are made
// poll-friendly by setting an immediate read deadline before each Read and
// reporting a timeout as "no bytes pending".
package tcp

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/iot-kits/aprsbln/internal/domain"
)

// Transport implements ports.Transport over TCP.
type Transport struct {
	endpoint    domain.ServerEndpoint
	dialTimeout time.Duration
	conn        net.Conn
}

// NewTransport creates a Transport for the given endpoint.
func NewTransport(endpoint domain.ServerEndpoint, dialTimeout time.Duration) *Transport {
	return &Transport{
		endpoint:    endpoint,
		dialTimeout: dialTimeout,
	}
}

// Connect dials the endpoint. It is a no-op when already connected.
func (t *Transport) Connect() error {
	if t.conn != nil {
		return nil
	}
	conn, err := net.DialTimeout("tcp", t.endpoint.Addr(), t.dialTimeout)
	if err != nil {
		return fmt.Errorf("dial %s: %w", t.endpoint.Addr(), err)
	}
	t.conn = conn
	return nil
}

// Connected reports whether the stream is open.
func (t *Transport) Connected() bool {
	return t.conn != nil
}

// Read fills p with pending bytes without blocking. An immediate read
// deadline turns the kernel's blocking read into a poll: a deadline timeout
// means no bytes are pending and is reported as (0, nil).
func (t *Transport) Read(p []byte) (int, error) {
	if t.conn == nil {
		return 0, domain.ErrNotConnected
	}
	if err := t.conn.SetReadDeadline(time.Now()); err != nil {
		return 0, err
	}
	n, err := t.conn.Read(p)
	if err != nil {
		var nerr net.Error
		if errors.As(err, &nerr) && nerr.Timeout() {
			return n, nil
		}
		return n, err
	}
	return n, nil
}

// Write sends p on the stream.
func (t *Transport) Write(p []byte) (int, error) {
	if t.conn == nil {
		return 0, domain.ErrNotConnected
	}
	if err := t.conn.SetWriteDeadline(time.Now().Add(t.dialTimeout)); err != nil {
		return 0, err
	}
	return t.conn.Write(p)
}

// Close tears the stream down. Closing a closed transport is a no-op.
func (t *Transport) Close() error {
	if t.conn == nil {
		return nil
	}
	err := t.conn.Close()
	t.conn = nil
	return err
}
