package netsocket

import (
	"bytes"
	"net"
	"time"

	"github.com/go-home-io/smarthome/plugins/device/enums"
)

// ConnectionState describes socket connection state.
type ConnectionState int

const (
	// StateDisconnected describes socket without transport.
	StateDisconnected ConnectionState = iota
	// StateConnected describes socket holding a live transport.
	StateConnected
)

// String returns state name.
func (s ConnectionState) String() string {
	if s == StateConnected {
		return "connected"
	}

	return "disconnected"
}

// responseBufferSize bounds a single response.
// Responses are not reassembled across reads.
const responseBufferSize = 1024

// Single owned transport.
// conn is non-nil only in StateConnected.
type connection struct {
	state ConnectionState
	conn  net.Conn
}

// Opens transport and moves to connected state.
// Caller checks that connection is not open yet.
func (c *connection) open(address string, dialTimeout time.Duration) error {
	conn, err := net.DialTimeout("tcp", address, dialTimeout)
	if err != nil {
		return &ErrConnection{Address: address, Err: err}
	}

	c.conn = conn
	c.state = StateConnected
	return nil
}

// Drops transport. Safe to call in any state.
func (c *connection) close() {
	if c.state == StateConnected && c.conn != nil {
		c.conn.Close() // nolint: errcheck, gosec
	}

	c.conn = nil
	c.state = StateDisconnected
}

// Writes command token and waits for a single response.
func (c *connection) exchange(cmd enums.Command, readTimeout time.Duration,
	writeTimeout time.Duration) (string, error) {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return "", &ErrIO{Op: "write", Err: err}
	}

	if _, err := c.conn.Write([]byte(cmd.WireToken())); err != nil {
		return "", ioError("write", err)
	}

	if err := c.conn.SetReadDeadline(time.Now().Add(readTimeout)); err != nil {
		return "", &ErrIO{Op: "read", Err: err}
	}

	buf := make([]byte, responseBufferSize)
	n, err := c.conn.Read(buf)
	if n == 0 && err != nil {
		return "", ioError("read", err)
	}

	return decodeLossy(buf[:n]), nil
}

// Decodes bytes as UTF-8, each invalid byte becomes U+FFFD.
func decodeLossy(data []byte) string {
	return string(bytes.Runes(data))
}

// Distinguishes timeouts from other transport failures.
func ioError(op string, err error) error {
	if ne, ok := err.(net.Error); ok && ne.Timeout() {
		return &ErrTimeout{Op: op, Err: err}
	}

	return &ErrIO{Op: op, Err: err}
}
