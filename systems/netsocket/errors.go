package netsocket

import (
	"fmt"

	"github.com/go-home-io/smarthome/plugins/device/enums"
)

// ErrAlreadyConnected defines connect attempt on a connected socket.
type ErrAlreadyConnected struct {
	Address string
}

// Error formats output.
func (e *ErrAlreadyConnected) Error() string {
	return fmt.Sprintf("already connected to %s", e.Address)
}

// ErrConnection defines failure to open a transport to the device.
type ErrConnection struct {
	Address string
	Err     error
}

// Error formats output.
func (e *ErrConnection) Error() string {
	return fmt.Sprintf("failed to connect to %s: %s", e.Address, e.Err)
}

// Cause returns underlying transport error.
func (e *ErrConnection) Cause() error {
	return e.Err
}

// Unwrap returns underlying transport error.
func (e *ErrConnection) Unwrap() error {
	return e.Err
}

// ErrNotConnected defines command issued without an active connection.
type ErrNotConnected struct {
	Name string
}

// Error formats output.
func (e *ErrNotConnected) Error() string {
	return fmt.Sprintf("socket %s is not connected", e.Name)
}

// ErrTimeout defines absent response within the configured window.
// Server-side outcome of the command is unknown.
type ErrTimeout struct {
	Op  string
	Err error
}

// Error formats output.
func (e *ErrTimeout) Error() string {
	return fmt.Sprintf("%s timed out", e.Op)
}

// Cause returns underlying transport error.
func (e *ErrTimeout) Cause() error {
	return e.Err
}

// Unwrap returns underlying transport error.
func (e *ErrTimeout) Unwrap() error {
	return e.Err
}

// ErrIO defines transport failure during write or read.
type ErrIO struct {
	Op  string
	Err error
}

// Error formats output.
func (e *ErrIO) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Op, e.Err)
}

// Cause returns underlying transport error.
func (e *ErrIO) Cause() error {
	return e.Err
}

// Unwrap returns underlying transport error.
func (e *ErrIO) Unwrap() error {
	return e.Err
}

// ErrProtocol defines response which failed validation.
// Cached state is never modified when this error is returned.
type ErrProtocol struct {
	Command  enums.Command
	Response string
}

// Error formats output.
func (e *ErrProtocol) Error() string {
	return fmt.Sprintf("unexpected response to %s: %q", e.Command.WireToken(), e.Response)
}
