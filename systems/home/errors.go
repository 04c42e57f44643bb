package home

import (
	"fmt"

	"github.com/go-home-io/smarthome/plugins/device/enums"
)

// ErrRoomNotFound defines missing room error.
type ErrRoomNotFound struct {
	Name string
}

// Error formats output.
func (e *ErrRoomNotFound) Error() string {
	return fmt.Sprintf("Room %s not found", e.Name)
}

// ErrDeviceNotFound defines missing device error.
type ErrDeviceNotFound struct {
	Name string
}

// Error formats output.
func (e *ErrDeviceNotFound) Error() string {
	return fmt.Sprintf("Device %s not found", e.Name)
}

// ErrUnknownDeviceType defines device which doesn't fit any known type.
type ErrUnknownDeviceType struct {
	Name string
}

// Error formats output.
func (e *ErrUnknownDeviceType) Error() string {
	return fmt.Sprintf("device %s has unknown type", e.Name)
}

// ErrUnsupportedCommand defines command which device type doesn't support.
type ErrUnsupportedCommand struct {
	Name    string
	Command enums.Command
}

// Error formats output.
func (e *ErrUnsupportedCommand) Error() string {
	return fmt.Sprintf("device %s doesn't support %s command", e.Name, e.Command)
}
