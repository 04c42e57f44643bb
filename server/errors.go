package server

import "fmt"

// ErrUnknownCommand defines unknown command error.
type ErrUnknownCommand struct {
	Name string
}

// Error formats output.
func (e *ErrUnknownCommand) Error() string {
	return fmt.Sprintf("command %s is unknown", e.Name)
}

// ErrWrongPattern defines malformed device pattern error.
type ErrWrongPattern struct {
	Pattern string
}

// Error formats output.
func (e *ErrWrongPattern) Error() string {
	return fmt.Sprintf("device pattern %s is malformed", e.Pattern)
}
