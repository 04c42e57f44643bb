package settings

import "fmt"

// ErrInvalidConfig defines config which didn't pass validation.
type ErrInvalidConfig struct {
	Section string
}

// Error formats output.
func (e *ErrInvalidConfig) Error() string {
	return fmt.Sprintf("config validation error in %s", e.Section)
}

// ErrNoAddress defines network socket without address.
type ErrNoAddress struct {
	Name string
}

// Error formats output.
func (e *ErrNoAddress) Error() string {
	return fmt.Sprintf("network socket %s has no address", e.Name)
}
