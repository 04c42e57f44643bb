// Package socket implements local electrical socket.
package socket

// Socket is an electrical socket toggled in memory.
// Operations never fail.
type Socket struct {
	name  string
	power float64
	on    bool
}

// NewSocket constructs a new socket which is off.
func NewSocket(name string, power float64) *Socket {
	return &Socket{
		name:  name,
		power: power,
	}
}

// GetName returns socket name.
func (s *Socket) GetName() string {
	return s.name
}

// IsOn returns on-off state.
func (s *Socket) IsOn() bool {
	return s.on
}

// GetPower returns nominal power if socket is on, zero otherwise.
func (s *Socket) GetPower() float64 {
	if s.on {
		return s.power
	}

	return 0
}

// On turns socket on.
func (s *Socket) On() error {
	s.on = true
	return nil
}

// Off turns socket off.
func (s *Socket) Off() error {
	s.on = false
	return nil
}

// Toggle switches socket state.
func (s *Socket) Toggle() error {
	s.on = !s.on
	return nil
}
