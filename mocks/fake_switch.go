//+build !release

package mocks

import "errors"

// FakeSwitch implements device.ISwitch with optional failures.
type FakeSwitch struct {
	Name  string
	Power float64
	State bool
	Fail  bool

	Calls []string
}

// GetName returns switch name.
func (s *FakeSwitch) GetName() string {
	return s.Name
}

// IsOn returns current state.
func (s *FakeSwitch) IsOn() bool {
	return s.State
}

// GetPower returns power if switch is on.
func (s *FakeSwitch) GetPower() float64 {
	if s.State {
		return s.Power
	}

	return 0
}

// On turns switch on.
func (s *FakeSwitch) On() error {
	return s.invoke("on", func() { s.State = true })
}

// Off turns switch off.
func (s *FakeSwitch) Off() error {
	return s.invoke("off", func() { s.State = false })
}

// Toggle flips the state.
func (s *FakeSwitch) Toggle() error {
	return s.invoke("toggle", func() { s.State = !s.State })
}

func (s *FakeSwitch) invoke(name string, f func()) error {
	s.Calls = append(s.Calls, name)
	if s.Fail {
		return errors.New("fake switch failure")
	}

	f()
	return nil
}

// FakeNewSwitch creates a fake switch.
func FakeNewSwitch(name string, power float64) *FakeSwitch {
	return &FakeSwitch{
		Name:  name,
		Power: power,
		Calls: make([]string, 0),
	}
}
