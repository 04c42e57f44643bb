package netsocket

import (
	"testing"

	"github.com/go-home-io/smarthome/plugins/device/enums"
	"github.com/stretchr/testify/assert"
)

// Tests exact-match commit rules.
func TestStateApply(t *testing.T) {
	data := []struct {
		name      string
		before    cachedState
		cmd       enums.Command
		resp      string
		after     cachedState
		committed bool
	}{
		{"on", cachedState{power: 220}, enums.CmdOn, "OK:ON", cachedState{true, 220}, true},
		{"on with odd payload", cachedState{power: 220}, enums.CmdOn, "OK:DONE", cachedState{false, 220}, false},
		{"off", cachedState{true, 220}, enums.CmdOff, "OK:OFF", cachedState{false, 220}, true},
		{"off with odd payload", cachedState{true, 220}, enums.CmdOff, "OK:ON", cachedState{true, 220}, false},
		{"toggle", cachedState{false, 220}, enums.CmdToggle, "OK:SWITCH", cachedState{true, 220}, true},
		{"toggle back", cachedState{true, 220}, enums.CmdToggle, "OK:SWITCH", cachedState{false, 220}, true},
		{"toggle with odd payload", cachedState{true, 220}, enums.CmdToggle, "OK:", cachedState{true, 220}, false},
		{"power", cachedState{true, 220}, enums.CmdGetPower, "POWER:100.5", cachedState{true, 100.5}, true},
		{"power with spaces", cachedState{true, 220}, enums.CmdGetPower, "POWER: 42 ", cachedState{true, 42}, true},
		{"power prefix repeated", cachedState{true, 220}, enums.CmdGetPower, "POWER:POWER:5", cachedState{true, 5}, true},
		// Non-numeric power is accepted but silently ignored.
		{"power not a number", cachedState{true, 220}, enums.CmdGetPower, "POWER:abc", cachedState{true, 220}, false},
		{"power empty", cachedState{true, 220}, enums.CmdGetPower, "POWER:", cachedState{true, 220}, false},
		{"status on", cachedState{false, 220}, enums.CmdGetStatus, "STATUS:ON", cachedState{true, 220}, true},
		{"status off", cachedState{true, 220}, enums.CmdGetStatus, "STATUS:OFF", cachedState{false, 220}, true},
		// Unknown status payload is accepted but silently ignored.
		{"status unknown", cachedState{true, 220}, enums.CmdGetStatus, "STATUS:BROKEN", cachedState{true, 220}, false},
	}

	for _, v := range data {
		s := v.before
		assert.Equal(t, v.committed, s.apply(v.cmd, v.resp), v.name)
		assert.Equal(t, v.after, s, v.name)
	}
}

// Tests observed power.
func TestObservedPower(t *testing.T) {
	s := cachedState{power: 220}
	assert.Equal(t, 0.0, s.observedPower())

	s.on = true
	assert.Equal(t, 220.0, s.observedPower())
}
