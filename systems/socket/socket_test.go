package socket

import (
	"testing"

	"github.com/go-home-io/smarthome/plugins/device"
	"github.com/stretchr/testify/assert"
)

var _ device.ISwitch = (*Socket)(nil)

// Tests socket lifecycle.
func TestSocket(t *testing.T) {
	s := NewSocket("TestSocket", 220.0)
	assert.Equal(t, "TestSocket", s.GetName())
	assert.False(t, s.IsOn())
	assert.Equal(t, 0.0, s.GetPower())

	assert.NoError(t, s.On())
	assert.True(t, s.IsOn())
	assert.Equal(t, 220.0, s.GetPower())

	assert.NoError(t, s.Off())
	assert.False(t, s.IsOn())

	assert.NoError(t, s.Toggle())
	assert.True(t, s.IsOn())
	assert.NoError(t, s.Toggle())
	assert.False(t, s.IsOn())
}

// Tests that repeated commands are idempotent.
func TestRepeatedCommands(t *testing.T) {
	s := NewSocket("TestSocket", 1500)
	for i := 0; i < 3; i++ {
		assert.NoError(t, s.On())
	}
	assert.Equal(t, 1500.0, s.GetPower())

	for i := 0; i < 3; i++ {
		assert.NoError(t, s.Off())
	}
	assert.Equal(t, 0.0, s.GetPower())
}
