package netsocket

import (
	"testing"

	"github.com/go-home-io/smarthome/plugins/device/enums"
	"github.com/stretchr/testify/assert"
)

// Tests prefix validation.
func TestValidateResponse(t *testing.T) {
	data := []struct {
		cmd  enums.Command
		resp string
		ok   bool
	}{
		{enums.CmdOn, "OK:ON", true},
		{enums.CmdOn, "ERROR", false},
		{enums.CmdOn, "OK:OFF", true},
		{enums.CmdOff, "OK:OFF", true},
		{enums.CmdToggle, "OK:", true},
		{enums.CmdToggle, "ok:SWITCH", false},
		{enums.CmdGetPower, "POWER:220.0", true},
		{enums.CmdGetPower, "220.0", false},
		{enums.CmdGetPower, "POWER:abc", true},
		{enums.CmdGetPower, "OK:ON", false},
		{enums.CmdGetStatus, "STATUS:ON", true},
		{enums.CmdGetStatus, "STATUS:MAYBE", true},
		{enums.CmdGetStatus, "", false},
		{enums.Command(42), "OK:ON", false},
	}

	for _, v := range data {
		resp, err := ValidateResponse(v.cmd, v.resp)
		if v.ok {
			assert.NoError(t, err, "%s %s", v.cmd, v.resp)
			assert.Equal(t, v.resp, resp)
			continue
		}

		if assert.Error(t, err, "%s %s", v.cmd, v.resp) {
			assert.IsType(t, &ErrProtocol{}, err)
			assert.Contains(t, err.Error(), v.resp)
		}
	}
}

// Tests that validation is pure.
func TestValidateResponseRepeatable(t *testing.T) {
	for i := 0; i < 3; i++ {
		resp, err := ValidateResponse(enums.CmdOn, "OK:ON")
		assert.NoError(t, err)
		assert.Equal(t, "OK:ON", resp)
	}
}
