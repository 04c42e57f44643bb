package netsocket

import (
	"strings"

	"github.com/go-home-io/smarthome/plugins/device/enums"
)

const (
	// Prefix of acknowledged state changes.
	prefixOK = "OK:"
	// Prefix of power readings.
	prefixPower = "POWER:"
	// Prefix of status readings.
	prefixStatus = "STATUS:"
)

// Canonical responses which commit state.
const (
	responseOn        = "OK:ON"
	responseOff       = "OK:OFF"
	responseSwitch    = "OK:SWITCH"
	responseStatusOn  = "STATUS:ON"
	responseStatusOff = "STATUS:OFF"
)

// ValidateResponse checks raw response syntactically against the command it answers.
// Only the prefix is checked, payload is interpreted later.
func ValidateResponse(cmd enums.Command, response string) (string, error) {
	prefix := expectedPrefix(cmd)
	if prefix != "" && strings.HasPrefix(response, prefix) {
		return response, nil
	}

	return "", &ErrProtocol{Command: cmd, Response: response}
}

// Returns response prefix accepted for the command.
func expectedPrefix(cmd enums.Command) string {
	switch cmd {
	case enums.CmdOn, enums.CmdOff, enums.CmdToggle:
		return prefixOK
	case enums.CmdGetPower:
		return prefixPower
	case enums.CmdGetStatus:
		return prefixStatus
	}

	return ""
}
