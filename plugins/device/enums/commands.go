// Package enums contains various enumerations and rules for smart devices.
package enums

import (
	"fmt"
	"strings"
)

// Command describes enum with known device commands.
type Command int

const (
	// CmdOn describes turning on command.
	CmdOn Command = iota
	// CmdOff describes turning off command.
	CmdOff
	// CmdToggle describes toggling on-off status command.
	CmdToggle
	// CmdGetPower describes power consumption request.
	CmdGetPower
	// CmdGetStatus describes on-off status request.
	CmdGetStatus
)

// Kebab names used in logs, CLI and API.
var commandNames = map[Command]string{
	CmdOn:        "on",
	CmdOff:       "off",
	CmdToggle:    "toggle",
	CmdGetPower:  "get-power",
	CmdGetStatus: "get-status",
}

// Tokens sent over the wire to a network socket.
var commandWireTokens = map[Command]string{
	CmdOn:        "ON",
	CmdOff:       "OFF",
	CmdToggle:    "SWITCH",
	CmdGetPower:  "GET_POWER",
	CmdGetStatus: "GET_STATUS",
}

// AllowedCommands contains set of all possible allowed commands per device type.
var AllowedCommands = map[DeviceType][]Command{
	DevThermometer: {},
	DevSocket:      {CmdToggle, CmdOn, CmdOff},
	DevNetSocket:   {CmdToggle, CmdOn, CmdOff, CmdGetPower, CmdGetStatus},
}

// AllCommands returns every known command in declaration order.
func AllCommands() []Command {
	return []Command{CmdOn, CmdOff, CmdToggle, CmdGetPower, CmdGetStatus}
}

// String returns kebab-cased command name.
func (i Command) String() string {
	if n, ok := commandNames[i]; ok {
		return n
	}

	return fmt.Sprintf("Command(%d)", int(i))
}

// WireToken returns command representation used by the socket protocol.
// Unknown commands produce an empty token.
func (i Command) WireToken() string {
	return commandWireTokens[i]
}

// CommandString parses kebab-cased command name.
func CommandString(s string) (Command, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, v := range commandNames {
		if v == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%s does not belong to Command values", s)
}

// SliceContainsCommand checks whether slice contains certain command.
func SliceContainsCommand(s []Command, e Command) bool {
	for _, a := range s {
		if a == e {
			return true
		}
	}
	return false
}

// IsCommandAllowed checks whether command is allowed for this device type.
func (i Command) IsCommandAllowed(deviceType DeviceType) bool {
	slice, ok := AllowedCommands[deviceType]
	if !ok {
		return false
	}

	return SliceContainsCommand(slice, i)
}
