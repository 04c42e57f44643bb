package netsocket

import (
	"strconv"
	"strings"

	"github.com/go-home-io/smarthome/plugins/device/enums"
)

// Device state as confirmed by the peer.
type cachedState struct {
	on    bool
	power float64
}

// Returns observed power: nominal when on, zero otherwise.
func (s *cachedState) observedPower() float64 {
	if s.on {
		return s.power
	}

	return 0
}

// Applies accepted response. Returns whether anything was committed.
// Accepted responses which don't match exactly are ignored.
func (s *cachedState) apply(cmd enums.Command, response string) bool {
	switch cmd {
	case enums.CmdOn:
		if response == responseOn {
			s.on = true
			return true
		}
	case enums.CmdOff:
		if response == responseOff {
			s.on = false
			return true
		}
	case enums.CmdToggle:
		if response == responseSwitch {
			s.on = !s.on
			return true
		}
	case enums.CmdGetPower:
		if !strings.HasPrefix(response, prefixPower) {
			return false
		}

		power, err := strconv.ParseFloat(strings.TrimSpace(strings.Replace(response, prefixPower, "", -1)), 32)
		if err != nil {
			return false
		}

		s.power = power
		return true
	case enums.CmdGetStatus:
		switch response {
		case responseStatusOn:
			s.on = true
			return true
		case responseStatusOff:
			s.on = false
			return true
		}
	}

	return false
}
