package enums

import (
	"fmt"
	"strings"
)

// DeviceType describes enum with known device types.
type DeviceType int

const (
	// DevUnknown describes unknown device type.
	DevUnknown DeviceType = iota
	// DevThermometer describes thermometer device type.
	DevThermometer
	// DevSocket describes locally controlled electrical socket.
	DevSocket
	// DevNetSocket describes electrical socket controlled over TCP.
	DevNetSocket
)

var deviceTypeNames = map[DeviceType]string{
	DevUnknown:     "unknown",
	DevThermometer: "thermometer",
	DevSocket:      "socket",
	DevNetSocket:   "netsocket",
}

// String returns device type name.
func (i DeviceType) String() string {
	if n, ok := deviceTypeNames[i]; ok {
		return n
	}

	return fmt.Sprintf("DeviceType(%d)", int(i))
}

// DeviceTypeString parses device type name.
func DeviceTypeString(s string) (DeviceType, error) {
	s = strings.ToLower(s)
	for k, v := range deviceTypeNames {
		if v == s {
			return k, nil
		}
	}

	return DevUnknown, fmt.Errorf("%s does not belong to DeviceType values", s)
}

// MarshalText implements encoding.TextMarshaler.
func (i DeviceType) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *DeviceType) UnmarshalText(text []byte) error {
	var err error
	*i, err = DeviceTypeString(string(text))
	return err
}
