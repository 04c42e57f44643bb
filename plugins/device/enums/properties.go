package enums

import "fmt"

// Property describes enum with known devices' properties.
type Property int

const (
	// PropOn describes On/Off status of the device.
	PropOn Property = iota
	// PropPower describes device consumption power.
	PropPower
	// PropTemperature describes temperature.
	PropTemperature
	// PropMeasure describes temperature scale.
	PropMeasure
	// PropAddress describes network address of the device.
	PropAddress
	// PropConnected describes connection status of the device.
	PropConnected
)

var propertyNames = map[Property]string{
	PropOn:          "on",
	PropPower:       "power",
	PropTemperature: "temperature",
	PropMeasure:     "measure",
	PropAddress:     "address",
	PropConnected:   "connected",
}

// String returns snake-cased property name.
func (i Property) String() string {
	return propertyNames[i]
}

// MarshalText implements encoding.TextMarshaler so properties could be used as JSON keys.
func (i Property) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Property) UnmarshalText(text []byte) error {
	for k, v := range propertyNames {
		if v == string(text) {
			*i = k
			return nil
		}
	}

	return fmt.Errorf("%s does not belong to Property values", text)
}
