package enums

import (
	"fmt"
	"strings"
)

// UOM defines units of measure.
type UOM int

const (
	// UOMImperial defines imperial system.
	UOMImperial UOM = iota
	// UOMMetric defines metric system.
	UOMMetric
)

// String returns short temperature scale name: "F" or "C".
func (i UOM) String() string {
	switch i {
	case UOMImperial:
		return "F"
	case UOMMetric:
		return "C"
	}

	return fmt.Sprintf("UOM(%d)", int(i))
}

// UOMString parses temperature scale name.
// Accepts c/f as well as metric/imperial.
func UOMString(s string) (UOM, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "metric", "celsius":
		return UOMMetric, nil
	case "f", "imperial", "fahrenheit":
		return UOMImperial, nil
	}

	return UOMMetric, fmt.Errorf("%s does not belong to UOM values", s)
}
