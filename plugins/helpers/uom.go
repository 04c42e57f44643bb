// Package helpers contains various helpers which can be re-used by devices.
package helpers

import (
	"math"

	"github.com/go-home-io/smarthome/plugins/device/enums"
)

// UOMConvert converts temperature from one system to another.
func UOMConvert(value float64, currentUOM enums.UOM, desiredUOM enums.UOM) float64 {
	if desiredUOM == currentUOM {
		return value
	}

	if currentUOM == enums.UOMMetric {
		return convertMetricToImperial(value)
	}

	return convertImperialToMetric(value)
}

// RoundTo rounds value to the given number of decimal places.
func RoundTo(value float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(value*p) / p
}

// Converts imperial to metric.
func convertImperialToMetric(value float64) float64 {
	return (value - 32.0) * 5.0 / 9.0
}

// Converts metric to imperial.
func convertMetricToImperial(value float64) float64 {
	return value*9.0/5.0 + 32.0
}
