// Package thermometer implements thermometer with switchable measure.
package thermometer

import (
	"github.com/go-home-io/smarthome/plugins/device/enums"
	"github.com/go-home-io/smarthome/plugins/helpers"
)

// Thermometer keeps temperature in its current measure.
type Thermometer struct {
	name        string
	temperature float64
	measure     enums.UOM
}

// NewThermometer constructs a new thermometer.
func NewThermometer(name string, measure enums.UOM, temperature float64) *Thermometer {
	return &Thermometer{
		name:        name,
		temperature: temperature,
		measure:     measure,
	}
}

// GetName returns thermometer name.
func (t *Thermometer) GetName() string {
	return t.name
}

// GetTemperature returns temperature in current measure.
func (t *Thermometer) GetTemperature() float64 {
	return t.temperature
}

// GetMeasure returns current measure.
func (t *Thermometer) GetMeasure() enums.UOM {
	return t.measure
}

// ChangeMeasure flips Celsius and Fahrenheit converting the temperature.
func (t *Thermometer) ChangeMeasure() {
	desired := enums.UOMImperial
	if t.measure == enums.UOMImperial {
		desired = enums.UOMMetric
	}

	t.temperature = helpers.UOMConvert(t.temperature, t.measure, desired)
	t.measure = desired
}
