// Package device contains smart devices definitions.
package device

import (
	"reflect"

	"github.com/go-home-io/smarthome/plugins/device/enums"
)

// IDevice defines generic device interface.
type IDevice interface {
	GetName() string
}

// IThermometer defines thermometer interface.
type IThermometer interface {
	IDevice
	GetTemperature() float64
	GetMeasure() enums.UOM
	ChangeMeasure()
}

// IConnectable defines device which needs a live connection to a peer.
type IConnectable interface {
	Connect() error
	Disconnect()
	IsConnected() bool
	GetAddress() string
}

// TypeThermometer is a syntax sugar around IThermometer type.
var TypeThermometer = reflect.TypeOf((*IThermometer)(nil)).Elem()
