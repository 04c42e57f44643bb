package device

import "reflect"

// ISwitch defines switch interface.
// Local and networked sockets are interchangeable through it.
type ISwitch interface {
	IDevice
	IsOn() bool
	GetPower() float64
	On() error
	Off() error
	Toggle() error
}

// TypeSwitch is a syntax sugar around ISwitch type.
var TypeSwitch = reflect.TypeOf((*ISwitch)(nil)).Elem()
