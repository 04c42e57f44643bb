package home

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/go-home-io/smarthome/plugins/common"
	"github.com/go-home-io/smarthome/plugins/device"
	"github.com/go-home-io/smarthome/plugins/device/enums"
)

// Network socket capabilities on top of a regular switch.
type networkSwitch interface {
	device.ISwitch
	device.IConnectable
	SendCommand(enums.Command) (string, error)
}

var typeNetworkSwitch = reflect.TypeOf((*networkSwitch)(nil)).Elem()

// Device is a single device of a room.
// Interface holds device.IThermometer for thermometers and device.ISwitch for sockets.
type Device struct {
	sync.Mutex

	Type      enums.DeviceType
	Interface interface{}
}

// NewDevice detects device type and wraps it.
func NewDevice(dev device.IDevice) (*Device, error) {
	if nil == dev {
		return nil, &ErrUnknownDeviceType{}
	}

	t := reflect.TypeOf(dev)
	d := &Device{Interface: dev}

	switch {
	case t.Implements(typeNetworkSwitch):
		d.Type = enums.DevNetSocket
	case t.Implements(device.TypeSwitch):
		d.Type = enums.DevSocket
	case t.Implements(device.TypeThermometer):
		d.Type = enums.DevThermometer
	default:
		return nil, &ErrUnknownDeviceType{Name: dev.GetName()}
	}

	return d, nil
}

// GetName returns device name.
func (d *Device) GetName() string {
	return d.Interface.(device.IDevice).GetName()
}

// Commands returns commands supported by the device.
func (d *Device) Commands() []enums.Command {
	return enums.AllowedCommands[d.Type]
}

// InvokeCommand executes command against the device.
// Network sockets return raw peer response, local devices return empty string.
func (d *Device) InvokeCommand(cmd enums.Command) (string, error) {
	if !cmd.IsCommandAllowed(d.Type) {
		return "", &ErrUnsupportedCommand{Name: d.GetName(), Command: cmd}
	}

	d.Lock()
	defer d.Unlock()

	if d.Type == enums.DevNetSocket {
		return d.Interface.(networkSwitch).SendCommand(cmd)
	}

	sw := d.Interface.(device.ISwitch)
	switch cmd {
	case enums.CmdOn:
		return "", sw.On()
	case enums.CmdOff:
		return "", sw.Off()
	default:
		return "", sw.Toggle()
	}
}

// State returns device state snapshot.
func (d *Device) State() *common.DeviceState {
	d.Lock()
	defer d.Unlock()

	state := &common.DeviceState{
		Name:       d.GetName(),
		Type:       d.Type,
		Commands:   make([]string, 0),
		Properties: make(map[enums.Property]interface{}),
	}

	for _, v := range d.Commands() {
		state.Commands = append(state.Commands, v.String())
	}

	switch d.Type {
	case enums.DevThermometer:
		th := d.Interface.(device.IThermometer)
		state.Properties[enums.PropTemperature] = th.GetTemperature()
		state.Properties[enums.PropMeasure] = th.GetMeasure().String()
	case enums.DevSocket, enums.DevNetSocket:
		sw := d.Interface.(device.ISwitch)
		state.Properties[enums.PropOn] = sw.IsOn()
		state.Properties[enums.PropPower] = sw.GetPower()
		if d.Type == enums.DevNetSocket {
			conn := d.Interface.(device.IConnectable)
			state.Properties[enums.PropAddress] = conn.GetAddress()
			state.Properties[enums.PropConnected] = conn.IsConnected()
		}
	}

	return state
}

// Report returns single line device description.
func (d *Device) Report() string {
	d.Lock()
	defer d.Unlock()

	switch d.Type {
	case enums.DevThermometer:
		th := d.Interface.(device.IThermometer)
		return fmt.Sprintf("Thermometer '%s', temperature: %.1f °%s",
			th.GetName(), th.GetTemperature(), th.GetMeasure())
	case enums.DevSocket:
		return switchReport(d.Interface.(device.ISwitch))
	case enums.DevNetSocket:
		conn := d.Interface.(device.IConnectable)
		status := "disconnected"
		if conn.IsConnected() {
			status = "connected"
		}
		return fmt.Sprintf("%s, address %s (%s)",
			switchReport(d.Interface.(device.ISwitch)), conn.GetAddress(), status)
	}

	return fmt.Sprintf("Device '%s'", d.GetName())
}

// Formats local state of a socket.
func switchReport(sw device.ISwitch) string {
	status := "off"
	if sw.IsOn() {
		status = "on"
	}

	return fmt.Sprintf("Socket '%s': %s, power %.1f W", sw.GetName(), status, sw.GetPower())
}
