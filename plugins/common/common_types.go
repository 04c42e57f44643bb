// Package common contains shared data available for all components.
package common

import "github.com/go-home-io/smarthome/plugins/device/enums"

// DeviceState describes state snapshot of a single device.
type DeviceState struct {
	Name       string                         `json:"name"`
	Type       enums.DeviceType               `json:"type"`
	Commands   []string                       `json:"commands"`
	Properties map[enums.Property]interface{} `json:"properties"`
}
