package providers

import (
	"github.com/go-home-io/smarthome/plugins/common"
	"github.com/go-home-io/smarthome/systems/home"
	"github.com/go-home-io/smarthome/systems/netsocket"
)

// ISettingsProvider defines settings loader provider logic.
type ISettingsProvider interface {
	SystemLogger() common.ILoggerProvider
	Cron() ICronProvider
	Validator() IValidatorProvider
	HomeSettings() *HomeSettings
	Home() *home.Home
	NetworkSockets() []*netsocket.Guarded
}

// HomeSettings has data describing the whole home, loaded from config file.
type HomeSettings struct {
	Name     string           `yaml:"name" default:"Home"`
	LogLevel string           `yaml:"logLevel" validate:"oneof=debug info warn error" default:"info"`
	API      APISettings      `yaml:"api"`
	Poller   PollerSettings   `yaml:"poller"`
	Emulator EmulatorSettings `yaml:"emulator"`
	Rooms    []*RoomSettings  `yaml:"rooms"`
}

// APISettings has configured data for HTTP API.
type APISettings struct {
	Host string `yaml:"host" default:"127.0.0.1"`
	Port int    `yaml:"port" validate:"required,port" default:"8000"`
}

// PollerSettings has configured data for network sockets status poller.
type PollerSettings struct {
	Enabled  bool   `yaml:"enabled"`
	Schedule string `yaml:"schedule" validate:"required" default:"@every 30s"`
	TTL      string `yaml:"ttl" validate:"duration" default:"5m"`
}

// EmulatorSettings has configured data for socket emulator.
type EmulatorSettings struct {
	Listen string  `yaml:"listen" validate:"hostport" default:"127.0.0.1:7878"`
	Power  float64 `yaml:"power" validate:"gte=0" default:"220"`
	On     bool    `yaml:"on"`
}

// RoomSettings has data describing a single room.
type RoomSettings struct {
	Key     string            `yaml:"key"`
	Name    string            `yaml:"name" validate:"required"`
	Devices []*DeviceSettings `yaml:"devices"`
}

// DeviceSettings has data describing a single device.
// Fields are type-specific.
type DeviceSettings struct {
	Type        string  `yaml:"type" validate:"required,devtype"`
	Key         string  `yaml:"key"`
	Name        string  `yaml:"name"`
	Power       float64 `yaml:"power" validate:"gte=0"`
	Address     string  `yaml:"address" validate:"omitempty,hostport"`
	Measure     string  `yaml:"measure" validate:"measure" default:"C"`
	Temperature float64 `yaml:"temperature"`
	ReadTimeout string  `yaml:"readTimeout" validate:"duration" default:"2s"`
	DialTimeout string  `yaml:"dialTimeout" validate:"duration" default:"5s"`
}
