// Package settings is responsible for parsing yaml-based configuration.
package settings

import (
	"io/ioutil"
	"time"

	"github.com/docker/docker/pkg/namesgenerator"
	"github.com/go-home-io/smarthome/plugins/common"
	"github.com/go-home-io/smarthome/plugins/device"
	"github.com/go-home-io/smarthome/plugins/device/enums"
	"github.com/go-home-io/smarthome/providers"
	"github.com/go-home-io/smarthome/systems/home"
	"github.com/go-home-io/smarthome/systems/logger"
	"github.com/go-home-io/smarthome/systems/netsocket"
	"github.com/go-home-io/smarthome/systems/socket"
	"github.com/go-home-io/smarthome/systems/thermometer"
	"github.com/go-home-io/smarthome/utils"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	// Logger system.
	logSystem = "settings"
)

// StartUpOptions defines arguments allowed by the system.
type StartUpOptions struct {
	Config   string `short:"c" long:"config" default:"home.yaml" description:"Home config file."`
	LogLevel string `short:"l" long:"log-level" description:"Overrides configured log level."`
}

// System settings.
type settingsProvider struct {
	logger    common.ILoggerProvider
	cron      providers.ICronProvider
	validator providers.IValidatorProvider
	newLogger func(logger.Level) common.ILoggerProvider

	homeSettings *providers.HomeSettings
	home         *home.Home
	sockets      []*netsocket.Guarded
}

// Load reads config file and builds the home.
func Load(options *StartUpOptions) (providers.ISettingsProvider, error) {
	data, err := ioutil.ReadFile(options.Config)
	if err != nil {
		return nil, errors.Wrap(err, "config read failed")
	}

	s := newSettingsProvider(logger.NewConsoleLogger(logger.LevelInfo), func(level logger.Level) common.ILoggerProvider {
		return logger.NewConsoleLogger(level)
	})

	if err := s.load(data, options.LogLevel); err != nil {
		return nil, err
	}

	s.cron = utils.NewCron()
	return s, nil
}

// Constructs settings provider with initial logger.
func newSettingsProvider(log common.ILoggerProvider,
	newLogger func(logger.Level) common.ILoggerProvider) *settingsProvider {
	return &settingsProvider{
		logger:    log,
		validator: utils.NewValidator(log),
		newLogger: newLogger,
		sockets:   make([]*netsocket.Guarded, 0),
	}
}

// Parses config data and builds the home.
func (s *settingsProvider) load(data []byte, logLevel string) error {
	data, err := newTemplateProvider(s.logger).Process(data)
	if err != nil {
		return err
	}

	set := &providers.HomeSettings{}
	if err := yaml.Unmarshal(data, set); err != nil {
		return errors.Wrap(err, "yaml un-marshal failed")
	}

	sections := map[string]interface{}{
		"api":      &set.API,
		"poller":   &set.Poller,
		"emulator": &set.Emulator,
		"home":     set,
	}

	for _, k := range []string{"api", "poller", "emulator", "home"} {
		if !s.validator.Validate(sections[k]) {
			return &ErrInvalidConfig{Section: k}
		}
	}

	if logLevel == "" {
		logLevel = set.LogLevel
	}

	s.logger = s.newLogger(logger.ParseLevel(logLevel))
	s.validator.SetLogger(s.logger)
	s.homeSettings = set

	return s.buildHome()
}

// Builds home hierarchy out of loaded settings.
func (s *settingsProvider) buildHome() error {
	s.home = home.NewHome(s.homeSettings.Name)

	for _, rs := range s.homeSettings.Rooms {
		if !s.validator.Validate(rs) {
			return &ErrInvalidConfig{Section: "room " + rs.Name}
		}

		key := rs.Key
		if key == "" {
			key = rs.Name
		}

		room := home.NewRoom(rs.Name)
		for _, ds := range rs.Devices {
			devKey, dev, err := s.buildDevice(rs.Name, ds)
			if err != nil {
				return err
			}

			if _, ok := room.GetDevice(devKey); ok {
				s.logger.Warn("Duplicate device key, replacing previous device",
					common.LogRoomToken, rs.Name, common.LogDeviceNameToken, devKey)
			}

			room.AddDevice(devKey, dev)
		}

		if _, ok := s.home.GetRoom(key); ok {
			s.logger.Warn("Duplicate room key, replacing previous room", common.LogRoomToken, key)
		}

		s.home.AddRoom(key, room)
	}

	return nil
}

// Builds a single device.
func (s *settingsProvider) buildDevice(room string, ds *providers.DeviceSettings) (string, *home.Device, error) {
	if !s.validator.Validate(ds) {
		return "", nil, &ErrInvalidConfig{Section: "device " + ds.Name}
	}

	if ds.Name == "" {
		ds.Name = namesgenerator.GetRandomName(0)
		s.logger.Warn("Generating random name since it's not configured",
			common.LogDeviceTypeToken, ds.Type, common.LogRoomToken, room, common.LogDeviceNameToken, ds.Name)
	}

	key := ds.Key
	if key == "" {
		key = utils.NormalizeDeviceName(ds.Name)
	}

	devType, _ := enums.DeviceTypeString(ds.Type)

	var dev device.IDevice
	switch devType {
	case enums.DevThermometer:
		measure, _ := enums.UOMString(ds.Measure)
		dev = thermometer.NewThermometer(ds.Name, measure, ds.Temperature)
	case enums.DevSocket:
		dev = socket.NewSocket(ds.Name, ds.Power)
	case enums.DevNetSocket:
		if ds.Address == "" {
			return "", nil, &ErrNoAddress{Name: ds.Name}
		}

		readTimeout, _ := time.ParseDuration(ds.ReadTimeout)
		dialTimeout, _ := time.ParseDuration(ds.DialTimeout)
		g := netsocket.NewGuarded(netsocket.NewSocket(&netsocket.ConstructSocket{
			Name:        ds.Name,
			Address:     ds.Address,
			Power:       ds.Power,
			Logger:      s.logger,
			ReadTimeout: readTimeout,
			DialTimeout: dialTimeout,
		}))
		s.sockets = append(s.sockets, g)
		dev = g
	}

	d, err := home.NewDevice(dev)
	if err != nil {
		return "", nil, err
	}

	s.logger.Debug("Loaded device", common.LogRoomToken, room, common.LogDeviceNameToken, ds.Name,
		common.LogDeviceTypeToken, devType.String())
	return key, d, nil
}
