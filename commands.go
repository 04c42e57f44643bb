package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/creasty/defaults"
	"github.com/fatih/color"
	"github.com/go-home-io/smarthome/plugins/common"
	"github.com/go-home-io/smarthome/plugins/device/enums"
	"github.com/go-home-io/smarthome/providers"
	"github.com/go-home-io/smarthome/server"
	"github.com/go-home-io/smarthome/settings"
	"github.com/go-home-io/smarthome/systems/emulator"
	"github.com/go-home-io/smarthome/systems/logger"
	"github.com/go-home-io/smarthome/systems/poller"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

// Shared state of all commands.
type commands struct {
	options *settings.StartUpOptions
	out     io.Writer

	load func(*settings.StartUpOptions) (providers.ISettingsProvider, error)
	wait func()
}

// Creates commands writing to out and stopping on SIGINT or SIGTERM.
func newCommands(out io.Writer) *commands {
	return &commands{
		options: &settings.StartUpOptions{},
		out:     out,
		load:    settings.Load,
		wait:    waitForSignal,
	}
}

// Creates parser with all sub-commands registered.
func newParser(c *commands) *flags.Parser {
	parser := flags.NewParser(c.options, flags.Default)
	parser.AddCommand("report", "Print home report", // nolint: errcheck, gosec
		"Connects network sockets and prints state of every device.", &reportCommand{c: c})
	parser.AddCommand("socket", "Run device command", // nolint: errcheck, gosec
		"Runs a single command against a device and prints the response.", &socketCommand{c: c})
	parser.AddCommand("emulate", "Run socket emulator", // nolint: errcheck, gosec
		"Runs TCP peer which behaves like a network socket.", &emulateCommand{c: c})
	parser.AddCommand("serve", "Run HTTP API", // nolint: errcheck, gosec
		"Runs HTTP API and network sockets poller.", &serveCommand{c: c})
	return parser
}

// Blocks until process is asked to stop.
func waitForSignal() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	<-ch
	signal.Stop(ch)
}

// Connects every network socket, failures are only logged.
func connectSockets(s providers.ISettingsProvider) {
	for _, v := range s.NetworkSockets() {
		if err := v.Connect(); err != nil {
			s.SystemLogger().Warn("Network socket is unavailable", common.LogDeviceNameToken, v.GetName(),
				common.LogErrorToken, err.Error())
		}
	}
}

// Drops every network socket connection.
func disconnectSockets(s providers.ISettingsProvider) {
	for _, v := range s.NetworkSockets() {
		v.Disconnect()
	}
}

// Prints home report.
type reportCommand struct {
	c *commands
}

// Execute implements flags.Commander.
func (r *reportCommand) Execute(_ []string) error {
	s, err := r.c.load(r.c.options)
	if err != nil {
		return err
	}
	defer s.Cron().Stop()

	connectSockets(s)
	defer disconnectSockets(s)

	_, err = io.WriteString(r.c.out, s.Home().Report())
	return err
}

// Runs single command against a device.
type socketCommand struct {
	c *commands

	Room   string `short:"r" long:"room" required:"true" description:"Room key."`
	Device string `short:"d" long:"device" required:"true" description:"Device key."`
	Args   struct {
		Command string `positional-arg-name:"command" description:"on, off, toggle, get-power or get-status."`
	} `positional-args:"true" required:"true"`
}

// Execute implements flags.Commander.
func (sc *socketCommand) Execute(_ []string) error {
	cmd, err := enums.CommandString(sc.Args.Command)
	if err != nil {
		return err
	}

	s, err := sc.c.load(sc.c.options)
	if err != nil {
		return err
	}
	defer s.Cron().Stop()

	d, err := s.Home().GetDeviceFromRoom(sc.Room, sc.Device)
	if err != nil {
		return err
	}

	if d.Type == enums.DevNetSocket {
		connectSockets(s)
		defer disconnectSockets(s)
	}

	response, err := d.InvokeCommand(cmd)
	if err != nil {
		return errors.Wrap(err, "command failed")
	}

	if response != "" {
		color.New(color.FgGreen).Fprintln(sc.c.out, response) // nolint: errcheck, gosec
	}

	_, err = fmt.Fprintln(sc.c.out, d.Report())
	return err
}

// Runs socket emulator.
// Config file provides the baseline, flags override it.
type emulateCommand struct {
	c *commands

	Listen string   `long:"listen" description:"Address to listen on."`
	Power  *float64 `long:"power" description:"Nominal power."`
	On     bool     `long:"on" description:"Start turned on."`
}

// Execute implements flags.Commander.
func (e *emulateCommand) Execute(_ []string) error {
	cfg, log, err := e.settings()
	if err != nil {
		return err
	}

	if e.Listen != "" {
		cfg.Listen = e.Listen
	}
	if e.Power != nil {
		cfg.Power = *e.Power
	}

	emu, err := emulator.NewEmulator(&emulator.ConstructEmulator{
		Address: cfg.Listen,
		Power:   cfg.Power,
		On:      cfg.On || e.On,
		Logger:  log,
	})
	if err != nil {
		return errors.Wrap(err, "emulator start failed")
	}

	fmt.Fprintf(e.c.out, "Emulating socket on %s\n", emu.Addr()) // nolint: errcheck, gosec
	e.c.wait()
	return emu.Close()
}

// Returns configured emulator settings.
// Defaults are used when config file doesn't exist.
func (e *emulateCommand) settings() (*providers.EmulatorSettings, common.ILoggerProvider, error) {
	if _, err := os.Stat(e.c.options.Config); os.IsNotExist(err) {
		cfg := &providers.EmulatorSettings{}
		if err := defaults.Set(cfg); err != nil {
			return nil, nil, errors.Wrap(err, "emulator defaults failed")
		}

		return cfg, logger.NewConsoleLogger(logger.ParseLevel(e.c.options.LogLevel)), nil
	}

	s, err := e.c.load(e.c.options)
	if err != nil {
		return nil, nil, err
	}
	s.Cron().Stop()

	cfg := s.HomeSettings().Emulator
	return &cfg, s.SystemLogger(), nil
}

// Runs HTTP API.
type serveCommand struct {
	c *commands
}

// Execute implements flags.Commander.
func (sc *serveCommand) Execute(_ []string) error {
	s, err := sc.c.load(sc.c.options)
	if err != nil {
		return err
	}
	defer s.Cron().Stop()

	connectSockets(s)
	defer disconnectSockets(s)

	ctor := &server.ConstructServer{
		Home:   s.Home(),
		Logger: s.SystemLogger(),
		Host:   s.HomeSettings().API.Host,
		Port:   s.HomeSettings().API.Port,
	}

	if s.HomeSettings().Poller.Enabled {
		ttl, err := time.ParseDuration(s.HomeSettings().Poller.TTL)
		if err != nil {
			return errors.Wrap(err, "poller ttl parse failed")
		}
		p, err := poller.NewPoller(&poller.ConstructPoller{
			Sockets:  s.NetworkSockets(),
			Cron:     s.Cron(),
			Logger:   s.SystemLogger(),
			Schedule: s.HomeSettings().Poller.Schedule,
			TTL:      ttl,
		})
		if err != nil {
			return err
		}
		defer p.Stop()

		ctor.Readings = p
	}

	srv := server.NewServer(ctor)
	errs := make(chan error, 1)
	go func() {
		errs <- srv.Start()
	}()

	stop := make(chan struct{})
	go func() {
		sc.c.wait()
		close(stop)
	}()

	select {
	case err := <-errs:
		return err
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		return err
	}

	return <-errs
}
