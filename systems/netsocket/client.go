// Package netsocket implements electrical socket controlled over a TCP command protocol.
//
// The socket sends a single command token, waits for a single response and
// updates its cached state only after the peer acknowledged the change.
// Socket is not safe for concurrent use, see Guarded.
package netsocket

import (
	"time"

	"github.com/go-home-io/smarthome/plugins/common"
	"github.com/go-home-io/smarthome/plugins/device/enums"
	"github.com/go-home-io/smarthome/systems/logger"
)

const (
	// Logger system.
	logSystem = "netsocket"

	// DefaultReadTimeout bounds waiting for a response.
	DefaultReadTimeout = 2 * time.Second
	// DefaultWriteTimeout bounds sending a command.
	DefaultWriteTimeout = 2 * time.Second
	// DefaultDialTimeout bounds opening a transport.
	DefaultDialTimeout = 5 * time.Second
)

// ConstructSocket has data required for a new network socket.
type ConstructSocket struct {
	Name         string
	Address      string
	Power        float64
	Logger       common.ILoggerProvider
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	DialTimeout  time.Duration
}

// Socket is a network electrical socket.
type Socket struct {
	name    string
	address string

	readTimeout  time.Duration
	writeTimeout time.Duration
	dialTimeout  time.Duration

	logger common.ILoggerProvider
	conn   connection
	state  cachedState
}

// NewSocket constructs a new disconnected socket.
func NewSocket(ctor *ConstructSocket) *Socket {
	s := &Socket{
		name:         ctor.Name,
		address:      ctor.Address,
		readTimeout:  ctor.ReadTimeout,
		writeTimeout: ctor.WriteTimeout,
		dialTimeout:  ctor.DialTimeout,
		state:        cachedState{power: ctor.Power},
	}

	if s.readTimeout <= 0 {
		s.readTimeout = DefaultReadTimeout
	}

	if s.writeTimeout <= 0 {
		s.writeTimeout = DefaultWriteTimeout
	}

	if s.dialTimeout <= 0 {
		s.dialTimeout = DefaultDialTimeout
	}

	log := ctor.Logger
	if nil == log {
		log = logger.NewConsoleLogger(logger.LevelError)
	}

	s.logger = logger.NewComponentLogger(&logger.ConstructComponentLogger{
		SystemLogger: log,
		System:       logSystem,
		ExtraFields: map[string]string{
			common.LogDeviceNameToken: ctor.Name,
			common.LogDeviceHostToken: ctor.Address,
		},
	})

	return s
}

// GetName returns socket name.
func (s *Socket) GetName() string {
	return s.name
}

// GetAddress returns peer address.
func (s *Socket) GetAddress() string {
	return s.address
}

// IsOn returns confirmed on-off state.
func (s *Socket) IsOn() bool {
	return s.state.on
}

// GetPower returns nominal power if socket is on, zero otherwise.
func (s *Socket) GetPower() float64 {
	return s.state.observedPower()
}

// GetNominalPower returns last confirmed nominal power regardless of on-off state.
func (s *Socket) GetNominalPower() float64 {
	return s.state.power
}

// AvailableCommands returns every command the socket understands.
func (s *Socket) AvailableCommands() []enums.Command {
	return enums.AllCommands()
}

// ConnectionState returns current connection state.
func (s *Socket) ConnectionState() ConnectionState {
	return s.conn.state
}

// IsConnected checks whether transport is open.
func (s *Socket) IsConnected() bool {
	return s.conn.state == StateConnected
}

// Connect opens transport to the socket address.
func (s *Socket) Connect() error {
	if s.IsConnected() {
		return &ErrAlreadyConnected{Address: s.address}
	}

	s.logger.Debug("Connecting to the socket")
	if err := s.conn.open(s.address, s.dialTimeout); err != nil {
		s.logger.Warn("Failed to connect to the socket", common.LogErrorToken, err.Error())
		return err
	}

	s.logger.Info("Connected to the socket")
	return nil
}

// Disconnect drops transport. Never fails, could be called multiple times.
func (s *Socket) Disconnect() {
	if s.IsConnected() {
		s.logger.Debug("Disconnecting from the socket")
	}

	s.conn.close()
}

// SendCommand sends command and waits for the response.
// Cached state is updated only if response is accepted.
func (s *Socket) SendCommand(cmd enums.Command) (string, error) {
	if !s.IsConnected() {
		return "", &ErrNotConnected{Name: s.name}
	}

	raw, err := s.conn.exchange(cmd, s.readTimeout, s.writeTimeout)
	if err != nil {
		s.logger.Warn("Failed to exchange command", common.LogDeviceCommandToken, cmd.String(),
			common.LogErrorToken, err.Error())
		return "", err
	}

	response, err := ValidateResponse(cmd, raw)
	if err != nil {
		s.logger.Warn("Socket returned unexpected response", common.LogDeviceCommandToken, cmd.String(),
			common.LogResponseToken, raw)
		return "", err
	}

	if !s.state.apply(cmd, response) {
		s.logger.Debug("Accepted response didn't change the state", common.LogDeviceCommandToken, cmd.String(),
			common.LogResponseToken, response)
	}

	return response, nil
}

// On turns socket on.
func (s *Socket) On() error {
	_, err := s.SendCommand(enums.CmdOn)
	return err
}

// Off turns socket off.
func (s *Socket) Off() error {
	_, err := s.SendCommand(enums.CmdOff)
	return err
}

// Toggle switches socket state.
func (s *Socket) Toggle() error {
	_, err := s.SendCommand(enums.CmdToggle)
	return err
}

// UpdatePower requests power reading and returns nominal power known after it.
func (s *Socket) UpdatePower() (float64, error) {
	if _, err := s.SendCommand(enums.CmdGetPower); err != nil {
		return s.state.power, err
	}

	return s.state.power, nil
}

// UpdateStatus requests on-off status and returns state known after it.
func (s *Socket) UpdateStatus() (bool, error) {
	if _, err := s.SendCommand(enums.CmdGetStatus); err != nil {
		return s.state.on, err
	}

	return s.state.on, nil
}
