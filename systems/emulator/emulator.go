// Package emulator contains TCP peer which behaves like a remote electrical socket.
package emulator

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"

	"github.com/go-home-io/smarthome/plugins/common"
	"github.com/go-home-io/smarthome/plugins/device/enums"
	"github.com/go-home-io/smarthome/systems/logger"
)

const (
	// Logger system.
	logSystem = "emulator"
	// Matches client response buffer.
	requestBufferSize = 1024
	// ResponseError is returned for unknown requests.
	ResponseError = "ERROR"
)

// Responder overrides default protocol handling.
// Empty response means nothing is sent back.
type Responder func(request string) string

// ConstructEmulator has data required for a new emulator.
type ConstructEmulator struct {
	Address   string
	Power     float64
	On        bool
	Logger    common.ILoggerProvider
	Responder Responder
}

// Emulator is a fake remote socket.
type Emulator struct {
	sync.Mutex

	listener  net.Listener
	logger    common.ILoggerProvider
	responder Responder

	on       bool
	power    float64
	requests []string

	conns  map[net.Conn]struct{}
	closed bool
	wg     sync.WaitGroup
}

// NewEmulator starts listening on the address.
// Use "127.0.0.1:0" for a random port.
func NewEmulator(ctor *ConstructEmulator) (*Emulator, error) {
	address := ctor.Address
	if address == "" {
		address = "127.0.0.1:0"
	}

	l, err := net.Listen("tcp", address)
	if err != nil {
		return nil, err
	}

	log := ctor.Logger
	if nil == log {
		log = logger.NewConsoleLogger(logger.LevelError)
	}

	e := &Emulator{
		listener:  l,
		responder: ctor.Responder,
		on:        ctor.On,
		power:     ctor.Power,
		requests:  make([]string, 0),
		conns:     make(map[net.Conn]struct{}),
		logger: logger.NewComponentLogger(&logger.ConstructComponentLogger{
			SystemLogger: log,
			System:       logSystem,
		}),
	}

	e.wg.Add(1)
	go e.acceptLoop()

	e.logger.Info("Socket emulator is listening", common.LogDeviceHostToken, e.Addr())
	return e, nil
}

// Addr returns actual listening address.
func (e *Emulator) Addr() string {
	return e.listener.Addr().String()
}

// IsOn returns emulated on-off state.
func (e *Emulator) IsOn() bool {
	e.Lock()
	defer e.Unlock()

	return e.on
}

// Requests returns every request received so far.
func (e *Emulator) Requests() []string {
	e.Lock()
	defer e.Unlock()

	out := make([]string, len(e.requests))
	copy(out, e.requests)
	return out
}

// Close stops listener, drops clients and waits for all goroutines.
func (e *Emulator) Close() error {
	e.Lock()
	if e.closed {
		e.Unlock()
		return nil
	}

	e.closed = true
	err := e.listener.Close()
	for c := range e.conns {
		c.Close() // nolint: errcheck, gosec
	}
	e.Unlock()

	e.wg.Wait()
	return err
}

// Handle produces response for a single request using socket semantics.
func (e *Emulator) Handle(request string) string {
	e.Lock()
	defer e.Unlock()

	switch request {
	case enums.CmdOn.WireToken():
		e.on = true
		return "OK:ON"
	case enums.CmdOff.WireToken():
		e.on = false
		return "OK:OFF"
	case enums.CmdToggle.WireToken():
		e.on = !e.on
		return "OK:SWITCH"
	case enums.CmdGetPower.WireToken():
		power := 0.0
		if e.on {
			power = e.power
		}
		return fmt.Sprintf("POWER:%s", strconv.FormatFloat(power, 'f', 1, 64))
	case enums.CmdGetStatus.WireToken():
		if e.on {
			return "STATUS:ON"
		}
		return "STATUS:OFF"
	}

	return ResponseError
}

// Accepts clients until listener is closed.
func (e *Emulator) acceptLoop() {
	defer e.wg.Done()

	for {
		conn, err := e.listener.Accept()
		if err != nil {
			e.Lock()
			closed := e.closed
			e.Unlock()
			if !closed {
				e.logger.Error("Failed to accept connection", err)
			}
			return
		}

		e.Lock()
		if e.closed {
			e.Unlock()
			conn.Close() // nolint: errcheck, gosec
			return
		}
		e.conns[conn] = struct{}{}
		e.wg.Add(1)
		e.Unlock()

		go e.serve(conn)
	}
}

// Serves a single client. One read is one request.
func (e *Emulator) serve(conn net.Conn) {
	defer e.wg.Done()
	defer func() {
		e.Lock()
		delete(e.conns, conn)
		e.Unlock()
		conn.Close() // nolint: errcheck, gosec
	}()

	remote := conn.RemoteAddr().String()
	e.logger.Debug("Client connected", common.LogDeviceHostToken, remote)

	buf := make([]byte, requestBufferSize)
	for {
		n, err := conn.Read(buf)
		if err != nil {
			e.logger.Debug("Client disconnected", common.LogDeviceHostToken, remote)
			return
		}

		request := strings.TrimSpace(string(buf[:n]))
		e.Lock()
		e.requests = append(e.requests, request)
		e.Unlock()

		var response string
		if e.responder != nil {
			response = e.responder(request)
		} else {
			response = e.Handle(request)
		}

		e.logger.Debug("Processed request", common.LogDeviceCommandToken, request,
			common.LogResponseToken, response)
		if response == "" {
			continue
		}

		if _, err := conn.Write([]byte(response)); err != nil {
			e.logger.Warn("Failed to write response", common.LogDeviceHostToken, remote)
			return
		}
	}
}
