package netsocket

import (
	"sync"

	"github.com/go-home-io/smarthome/plugins/device/enums"
)

// Guarded serializes access to a socket shared between callers.
// Only one command is in flight at a time.
type Guarded struct {
	sync.Mutex
	socket *Socket
}

// NewGuarded wraps socket.
func NewGuarded(socket *Socket) *Guarded {
	return &Guarded{socket: socket}
}

// GetName returns socket name.
func (g *Guarded) GetName() string {
	return g.socket.GetName()
}

// GetAddress returns peer address.
func (g *Guarded) GetAddress() string {
	return g.socket.GetAddress()
}

// IsOn returns confirmed on-off state.
func (g *Guarded) IsOn() bool {
	g.Lock()
	defer g.Unlock()

	return g.socket.IsOn()
}

// GetPower returns power if socket is on.
func (g *Guarded) GetPower() float64 {
	g.Lock()
	defer g.Unlock()

	return g.socket.GetPower()
}

// IsConnected checks whether transport is open.
func (g *Guarded) IsConnected() bool {
	g.Lock()
	defer g.Unlock()

	return g.socket.IsConnected()
}

// Connect opens transport.
func (g *Guarded) Connect() error {
	g.Lock()
	defer g.Unlock()

	return g.socket.Connect()
}

// Disconnect drops transport.
func (g *Guarded) Disconnect() {
	g.Lock()
	defer g.Unlock()

	g.socket.Disconnect()
}

// SendCommand sends command holding the lock for the whole exchange.
func (g *Guarded) SendCommand(cmd enums.Command) (string, error) {
	g.Lock()
	defer g.Unlock()

	return g.socket.SendCommand(cmd)
}

// On turns socket on.
func (g *Guarded) On() error {
	_, err := g.SendCommand(enums.CmdOn)
	return err
}

// Off turns socket off.
func (g *Guarded) Off() error {
	_, err := g.SendCommand(enums.CmdOff)
	return err
}

// Toggle switches socket state.
func (g *Guarded) Toggle() error {
	_, err := g.SendCommand(enums.CmdToggle)
	return err
}

// Refresh requests status and power in one critical section.
// Returns the first failure, later commands are not sent after it.
func (g *Guarded) Refresh() (on bool, power float64, err error) {
	g.Lock()
	defer g.Unlock()

	if on, err = g.socket.UpdateStatus(); err != nil {
		return on, g.socket.GetPower(), err
	}

	if _, err = g.socket.UpdatePower(); err != nil {
		return on, g.socket.GetPower(), err
	}

	return g.socket.IsOn(), g.socket.GetPower(), nil
}
