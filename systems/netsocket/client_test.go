package netsocket

import (
	"net"
	"sync"
	"testing"
	"time"

	"github.com/fortytw2/leaktest"
	"github.com/go-home-io/smarthome/mocks"
	"github.com/go-home-io/smarthome/plugins/device"
	"github.com/go-home-io/smarthome/plugins/device/enums"
	"github.com/go-home-io/smarthome/systems/emulator"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var (
	_ device.ISwitch      = (*Socket)(nil)
	_ device.IConnectable = (*Socket)(nil)
	_ device.ISwitch      = (*Guarded)(nil)
	_ device.IConnectable = (*Guarded)(nil)
)

// Creates socket pointing to the address.
func newTestSocket(address string) *Socket {
	return NewSocket(&ConstructSocket{
		Name:        "TestSocket",
		Address:     address,
		Power:       220.0,
		Logger:      mocks.FakeNewLogger(nil),
		ReadTimeout: 500 * time.Millisecond,
	})
}

// Returns address nobody listens on.
func closedAddress(t *testing.T) string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

// Tests new socket defaults.
func TestNewSocket(t *testing.T) {
	s := NewSocket(&ConstructSocket{Name: "TestSocket", Address: "127.0.0.1:9999", Power: 220})

	assert.Equal(t, "TestSocket", s.GetName())
	assert.Equal(t, "127.0.0.1:9999", s.GetAddress())
	assert.False(t, s.IsOn())
	assert.False(t, s.IsConnected())
	assert.Equal(t, StateDisconnected, s.ConnectionState())
	assert.Equal(t, 0.0, s.GetPower())
	assert.Equal(t, 220.0, s.GetNominalPower())
	assert.Equal(t, DefaultReadTimeout, s.readTimeout)
	assert.Equal(t, DefaultWriteTimeout, s.writeTimeout)
	assert.Len(t, s.AvailableCommands(), 5)
}

// Tests malformed address.
func TestConnectInvalidPort(t *testing.T) {
	s := newTestSocket("127.0.0.1:99999")

	err := s.Connect()
	require.Error(t, err)
	assert.IsType(t, &ErrConnection{}, err)
	assert.False(t, s.IsConnected())
}

// Tests unreachable address.
func TestConnectUnreachable(t *testing.T) {
	s := newTestSocket(closedAddress(t))

	err := s.Connect()
	require.Error(t, err)
	e, ok := err.(*ErrConnection)
	require.True(t, ok)
	assert.Equal(t, s.GetAddress(), e.Address)
	assert.NotNil(t, errors.Cause(err))
	assert.False(t, s.IsConnected())
}

// Tests commands without connection.
func TestSendNotConnected(t *testing.T) {
	s := newTestSocket(closedAddress(t))

	for _, v := range enums.AllCommands() {
		resp, err := s.SendCommand(v)
		assert.Equal(t, "", resp)
		assert.IsType(t, &ErrNotConnected{}, err, v.String())
	}

	assert.IsType(t, &ErrNotConnected{}, s.On())
	assert.IsType(t, &ErrNotConnected{}, s.Off())
	assert.IsType(t, &ErrNotConnected{}, s.Toggle())
	assert.False(t, s.IsOn())
}

// Tests disconnect idempotence.
func TestDisconnectTwice(t *testing.T) {
	s := newTestSocket(closedAddress(t))

	s.Disconnect()
	assert.False(t, s.IsConnected())
	s.Disconnect()
	assert.False(t, s.IsConnected())
}

// Tests peer closing connection without response.
func TestPeerClosed(t *testing.T) {
	defer leaktest.Check(t)()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close() // nolint: errcheck

	done := make(chan struct{})
	go func() {
		defer close(done)
		conn, err := l.Accept()
		if err != nil {
			return
		}
		buf := make([]byte, 1024)
		conn.Read(buf) // nolint: errcheck, gosec
		conn.Close()   // nolint: errcheck, gosec
	}()

	s := newTestSocket(l.Addr().String())
	require.NoError(t, s.Connect())

	_, err = s.SendCommand(enums.CmdOn)
	<-done
	require.Error(t, err)
	assert.IsType(t, &ErrIO{}, err)
	assert.False(t, s.IsOn())
	assert.True(t, s.IsConnected())
	s.Disconnect()
}

// Starts a peer which records raw requests of a single connection and replies with the fixed bytes.
func startRawPeer(t *testing.T, reply []byte) (string, <-chan []byte, func()) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	requests := make(chan []byte, 10)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer close(requests)
		conn, err := l.Accept()
		if err != nil {
			return
		}
		defer conn.Close() // nolint: errcheck

		for {
			buf := make([]byte, 1024)
			n, err := conn.Read(buf)
			if err != nil {
				return
			}
			requests <- buf[:n]
			if _, err := conn.Write(reply); err != nil {
				return
			}
		}
	}()

	return l.Addr().String(), requests, func() {
		l.Close() // nolint: errcheck, gosec
		<-done
	}
}

// Tests that commands are sent as bare tokens without delimiters.
func TestWireTokens(t *testing.T) {
	defer leaktest.Check(t)()

	data := []struct {
		cmd   enums.Command
		reply string
		wire  string
	}{
		{enums.CmdOn, "OK:ON", "ON"},
		{enums.CmdOff, "OK:OFF", "OFF"},
		{enums.CmdToggle, "OK:SWITCH", "SWITCH"},
		{enums.CmdGetPower, "POWER:10", "GET_POWER"},
		{enums.CmdGetStatus, "STATUS:ON", "GET_STATUS"},
	}

	for _, v := range data {
		addr, requests, stop := startRawPeer(t, []byte(v.reply))
		s := newTestSocket(addr)
		require.NoError(t, s.Connect())

		resp, err := s.SendCommand(v.cmd)
		require.NoError(t, err, v.wire)
		assert.Equal(t, v.reply, resp)
		assert.Equal(t, []byte(v.wire), <-requests)

		s.Disconnect()
		stop()
	}
}

// Tests that invalid UTF-8 in a response is replaced, not rejected.
func TestInvalidUTF8Response(t *testing.T) {
	defer leaktest.Check(t)()

	addr, requests, stop := startRawPeer(t, []byte("OK:\xff\xfeON"))
	defer stop()

	s := newTestSocket(addr)
	require.NoError(t, s.Connect())
	defer s.Disconnect()

	resp, err := s.SendCommand(enums.CmdOn)
	require.NoError(t, err)
	assert.Equal(t, "OK:\uFFFD\uFFFDON", resp)
	assert.Equal(t, []byte("ON"), <-requests)
	assert.False(t, s.IsOn(), "only exact acknowledgement is committed")
}

// Tests lossy decoding.
func TestDecodeLossy(t *testing.T) {
	assert.Equal(t, "OK:ON", decodeLossy([]byte("OK:ON")))
	assert.Equal(t, "POWER:\uFFFD1", decodeLossy([]byte("POWER:\x801")))
	assert.Equal(t, "\uFFFD\uFFFD", decodeLossy([]byte{0xff, 0xfe}))
	assert.Equal(t, "°C", decodeLossy([]byte("°C")))
	assert.Equal(t, "", decodeLossy(nil))
}

type clientSuite struct {
	suite.Suite

	emu      *emulator.Emulator
	response string
	socket   *Socket
}

// Starts emulator which replies with fixed response when it's set.
func (c *clientSuite) SetupTest() {
	c.response = ""
	var err error
	c.emu, err = emulator.NewEmulator(&emulator.ConstructEmulator{
		Power:  220,
		Logger: mocks.FakeNewLogger(nil),
	})
	require.NoError(c.T(), err)
	c.socket = newTestSocket(c.emu.Addr())
	require.NoError(c.T(), c.socket.Connect())
}

func (c *clientSuite) TearDownTest() {
	c.socket.Disconnect()
	assert.NoError(c.T(), c.emu.Close())
}

// Restarts emulator with a fixed responder.
func (c *clientSuite) respondWith(response string) {
	c.socket.Disconnect()
	require.NoError(c.T(), c.emu.Close())

	var err error
	c.emu, err = emulator.NewEmulator(&emulator.ConstructEmulator{
		Logger:    mocks.FakeNewLogger(nil),
		Responder: func(string) string { return response },
	})
	require.NoError(c.T(), err)

	c.socket = newTestSocket(c.emu.Addr())
	require.NoError(c.T(), c.socket.Connect())
}

// Tests turning on.
func (c *clientSuite) TestTurnOn() {
	resp, err := c.socket.SendCommand(enums.CmdOn)
	require.NoError(c.T(), err)
	assert.Equal(c.T(), "OK:ON", resp)
	assert.True(c.T(), c.socket.IsOn())
	assert.Equal(c.T(), 220.0, c.socket.GetPower())
	assert.Equal(c.T(), []string{"ON"}, c.emu.Requests())
}

// Tests convenience helpers.
func (c *clientSuite) TestHelpers() {
	require.NoError(c.T(), c.socket.On())
	assert.True(c.T(), c.socket.IsOn())

	require.NoError(c.T(), c.socket.Off())
	assert.False(c.T(), c.socket.IsOn())

	require.NoError(c.T(), c.socket.Toggle())
	assert.True(c.T(), c.socket.IsOn())

	require.NoError(c.T(), c.socket.Toggle())
	assert.False(c.T(), c.socket.IsOn())
	assert.Equal(c.T(), []string{"ON", "OFF", "SWITCH", "SWITCH"}, c.emu.Requests())
}

// Tests status and power refresh.
func (c *clientSuite) TestUpdates() {
	require.NoError(c.T(), c.socket.On())

	on, err := c.socket.UpdateStatus()
	require.NoError(c.T(), err)
	assert.True(c.T(), on)

	power, err := c.socket.UpdatePower()
	require.NoError(c.T(), err)
	assert.Equal(c.T(), 220.0, power)
}

// Tests rejected response.
func (c *clientSuite) TestProtocolError() {
	c.respondWith("NOPE")

	resp, err := c.socket.SendCommand(enums.CmdOn)
	require.Error(c.T(), err)
	assert.Equal(c.T(), "", resp)
	e, ok := err.(*ErrProtocol)
	require.True(c.T(), ok)
	assert.Equal(c.T(), "NOPE", e.Response)
	assert.Equal(c.T(), enums.CmdOn, e.Command)
	assert.False(c.T(), c.socket.IsOn())
	assert.True(c.T(), c.socket.IsConnected())
}

// Tests that non-numeric power is accepted but ignored.
// Peer error might be hidden this way, behaviour is kept on purpose.
func (c *clientSuite) TestNonNumericPower() {
	c.respondWith("POWER:abc")

	resp, err := c.socket.SendCommand(enums.CmdGetPower)
	require.NoError(c.T(), err)
	assert.Equal(c.T(), "POWER:abc", resp)
	assert.Equal(c.T(), 220.0, c.socket.GetNominalPower())
}

// Tests that numeric power is committed.
func (c *clientSuite) TestNumericPower() {
	c.respondWith("POWER:100.5")

	power, err := c.socket.UpdatePower()
	require.NoError(c.T(), err)
	assert.Equal(c.T(), 100.5, power)
	assert.Equal(c.T(), 0.0, c.socket.GetPower(), "still off")
}

// Tests that unknown status is accepted but ignored.
func (c *clientSuite) TestUnknownStatus() {
	c.respondWith("STATUS:BROKEN")

	resp, err := c.socket.SendCommand(enums.CmdGetStatus)
	require.NoError(c.T(), err)
	assert.Equal(c.T(), "STATUS:BROKEN", resp)
	assert.False(c.T(), c.socket.IsOn())
}

// Tests accepted but not committed acknowledgement.
func (c *clientSuite) TestAcceptedNotCommitted() {
	c.respondWith("OK:LATER")

	require.NoError(c.T(), c.socket.On())
	assert.False(c.T(), c.socket.IsOn())
}

// Tests read timeout.
func (c *clientSuite) TestTimeout() {
	c.respondWith("")

	_, err := c.socket.SendCommand(enums.CmdOn)
	require.Error(c.T(), err)
	e, ok := err.(*ErrTimeout)
	require.True(c.T(), ok)
	assert.Equal(c.T(), "read", e.Op)
	assert.False(c.T(), c.socket.IsOn())
	assert.True(c.T(), c.socket.IsConnected(), "timeout keeps connection")
}

// Tests connect while connected.
func (c *clientSuite) TestAlreadyConnected() {
	err := c.socket.Connect()
	require.Error(c.T(), err)
	assert.IsType(c.T(), &ErrAlreadyConnected{}, err)
	assert.True(c.T(), c.socket.IsConnected())
}

// Tests that reconnecting keeps cached state.
func (c *clientSuite) TestReconnectKeepsState() {
	require.NoError(c.T(), c.socket.On())

	c.socket.Disconnect()
	assert.False(c.T(), c.socket.IsConnected())
	assert.True(c.T(), c.socket.IsOn())

	require.NoError(c.T(), c.socket.Connect())
	assert.True(c.T(), c.socket.IsOn())
	assert.Equal(c.T(), 220.0, c.socket.GetPower())
}

// Tests that guarded socket serializes concurrent callers.
func (c *clientSuite) TestGuardedConcurrent() {
	g := NewGuarded(c.socket)

	wg := sync.WaitGroup{}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(c.T(), g.Toggle())
		}()
	}
	wg.Wait()

	assert.False(c.T(), g.IsOn(), "even number of toggles")
	assert.Equal(c.T(), c.emu.IsOn(), g.IsOn())
	assert.Len(c.T(), c.emu.Requests(), 10)
}

// Tests guarded refresh.
func (c *clientSuite) TestGuardedRefresh() {
	g := NewGuarded(c.socket)
	require.NoError(c.T(), g.On())

	on, power, err := g.Refresh()
	require.NoError(c.T(), err)
	assert.True(c.T(), on)
	assert.Equal(c.T(), 220.0, power)
	assert.Equal(c.T(), []string{"ON", "GET_STATUS", "GET_POWER"}, c.emu.Requests())
}

// Tests socket client against emulated peer.
func TestClient(t *testing.T) {
	suite.Run(t, new(clientSuite))
}
