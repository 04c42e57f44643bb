package server

import (
	"net/http"

	"github.com/go-home-io/smarthome/plugins/common"
	"github.com/go-home-io/smarthome/plugins/device/enums"
	"github.com/go-home-io/smarthome/systems/home"
	"github.com/go-home-io/smarthome/systems/netsocket"
	"github.com/go-home-io/smarthome/systems/poller"
	"github.com/gorilla/mux"
)

// Room description.
type roomResponse struct {
	Key     string   `json:"key"`
	Name    string   `json:"name"`
	Devices []string `json:"devices"`
}

// Device state with last polled reading.
type deviceResponse struct {
	*common.DeviceState
	Reading *poller.Reading `json:"reading,omitempty"`
}

// Executed command result.
type commandResponse struct {
	Response string              `json:"response"`
	State    *common.DeviceState `json:"state"`
}

// Responds with text report of the whole home.
func (s *SmartHomeServer) getReport(writer http.ResponseWriter, _ *http.Request) {
	respondText(writer, s.Home.Report())
}

// Responds with known rooms.
func (s *SmartHomeServer) getRooms(writer http.ResponseWriter, _ *http.Request) {
	rooms := make([]*roomResponse, 0)
	for _, k := range s.Home.Keys() {
		r, ok := s.Home.GetRoom(k)
		if !ok {
			continue
		}

		rooms = append(rooms, &roomResponse{Key: k, Name: r.GetName(), Devices: r.Keys()})
	}

	respond(writer, rooms)
}

// Responds with states of room devices.
// Optional match query narrows devices by key glob.
func (s *SmartHomeServer) getDevices(writer http.ResponseWriter, request *http.Request) {
	name := mux.Vars(request)[string(urlRoomName)]
	r, ok := s.Home.GetRoom(name)
	if !ok {
		s.respondDeviceError(writer, &home.ErrRoomNotFound{Name: name})
		return
	}

	pattern := request.URL.Query().Get(queryMatch)
	if pattern == "" {
		pattern = "*"
	}

	found, err := r.FindDevices(pattern)
	if err != nil {
		s.respondDeviceError(writer, &ErrWrongPattern{Pattern: pattern})
		return
	}

	devices := make([]*common.DeviceState, 0)
	for _, v := range found {
		devices = append(devices, v.State())
	}

	respond(writer, devices)
}

// Responds with device state.
func (s *SmartHomeServer) getDevice(writer http.ResponseWriter, request *http.Request) {
	vars := mux.Vars(request)
	d, err := s.Home.GetDeviceFromRoom(vars[string(urlRoomName)], vars[string(urlDeviceName)])
	if err != nil {
		s.respondDeviceError(writer, err)
		return
	}

	resp := &deviceResponse{DeviceState: d.State()}
	if s.Readings != nil && d.Type == enums.DevNetSocket {
		if r, ok := s.Readings.Reading(d.GetName()); ok {
			resp.Reading = r
		}
	}

	respond(writer, resp)
}

// Executes device command.
func (s *SmartHomeServer) deviceCommand(writer http.ResponseWriter, request *http.Request) {
	vars := mux.Vars(request)
	d, err := s.Home.GetDeviceFromRoom(vars[string(urlRoomName)], vars[string(urlDeviceName)])
	if err != nil {
		s.respondDeviceError(writer, err)
		return
	}

	cmd, err := enums.CommandString(vars[string(urlCommandName)])
	if err != nil {
		s.respondDeviceError(writer, &ErrUnknownCommand{Name: vars[string(urlCommandName)]})
		return
	}

	response, err := d.InvokeCommand(cmd)
	if err != nil {
		s.Logger.Warn("Failed to invoke device command", common.LogDeviceNameToken, d.GetName(),
			common.LogDeviceCommandToken, cmd.String(), common.LogErrorToken, err.Error())
		s.respondDeviceError(writer, err)
		return
	}

	respond(writer, &commandResponse{Response: response, State: d.State()})
}

// Maps device errors to HTTP statuses.
func (s *SmartHomeServer) respondDeviceError(writer http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch err.(type) {
	case *home.ErrRoomNotFound, *home.ErrDeviceNotFound, *ErrUnknownCommand:
		status = http.StatusNotFound
	case *home.ErrUnsupportedCommand, *ErrWrongPattern:
		status = http.StatusBadRequest
	case *netsocket.ErrNotConnected, *netsocket.ErrConnection, *netsocket.ErrProtocol,
		*netsocket.ErrTimeout, *netsocket.ErrIO:
		status = http.StatusBadGateway
	}

	respondError(writer, status, err.Error())
}
