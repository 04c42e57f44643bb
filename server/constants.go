package server

// muxKeys describes enum with known API tokens.
type muxKeys string

const (
	// urlRoomName describes room key URL param.
	urlRoomName muxKeys = "room"
	// urlDeviceName describes device key URL param.
	urlDeviceName muxKeys = "device"
	// urlCommandName describes device command name URL param.
	urlCommandName muxKeys = "command"
	// routeAPI describes base api prefix.
	routeAPI = "/api/v1"
	// queryMatch describes device key glob query param.
	queryMatch = "match"
)
