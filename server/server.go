// Package server contains smart home HTTP API.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-home-io/smarthome/plugins/common"
	"github.com/go-home-io/smarthome/systems/home"
	"github.com/go-home-io/smarthome/systems/logger"
	"github.com/go-home-io/smarthome/systems/poller"
	"github.com/gorilla/mux"
)

const (
	// Logger system representation.
	logSystem = "server"
)

// IReadingsProvider defines source of last polled socket readings.
type IReadingsProvider interface {
	Reading(name string) (*poller.Reading, bool)
}

// ConstructServer has data required for a new server.
type ConstructServer struct {
	Home     *home.Home
	Logger   common.ILoggerProvider
	Readings IReadingsProvider
	Host     string
	Port     int
}

// SmartHomeServer serves home API.
type SmartHomeServer struct {
	Home     *home.Home
	Logger   common.ILoggerProvider
	Readings IReadingsProvider

	address    string
	httpServer *http.Server
}

// NewServer constructs a new API server.
func NewServer(ctor *ConstructServer) *SmartHomeServer {
	s := &SmartHomeServer{
		Home:     ctor.Home,
		Readings: ctor.Readings,
		address:  fmt.Sprintf("%s:%d", ctor.Host, ctor.Port),
		Logger: logger.NewComponentLogger(&logger.ConstructComponentLogger{
			SystemLogger: ctor.Logger,
			System:       logSystem,
		}),
	}

	s.httpServer = &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	return s
}

// Router returns router with all API registered.
func (s *SmartHomeServer) Router() *mux.Router {
	router := mux.NewRouter()
	s.registerAPI(router)
	return router
}

// Start serves API until Stop is called.
func (s *SmartHomeServer) Start() error {
	s.Logger.Info("Starting server", common.LogURLToken, s.address)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}

	return err
}

// Stop gracefully shuts the server down.
func (s *SmartHomeServer) Stop(ctx context.Context) error {
	s.Logger.Info("Stopping server")
	return s.httpServer.Shutdown(ctx)
}

// All API registration.
func (s *SmartHomeServer) registerAPI(router *mux.Router) {
	publicRouter := router.PathPrefix("/pub").Subrouter()
	publicRouter.HandleFunc("/ping", s.ping).Methods(http.MethodGet)

	apiRouter := router.PathPrefix(routeAPI).Subrouter()
	apiRouter.HandleFunc("/report", s.getReport).Methods(http.MethodGet)
	apiRouter.HandleFunc("/rooms", s.getRooms).Methods(http.MethodGet)
	apiRouter.HandleFunc(fmt.Sprintf("/rooms/{%s}/devices", urlRoomName), s.getDevices).Methods(http.MethodGet)
	apiRouter.HandleFunc(fmt.Sprintf("/rooms/{%s}/devices/{%s}", urlRoomName, urlDeviceName),
		s.getDevice).Methods(http.MethodGet)
	apiRouter.HandleFunc(fmt.Sprintf("/rooms/{%s}/devices/{%s}/{%s}", urlRoomName, urlDeviceName, urlCommandName),
		s.deviceCommand).Methods(http.MethodPost)
	apiRouter.Use(s.logMiddleware)
}

// Performs quick check whether server is up.
func (s *SmartHomeServer) ping(writer http.ResponseWriter, _ *http.Request) {
	respondOk(writer)
}
