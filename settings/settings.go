package settings

import (
	"github.com/go-home-io/smarthome/plugins/common"
	"github.com/go-home-io/smarthome/providers"
	"github.com/go-home-io/smarthome/systems/home"
	"github.com/go-home-io/smarthome/systems/netsocket"
)

// SystemLogger returns default system logger.
func (s *settingsProvider) SystemLogger() common.ILoggerProvider {
	return s.logger
}

// Cron returns system's cron provider.
func (s *settingsProvider) Cron() providers.ICronProvider {
	return s.cron
}

// Validator returns yaml validator provider.
func (s *settingsProvider) Validator() providers.IValidatorProvider {
	return s.validator
}

// HomeSettings returns loaded home settings.
func (s *settingsProvider) HomeSettings() *providers.HomeSettings {
	return s.homeSettings
}

// Home returns home built from settings.
func (s *settingsProvider) Home() *home.Home {
	return s.home
}

// NetworkSockets returns every configured network socket.
func (s *settingsProvider) NetworkSockets() []*netsocket.Guarded {
	return s.sockets
}
