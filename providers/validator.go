// Package providers contains interfaces for internal system providers.
package providers

import "github.com/go-home-io/smarthome/plugins/common"

// IValidatorProvider defines yaml structures validator logic.
type IValidatorProvider interface {
	SetLogger(logger common.ILoggerProvider)
	Validate(interface{}) bool
}
