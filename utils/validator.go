package utils

import (
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-home-io/smarthome/plugins/common"
	"github.com/go-home-io/smarthome/plugins/device/enums"
	"github.com/go-home-io/smarthome/providers"
	"gopkg.in/go-playground/validator.v9"
)

// Validator implementation.
type validatorProvider struct {
	sync.Mutex
	validator *validator.Validate
	logger    common.ILoggerProvider
}

// NewValidator constructs a new validator.
func NewValidator(logger common.ILoggerProvider) providers.IValidatorProvider {
	val := &validatorProvider{
		logger: logger,
	}
	v := validator.New()
	loadNewValidator(v, logger, "port", port)
	loadNewValidator(v, logger, "hostport", hostport)
	loadNewValidator(v, logger, "measure", measure)
	loadNewValidator(v, logger, "devtype", devtype)
	loadNewValidator(v, logger, "duration", duration)

	val.validator = v
	return val
}

// SetLogger updates the logger.
// Since logger is loaded after first init, we need to re-assign it.
func (v *validatorProvider) SetLogger(logger common.ILoggerProvider) {
	v.logger = logger
}

// Validate sets default values and performs validation of a config object.
func (v *validatorProvider) Validate(object interface{}) bool {
	v.Lock()
	defer v.Unlock()

	err := defaults.Set(object)

	if err != nil {
		v.logger.Error("Failed to set default field values", err)
		return false
	}

	err = v.validator.Struct(object)
	if err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			v.logger.Error("Failed to validate object", err)
			return false
		}

		for _, e := range errs {
			v.logger.Warn("Validation error", common.LogFieldToken, e.Namespace(), "tag", e.Tag())
		}

		return false
	}
	return true
}

// Port type validation.
func port(fl validator.FieldLevel) bool {
	return isPort(fl.Field().Int())
}

// Host:port type validation. Host could be a name or an IP, port is mandatory.
func hostport(fl validator.FieldLevel) bool {
	host, p, err := net.SplitHostPort(fl.Field().String())
	if err != nil || host == "" {
		return false
	}

	val, err := strconv.Atoi(p)
	if err != nil {
		return false
	}

	return isPort(int64(val))
}

// Temperature measure validation.
func measure(fl validator.FieldLevel) bool {
	_, err := enums.UOMString(fl.Field().String())
	return err == nil
}

// Device type validation.
func devtype(fl validator.FieldLevel) bool {
	t, err := enums.DeviceTypeString(fl.Field().String())
	return err == nil && t != enums.DevUnknown
}

// Go duration validation.
func duration(fl validator.FieldLevel) bool {
	d, err := time.ParseDuration(fl.Field().String())
	return err == nil && d > 0
}

// Validates whether value could be used as a port.
func isPort(val int64) bool {
	return val > 0 && val <= 65535
}

// Attempt to register a new validator
func loadNewValidator(validator *validator.Validate, logger common.ILoggerProvider,
	name string, function validator.Func) {
	if err := validator.RegisterValidation(name, function); err != nil {
		logger.Error("Failed to register validator type", err, "type", name)
	}
}
