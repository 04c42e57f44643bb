package logger

import (
	"github.com/go-home-io/smarthome/plugins/common"
)

// Component logger implementation.
type componentLogger struct {
	systemLogger common.ILoggerProvider
	fields       []string
}

// ConstructComponentLogger has data required for a new component logger.
type ConstructComponentLogger struct {
	SystemLogger common.ILoggerProvider
	System       string
	Provider     string
	ExtraFields  map[string]string
}

// NewComponentLogger constructs a new component logger.
// This is another level of abstraction which adds system type
// and provider name to the actual logger.
func NewComponentLogger(ctor *ConstructComponentLogger) common.ILoggerProvider {
	fields := []string{common.LogSystemToken, ctor.System}
	if ctor.Provider != "" {
		fields = append(fields, common.LogProviderToken, ctor.Provider)
	}

	for k, v := range ctor.ExtraFields {
		fields = append(fields, k, v)
	}

	return &componentLogger{
		systemLogger: ctor.SystemLogger,
		fields:       fields,
	}
}

// Debug sends debug level message.
func (l *componentLogger) Debug(msg string, fields ...string) {
	l.systemLogger.Debug(msg, append(fields, l.fields...)...)
}

// Info sends info level message.
func (l *componentLogger) Info(msg string, fields ...string) {
	l.systemLogger.Info(msg, append(fields, l.fields...)...)
}

// Warn sends warning level message.
func (l *componentLogger) Warn(msg string, fields ...string) {
	l.systemLogger.Warn(msg, append(fields, l.fields...)...)
}

// Error sends error level message.
func (l *componentLogger) Error(msg string, err error, fields ...string) {
	l.systemLogger.Error(msg, err, append(fields, l.fields...)...)
}

// Fatal sends fatal level message and exits.
func (l *componentLogger) Fatal(msg string, err error, fields ...string) {
	l.systemLogger.Fatal(msg, err, append(fields, l.fields...)...)
}

// Flush flushes logger buffer if any.
func (l *componentLogger) Flush() {
	l.systemLogger.Flush()
}
