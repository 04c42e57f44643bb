// Package logger provides go-home style console logging.
package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/go-home-io/smarthome/plugins/common"
)

// Level describes logging level.
type Level int

const (
	// LevelDebug describes debug level.
	LevelDebug Level = iota
	// LevelInfo describes info level.
	LevelInfo
	// LevelWarn describes warning level.
	LevelWarn
	// LevelError describes error level.
	LevelError
)

// ParseLevel converts string into logging level.
// Unknown values are treated as info.
func ParseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Default console logger.
type consoleLogger struct {
	sync.Mutex

	level Level
	out   io.Writer
	exit  func(int)
}

// Debug prints debug level message.
func (p *consoleLogger) Debug(msg string, fields ...string) {
	if p.level > LevelDebug {
		return
	}
	p.output(msg, withFields(fields...), color.FgCyan)
}

// Info prints info level message.
func (p *consoleLogger) Info(msg string, fields ...string) {
	if p.level > LevelInfo {
		return
	}
	p.output(msg, withFields(fields...), color.FgGreen)
}

// Warn prints warning level message.
func (p *consoleLogger) Warn(msg string, fields ...string) {
	if p.level > LevelWarn {
		return
	}
	p.output(msg, withFields(fields...), color.FgYellow)
}

// Error prints error level message.
func (p *consoleLogger) Error(msg string, err error, fields ...string) {
	fields = append(fields, common.LogErrorToken, errorText(err))
	p.output(msg, withFields(fields...), color.FgRed)
}

// Fatal prints fatal level message and exits.
func (p *consoleLogger) Fatal(msg string, err error, fields ...string) {
	fields = append(fields, common.LogErrorToken, errorText(err))
	p.output(msg, withFields(fields...), color.FgRed)
	p.exit(1)
}

// Flush isn't needed for a console logger.
func (p *consoleLogger) Flush() {
}

// NewConsoleLogger constructs a new console logger writing to stderr.
func NewConsoleLogger(level Level) common.ILoggerProvider {
	return &consoleLogger{
		level: level,
		out:   color.Error,
		exit:  os.Exit,
	}
}

// Helper method to add generic fields to the output.
func withFields(fields ...string) map[string]string {
	fLen := len(fields)
	result := make(map[string]string, int(fLen/2))
	for ii := 0; ii < fLen; ii += 2 {
		if ii+1 >= fLen {
			break
		}

		result[fields[ii]] = fields[ii+1]
	}

	return result
}

// Returns error message, nil-safe.
func errorText(err error) string {
	if err == nil {
		return "<nil>"
	}

	return err.Error()
}

// Prepares final string.
func format(msg string, fields map[string]string) string {
	newM := fmt.Sprintf("%s   %s", time.Now().Local().Format(time.StampMilli), msg)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		newM = fmt.Sprintf("%s\n          %s: %s", newM, k, fields[k])
	}

	return newM
}

// Outputs final string.
func (p *consoleLogger) output(msg string, fields map[string]string, c color.Attribute) {
	p.Lock()
	defer p.Unlock()

	msgC := color.New(c)
	//noinspection GoUnhandledErrorResult
	msgC.Fprintln(p.out, format(msg, fields)) // nolint: gosec
}
