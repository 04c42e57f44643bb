//+build !release

// Package mocks contains fake providers used in tests.
package mocks

import (
	"sync"
)

// LogEntry describes a single captured log record.
type LogEntry struct {
	Level   string
	Message string
	Err     error
	Fields  map[string]string
}

// FakeLogger is a logger which captures records.
type FakeLogger struct {
	sync.Mutex

	callback func(string)
	entries  []*LogEntry
}

// Debug captures debug level message.
func (p *FakeLogger) Debug(msg string, fields ...string) {
	p.record("debug", msg, nil, fields)
}

// Info captures info level message.
func (p *FakeLogger) Info(msg string, fields ...string) {
	p.record("info", msg, nil, fields)
}

// Warn captures warning level message.
func (p *FakeLogger) Warn(msg string, fields ...string) {
	p.record("warn", msg, nil, fields)
}

// Error captures error level message.
func (p *FakeLogger) Error(msg string, err error, fields ...string) {
	p.record("error", msg, err, fields)
}

// Fatal captures fatal level message. It doesn't exit.
func (p *FakeLogger) Fatal(msg string, err error, fields ...string) {
	p.record("fatal", msg, err, fields)
}

// Flush does nothing.
func (p *FakeLogger) Flush() {
}

// Entries returns captured records.
func (p *FakeLogger) Entries() []*LogEntry {
	p.Lock()
	defer p.Unlock()

	out := make([]*LogEntry, len(p.entries))
	copy(out, p.entries)
	return out
}

// HasMessage checks whether message was logged with the level.
func (p *FakeLogger) HasMessage(level string, msg string) bool {
	for _, v := range p.Entries() {
		if v.Level == level && v.Message == msg {
			return true
		}
	}

	return false
}

func (p *FakeLogger) record(level string, msg string, err error, fields []string) {
	f := make(map[string]string)
	for ii := 0; ii+1 < len(fields); ii += 2 {
		f[fields[ii]] = fields[ii+1]
	}

	p.Lock()
	p.entries = append(p.entries, &LogEntry{Level: level, Message: msg, Err: err, Fields: f})
	p.Unlock()

	if p.callback != nil {
		p.callback(msg)
	}
}

// FakeNewLogger creates a fake logger provider.
func FakeNewLogger(callback func(string)) *FakeLogger {
	return &FakeLogger{
		callback: callback,
		entries:  make([]*LogEntry, 0),
	}
}
