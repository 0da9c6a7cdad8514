// Package logger defines the logging interface used for lock-order
// diagnostics. The registry reports declarations at debug level and
// ordering violations at error level before panicking.
package logger

type Logger interface {
	Info(...any)
	Debug(...any)
	Error(...any)
}

type nopLogger struct{}

// NewNop returns a Logger that discards everything. It is the default
// until SetLogger installs a real one.
func NewNop() Logger {
	return nopLogger{}
}

func (nopLogger) Info(...any)  {}
func (nopLogger) Debug(...any) {}
func (nopLogger) Error(...any) {}
