package log

import (
	"log"
	"runtime"
)

// Logger is the interface used to log invariant violations raised during node
// construction. It is settable via relayql.Logger.
type Logger interface {
	LogInvariant(err error)
}

// LoggerFunc is a function type that implements the Logger interface.
type LoggerFunc func(err error)

// LogInvariant calls the LoggerFunc with the given error.
func (f LoggerFunc) LogInvariant(err error) {
	f(err)
}

// DefaultLogger is the default logger used to log invariant violations.
type DefaultLogger struct{}

// LogInvariant logs the violation and the stack of the offending construction
// call. It runs before the violation panics, so the diagnostic survives even
// if a recover further up swallows the panic value.
func (l *DefaultLogger) LogInvariant(err error) {
	const size = 64 << 10
	buf := make([]byte, size)
	buf = buf[:runtime.Stack(buf, false)]
	log.Printf("invariant violation: %v\n%s", err, buf)
}
