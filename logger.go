package haclient

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the host-supplied four-level sink the core calls. The host's
// logging stack is out of scope (spec §1); the core only ever calls this
// narrow interface.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// zerologLogger adapts zerolog to Logger and is used whenever a host does
// not supply its own implementation, so the module is directly useful
// without forcing every caller to write an adapter.
type zerologLogger struct {
	l zerolog.Logger
}

// NewDefaultLogger returns a console-friendly zerolog-backed Logger.
func NewDefaultLogger() Logger {
	return &zerologLogger{l: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()}
}

func fieldsFrom(args []any) map[string]any {
	if len(args) == 0 {
		return nil
	}
	m := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		if key, ok := args[i].(string); ok {
			m[key] = args[i+1]
		}
	}
	return m
}

func (z *zerologLogger) Debug(msg string, args ...any) {
	z.l.Debug().Fields(fieldsFrom(args)).Msg(msg)
}

func (z *zerologLogger) Info(msg string, args ...any) {
	z.l.Info().Fields(fieldsFrom(args)).Msg(msg)
}

func (z *zerologLogger) Warn(msg string, args ...any) {
	z.l.Warn().Fields(fieldsFrom(args)).Msg(msg)
}

func (z *zerologLogger) Error(msg string, args ...any) {
	z.l.Error().Fields(fieldsFrom(args)).Msg(msg)
}

// noopLogger discards everything; used only in tests that don't care about
// log output.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
