// Package ulogger is the printf-style logging interface used throughout
// this module, backed by github.com/rs/zerolog. It mirrors the shape the
// teranode sources use (Debugf/Infof/Warnf/Errorf) so call sites read the
// same regardless of which concrete logger is wired in.
package ulogger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is the interface engine-adjacent packages (pkg/aerospikehost,
// pkg/client, cmd/utxoengine-demo) log through. The engine itself never
// logs: it is a pure function of record + args.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	// WithField returns a derived Logger with an additional structured field.
	WithField(key string, value any) Logger
}

type zerologLogger struct {
	l zerolog.Logger
}

// New returns a Logger writing pretty console output at the given level
// ("debug", "info", "warn", "error") to w.
func New(serviceName string, level string, w io.Writer) Logger {
	if w == nil {
		w = os.Stderr
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	base := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		Level(lvl).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
	return &zerologLogger{l: base}
}

func (z *zerologLogger) Debugf(format string, args ...any) { z.l.Debug().Msgf(format, args...) }
func (z *zerologLogger) Infof(format string, args ...any)  { z.l.Info().Msgf(format, args...) }
func (z *zerologLogger) Warnf(format string, args ...any)  { z.l.Warn().Msgf(format, args...) }
func (z *zerologLogger) Errorf(format string, args ...any) { z.l.Error().Msgf(format, args...) }

func (z *zerologLogger) WithField(key string, value any) Logger {
	return &zerologLogger{l: z.l.With().Interface(key, value).Logger()}
}
