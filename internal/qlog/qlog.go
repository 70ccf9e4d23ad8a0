// Package qlog is a small wrapper over zap providing the one shape this
// module's ambient components need: a named logger with Info/Debug
// methods. It has no verbosity switch of its own; callers decide whether
// to build one at all.
package qlog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is a named logger.
type Log struct {
	sugar *zap.SugaredLogger
}

// New returns a console logger named name, writing to stdout at info
// level.
func New(name string) Log {
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), zapcore.InfoLevel)
	l := zap.New(core).Named(name)
	return Log{sugar: l.Sugar()}
}

// Nop returns a logger that discards everything.
func Nop() Log {
	return Log{sugar: zap.NewNop().Sugar()}
}

// Info logs a formatted message at info level.
func (l Log) Info(format string, args ...any) {
	l.sugar.Infof(format, args...)
}

// Debug logs a formatted message at debug level.
func (l Log) Debug(format string, args ...any) {
	l.sugar.Debugf(format, args...)
}
