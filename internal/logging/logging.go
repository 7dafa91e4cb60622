package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger writes human-readable console logs to w at the given level.
func NewLogger(w io.Writer, level zapcore.Level) *zap.SugaredLogger {
	sink := zapcore.AddSync(w)

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		sink,
		level,
	)

	unsugaredLogger := zap.New(core)

	return unsugaredLogger.Named("robotgrid").Sugar()
}

// Level picks Debug when verbose is set, Info otherwise.
func Level(verbose bool) zapcore.Level {
	if verbose {
		return zap.DebugLevel
	}
	return zap.InfoLevel
}
