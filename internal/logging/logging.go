// Package logging builds the zap logger used across aliasusage.
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger that writes JSON entries at the given level to
// logFile and echoes warnings to console in a short human-readable form.
// Errors are left to the caller to report. An empty logFile disables the
// file output.
func New(level string, logFile string, console io.Writer) (*zap.Logger, zap.AtomicLevel, error) {
	logLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	consoleCore := newConsoleCore(console)
	if logFile == "" {
		return zap.New(consoleCore), logLevel, nil
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = logLevel
	loggerConfig.OutputPaths = []string{logFile}
	loggerConfig.ErrorOutputPaths = []string{logFile}

	logger, err := loggerConfig.Build(zap.WrapCore(func(fileCore zapcore.Core) zapcore.Core {
		return zapcore.NewTee(fileCore, consoleCore)
	}))
	if err != nil {
		return nil, zap.AtomicLevel{}, err
	}

	return logger, logLevel, nil
}

func newConsoleCore(console io.Writer) zapcore.Core {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	encoderConfig.CallerKey = ""
	encoderConfig.NameKey = ""
	encoderConfig.StacktraceKey = ""

	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(console),
		zap.LevelEnablerFunc(func(level zapcore.Level) bool {
			return level == zapcore.WarnLevel
		}),
	)
}
