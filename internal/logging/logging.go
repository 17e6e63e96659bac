// Package logging provides the logging capability handed to each component
// at construction. There is no ambient global logger.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the minimal logging surface the accessors and the dispatcher use.
type Logger interface {
	Info(msg string, kv ...any)
	Error(msg string, kv ...any)
}

type zapLogger struct {
	s *zap.SugaredLogger
}

func (l *zapLogger) Info(msg string, kv ...any)  { l.s.Infow(msg, kv...) }
func (l *zapLogger) Error(msg string, kv ...any) { l.s.Errorw(msg, kv...) }

// New builds a Logger that appends to logPath and mirrors to stderr.
// The returned func flushes buffered entries and should be deferred.
func New(logPath string) (Logger, func(), error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	if logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory for %s: %w", logPath, err)
		}
		cfg.OutputPaths = append(cfg.OutputPaths, logPath)
	}

	zl, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot build logger: %w", err)
	}
	return &zapLogger{s: zl.Sugar()}, func() { _ = zl.Sync() }, nil
}

// Nop returns a Logger that discards everything. Intended for tests.
func Nop() Logger {
	return &zapLogger{s: zap.NewNop().Sugar()}
}

// DefaultPath returns the default append log, ~/.profilectl/actions.log.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".profilectl", "actions.log"), nil
}
