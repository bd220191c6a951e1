// Package applog provides the process-wide structured logger.
//
// Every binary in this module (cmd/perft, cmd/chesscore) and the engine's
// search diagnostics log through the single *zap.SugaredLogger configured
// here rather than constructing their own. internal/board stays
// logging-free: move generation and make/undo run on every search node and
// have no business formatting strings.
package applog

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.Mutex
	logger *zap.SugaredLogger
)

// L returns the process logger, building a production zap logger with a
// console encoder on first use.
func L() *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig.TimeKey = ""
		z, err := cfg.Build()
		if err != nil {
			// Fall back to a no-op logger rather than panic on logger
			// construction failure; nothing downstream can recover from it.
			z = zap.NewNop()
		}
		logger = z.Sugar()
	}
	return logger
}

// Set overrides the process logger, for callers that want a differently
// configured logger (e.g. development mode).
func Set(l *zap.SugaredLogger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Sync flushes any buffered log entries. Call before process exit.
func Sync() {
	mu.Lock()
	l := logger
	mu.Unlock()
	if l != nil {
		_ = l.Sync()
	}
}
