// pkg/logger/logger.go

package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
)

var (
	mu  sync.RWMutex
	log *zap.Logger
)

// L returns the process diagnostic logger, building the console fallback on
// first use.
func L() *zap.Logger {
	mu.RLock()
	l := log
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if log == nil {
		log = NewFallbackLogger(os.Stderr, ParseLogLevel(os.Getenv(LevelEnv)))
		zap.ReplaceGlobals(log)
	}
	return log
}

// SetLogger replaces the process diagnostic logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	log = l
	mu.Unlock()
	zap.ReplaceGlobals(l)
}

// Initialize installs a console logger at the given level.
func Initialize(level string) {
	SetLogger(NewFallbackLogger(os.Stderr, ParseLogLevel(level)))
}

// Sync flushes any buffered log entries. Should be called before the application exits.
func Sync() error {
	mu.RLock()
	l := log
	mu.RUnlock()
	if l == nil {
		return nil
	}
	return l.Sync()
}
