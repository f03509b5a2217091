package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Log is the application-wide logger. It is a no-op until Initialize is called.
var Log = zap.NewNop()

// Initialize replaces Log with a production logger at the given level
func Initialize(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	zl, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	Log = zl
	return nil
}
