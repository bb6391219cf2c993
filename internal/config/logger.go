package config

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger creates a timestamped logger writing to w. The level comes from
// LOG_LEVEL (debug, info, warn, error); an unknown level falls back to info
// and is reported through the returned error.
func NewLogger(w io.Writer, prefix string) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          prefix,
		Level:           log.InfoLevel,
	})

	raw := GetEnv("LOG_LEVEL", "")
	if raw == "" {
		return logger, nil
	}
	level, err := log.ParseLevel(raw)
	if err != nil {
		return logger, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	logger.SetLevel(level)
	return logger, nil
}
