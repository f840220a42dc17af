package game

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger creates the structured logger shared by the game and the
// headless runner
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "bumperballs",
	})
	logger.SetLevel(lvl)
	return logger, nil
}
