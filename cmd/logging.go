package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var lookupEnv = os.Getenv

// newLogger builds the process logger from --log-file and --log-level.
// The TUI owns the terminal, so without a log file everything is discarded.
func newLogger(cmd *cobra.Command) (*slog.Logger, io.Closer, error) {
	return openLogger(
		stringFlag(cmd, "log-file", "IQ360_LOG_FILE"),
		stringFlag(cmd, "log-level", "IQ360_LOG_LEVEL"),
	)
}

func openLogger(path, level string) (*slog.Logger, io.Closer, error) {
	lvl, err := parseLogLevel(level)
	if err != nil {
		return nil, nil, err
	}
	if path == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	h := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: lvl})
	return slog.New(h).With(slog.String("app", "iq360"), slog.String("version", resolvedVersion())), f, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: must be debug, info, warn or error", s)
	}
	return lvl, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
