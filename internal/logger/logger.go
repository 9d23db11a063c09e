package logger

import (
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/mabhi256/jlint/internal/config"
)

const EnvLogLevel = "JLINT_LOG_LEVEL"

// New creates an hclog.Logger writing to stderr, so report output on stdout stays parseable
func New(cfg *config.Config, name string) hclog.Logger {
	return NewWithOutput(cfg, name, os.Stderr)
}

func NewWithOutput(cfg *config.Config, name string, output io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:        name,
		DisableTime: true,
		Output:      output,
		Level:       determineLogLevel(cfg),
	})
}

// determineLogLevel prefers the config file, then JLINT_LOG_LEVEL, then INFO
func determineLogLevel(cfg *config.Config) hclog.Level {
	if cfg != nil && cfg.Logger.Level != "" {
		return parseLogLevel(cfg.Logger.Level)
	}
	if env := os.Getenv(EnvLogLevel); env != "" {
		return parseLogLevel(env)
	}
	return hclog.Info
}

func parseLogLevel(levelStr string) hclog.Level {
	level := hclog.LevelFromString(strings.TrimSpace(levelStr))
	if level == hclog.NoLevel {
		return hclog.Info
	}
	return level
}
