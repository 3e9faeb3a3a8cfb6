// Package logging configures zerolog for the stf commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/stewi1014/stf/encio"
)

// Environment variables that override a Config, read by ApplyEnv.
const (
	EnvLogLevel   = "STF_LOG_LEVEL"
	EnvLogNoColor = "STF_LOG_NOCOLOR"
)

// Config is the [log] table of a command's config file.
type Config struct {
	Level   string `toml:"level"`
	NoColor bool   `toml:"no_color"`
}

// DefaultConfig returns the Config used when nothing is configured.
func DefaultConfig() Config {
	return Config{Level: "warn"}
}

// ApplyEnv overrides cfg with any settings in the environment.
func ApplyEnv(cfg *Config) {
	if lvl := strings.TrimSpace(os.Getenv(EnvLogLevel)); lvl != "" {
		cfg.Level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
}

// New returns a console logger writing to w, configured by cfg.
func New(cfg Config, w io.Writer) (zerolog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    cfg.NoColor,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// Configure builds a logger with New, and installs it as the stf library logger.
func Configure(cfg Config, w io.Writer) (zerolog.Logger, error) {
	logger, err := New(cfg, w)
	if err != nil {
		return logger, err
	}
	encio.Log = logger.With().Str("lib", "stf").Logger()
	return logger, nil
}

// ParseLevel parses a level name. An empty name is the default level, warn.
func ParseLevel(raw string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.WarnLevel, nil
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", raw)
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
