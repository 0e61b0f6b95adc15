package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/mcoot/inarow/internal/model"
)

// Config holds application configuration read from an optional YAML file
// and INAROW_* environment variables
type Config struct {
	LogLevel  string `yaml:"log-level" env:"INAROW_LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log-format" env:"INAROW_LOG_FORMAT" env-default:"json"`
	Board     Board  `yaml:"board"`
	HTTP      HTTP   `yaml:"http"`
}

// Board holds the game rules
type Board struct {
	Size      int `yaml:"size" env:"INAROW_BOARD_SIZE" env-default:"15"`
	WinLength int `yaml:"win-length" env:"INAROW_WIN_LENGTH" env-default:"5"`
}

// HTTP holds settings for the JSON API server
type HTTP struct {
	Host            string        `yaml:"host" env:"INAROW_HTTP_HOST" env-default:""`
	Port            int           `yaml:"port" env:"INAROW_HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read-timeout" env:"INAROW_HTTP_READ_TIMEOUT" env-default:"15s"`
	WriteTimeout    time.Duration `yaml:"write-timeout" env:"INAROW_HTTP_WRITE_TIMEOUT" env-default:"15s"`
	ShutdownTimeout time.Duration `yaml:"shutdown-timeout" env:"INAROW_HTTP_SHUTDOWN_TIMEOUT" env-default:"30s"`
}

// Load reads configuration from path, or from the environment alone when
// path is empty. Environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(cfg)
	} else {
		err = cleanenv.ReadConfig(path, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: unable to load config: %v", model.ErrConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the rules and logging settings
func (c *Config) Validate() error {
	if err := c.Rules().Validate(); err != nil {
		return err
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("%w: unknown log format %q", model.ErrConfig, c.LogFormat)
	}
	return nil
}

// Rules returns the game rules described by the configuration
func (c *Config) Rules() model.Rules {
	return model.Rules{
		Size:      c.Board.Size,
		WinLength: c.Board.WinLength,
	}
}

// Addr returns the HTTP listen address
func (h HTTP) Addr() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

// ParseLevel maps a log level name to a slog level
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", model.ErrConfig, level)
	}
}

// NewLogger builds the application logger writing to w
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if c.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
