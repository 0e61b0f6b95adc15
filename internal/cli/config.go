package cli

import (
	"fmt"
	"os"
)

// Config holds CLI options. Zero Size or WinLength leaves the value from the
// config file or environment in place.
type Config struct {
	ConfigPath string
	ServerURL  string
	Size       int
	WinLength  int
	Output     string
	Verbose    bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ConfigPath: os.Getenv("INAROW_CONFIG"),
		ServerURL:  os.Getenv("INAROW_SERVER"),
		Output:     "text",
		Verbose:    false,
	}
}

// Validate checks option values that cobra cannot check itself
func (c *Config) Validate() error {
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("unknown output format %q (want text or json)", c.Output)
	}
	if c.Size < 0 || c.WinLength < 0 {
		return fmt.Errorf("size and win length must not be negative")
	}
	return nil
}
