// Package config loads the calculator's settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the complete configuration.
type Config struct {
	Display Display `yaml:"display"`
	Log     Log     `yaml:"log"`
}

// Display controls how results are shown.
type Display struct {
	// ErrorText replaces the display when an expression fails to evaluate.
	ErrorText string `yaml:"error_text"`
	// Format is a fmt verb for results. Empty selects the calculator display
	// format, e.g. "3.0" and "1.0E7".
	Format string `yaml:"format"`
}

// Log controls logging.
type Log struct {
	// Level is one of debug, info, warn, or error.
	Level string `yaml:"level"`
	// File is the path of a rotating log file. Empty logs to stderr.
	File string `yaml:"file"`
	// MaxSize is the size in megabytes at which the log file rotates.
	MaxSize int `yaml:"max_size"`
	// MaxBackups is the number of rotated files to keep.
	MaxBackups int `yaml:"max_backups"`
}

// Levels are the accepted log level names.
var Levels = []string{"debug", "info", "warn", "error"}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Display: Display{
			ErrorText: "Error",
		},
		Log: Log{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
		},
	}
}

// Load reads a configuration file. Settings missing from the file keep their
// default values. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Decode(bytes.NewReader(b))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads a configuration from YAML, rejecting unknown keys.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that settings are in range.
func (c *Config) Validate() error {
	c.Log.Level = strings.ToLower(c.Log.Level)
	if !validLevel(c.Log.Level) {
		return fmt.Errorf("invalid log level %q (want one of %s)", c.Log.Level, strings.Join(Levels, ", "))
	}
	if c.Log.MaxSize < 0 || c.Log.MaxBackups < 0 {
		return errors.New("log max_size and max_backups must not be negative")
	}
	if c.Display.Format != "" && !strings.Contains(c.Display.Format, "%") {
		return fmt.Errorf("display format %q has no verb", c.Display.Format)
	}
	return nil
}

func validLevel(s string) bool {
	for _, l := range Levels {
		if s == l {
			return true
		}
	}
	return false
}
