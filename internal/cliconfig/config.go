package cliconfig

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/jcorbin/mdwrap/internal/wrapio"
	"github.com/jcorbin/mdwrap/linewrap"
)

// Config holds CLI configuration for mdwrap.
type Config struct {
	Output       string
	Ext          string
	Policy       linewrap.Policy
	MaxLineBytes int
	LogLevel     string

	Watch    bool
	Debounce time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Ext:          ".html",
		Policy:       linewrap.PerLine,
		MaxLineBytes: wrapio.DefaultMaxLine,
		LogLevel:     zerolog.InfoLevel.String(),
		Debounce:     100 * time.Millisecond,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Output == "" && c.Ext == "" {
		return fmt.Errorf("ext is required (or output)")
	}
	if c.MaxLineBytes <= 0 {
		return fmt.Errorf("max line bytes must be positive")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if c.Watch && c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive")
	}
	return nil
}

// OutputPath returns the output file for the given input.
func (c *Config) OutputPath(input string) (string, error) {
	if c.Output != "" {
		if c.Output == input {
			return "", fmt.Errorf("%w: output would overwrite input %q", wrapio.ErrOutputPath, input)
		}
		return c.Output, nil
	}
	return wrapio.OutputPath(input, c.Ext)
}

// configSetter applies configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

func (s *configSetter) setPolicy(flag, value string, dst *linewrap.Policy) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	policy, ok := linewrap.ParsePolicy(value)
	if !ok {
		return fmt.Errorf("parse %s: unknown policy %q", flag, value)
	}
	*dst = policy
	return nil
}

func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
