package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeLogging()
	c.normalizeOutput()

	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = lowerOr(c.Logging.Format, defaultLogFormat)
	c.Logging.Level = lowerOr(c.Logging.Level, defaultLogLevel)
	if c.Logging.Level == "warning" {
		c.Logging.Level = "warn"
	}
}

func (c *Config) normalizeOutput() {
	c.Output.Format = lowerOr(c.Output.Format, defaultOutputFormat)
	if c.Output.Format == "yml" {
		c.Output.Format = "yaml"
	}
	c.Output.Color = lowerOr(c.Output.Color, defaultOutputColor)
}

func lowerOr(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}
