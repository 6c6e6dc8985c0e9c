package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	envOutput   = "TONEARM_OUTPUT"
	envLogLevel = "TONEARM_LOG_LEVEL"
)

func (c *Config) normalize() {
	c.normalizeOutput()
	c.normalizeLogging()
	c.normalizeSchemes()
}

func (c *Config) normalizeOutput() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutput
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}

func (c *Config) normalizeSchemes() {
	for i := range c.Schemes {
		c.Schemes[i].Name = strings.TrimSpace(c.Schemes[i].Name)
	}
}

// applyEnv layers environment overrides on top of the file. Errors name the
// variable so they are not blamed on the config file.
func (c *Config) applyEnv() error {
	if value := envValue(envOutput); value != "" {
		if err := ValidateOutputFormat(value); err != nil {
			return fmt.Errorf("%s: %w", envOutput, err)
		}
		c.Output.Format = value
	}
	if value := envValue(envLogLevel); value != "" {
		if err := validateLogLevel(value); err != nil {
			return fmt.Errorf("%s: %w", envLogLevel, err)
		}
		c.Logging.Level = value
	}
	return nil
}

func envValue(key string) string {
	return strings.ToLower(strings.TrimSpace(os.Getenv(key)))
}
