package config

import "fmt"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := ValidateOutputFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateSchemes()
}

// ValidateOutputFormat reports whether format names a supported renderer.
func ValidateOutputFormat(format string) error {
	switch format {
	case OutputText, OutputJSON, OutputTable:
		return nil
	default:
		return fmt.Errorf("unsupported value %q (want text, json, or table)", format)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	if err := validateLogLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

func validateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("unsupported value %q (want debug, info, warn, or error)", level)
	}
}

func (c *Config) validateSchemes() error {
	for i, s := range c.Schemes {
		if s.Name == "" {
			return fmt.Errorf("schemes[%d].name must be set", i)
		}
		if !(s.InnerNull > 0) || !(s.OuterNull > 0) {
			return fmt.Errorf("schemes[%d] (%s): inner_null and outer_null must be positive", i, s.Name)
		}
		if s.InnerNull >= s.OuterNull {
			return fmt.Errorf("schemes[%d] (%s): inner_null must be smaller than outer_null", i, s.Name)
		}
	}
	return nil
}
