package config

import (
	"fmt"
	"net/url"
	"slices"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSource(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSource() error {
	parsed, err := url.Parse(c.Source.BaseURL)
	if err != nil {
		return fmt.Errorf("source.base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("source.base_url must use http or https, got %q", c.Source.BaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("source.base_url must include a host, got %q", c.Source.BaseURL)
	}
	if c.Source.TimeoutSeconds <= 0 {
		return fmt.Errorf("source.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateOutput() error {
	if !slices.Contains([]string{FormatText, FormatTable, FormatJSON}, c.Output.Format) {
		return fmt.Errorf("output.format must be one of text, table, json; got %q", c.Output.Format)
	}
	if !slices.Contains([]string{ColorAuto, ColorAlways, ColorNever}, c.Output.Color) {
		return fmt.Errorf("output.color must be one of auto, always, never; got %q", c.Output.Color)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be console or json; got %q", c.Logging.Format)
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}
