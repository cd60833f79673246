package config

import "fmt"

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidLogFormats lists the accepted log encodings.
var ValidLogFormats = []string{"json", "console"}

// Validate checks level and format against the accepted values.
func (c *LoggingConfig) Validate() error {
	if !contains(ValidLogLevels, c.Level) {
		return fmt.Errorf("invalid logging level: %s (valid: %v)", c.Level, ValidLogLevels)
	}
	if !contains(ValidLogFormats, c.Format) {
		return fmt.Errorf("invalid logging format: %s (valid: %v)", c.Format, ValidLogFormats)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
