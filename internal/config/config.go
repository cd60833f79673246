package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when no --config flag is given.
const DefaultPath = "count.yaml"

// Config holds all count configuration.
type Config struct {
	// Args is the argument sequence used when none is given on the command line.
	Args []int `yaml:"args"`

	// MaxN bounds the largest accepted argument (recursion depth). 0 = unbounded.
	MaxN int `yaml:"max_n"`

	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Args: []int{5, 4, 3, 2, 1},
		MaxN: 10000,
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "json",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Defaults if config file doesn't exist
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
// Values that fail to parse are ignored.
func (c *Config) applyEnvOverrides() {
	if raw := os.Getenv("COUNT_ARGS"); raw != "" {
		if args, err := ParseArgs(strings.Split(raw, ",")); err == nil {
			c.Args = args
		}
	}
	if raw := os.Getenv("COUNT_MAX_N"); raw != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			c.MaxN = n
		}
	}
	if level := os.Getenv("COUNT_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
	if format := os.Getenv("COUNT_LOG_FORMAT"); format != "" {
		c.Logging.Format = strings.ToLower(format)
	}
}

// ParseArgs converts textual integers into an argument sequence.
// Surrounding whitespace is trimmed; empty input yields an empty sequence.
func ParseArgs(raw []string) ([]int, error) {
	args := make([]int, 0, len(raw))
	for i, s := range raw {
		s = strings.TrimSpace(s)
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("argument %d (%q) is not an integer: %w", i, s, err)
		}
		args = append(args, n)
	}
	return args, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.MaxN < 0 {
		return fmt.Errorf("max_n must be >= 0, got %d", c.MaxN)
	}
	for i, a := range c.Args {
		if a < 1 {
			return fmt.Errorf("args[%d] must be >= 1, got %d", i, a)
		}
		if c.MaxN > 0 && a > c.MaxN {
			return fmt.Errorf("args[%d] = %d exceeds max_n %d", i, a, c.MaxN)
		}
	}
	return c.Logging.Validate()
}
