package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Veraticus/hunk/pkg/hunk"
	"github.com/Veraticus/hunk/pkg/matcher"
)

// Config holds all configuration for hunk
type Config struct {
	// Matching behaviour
	MatchRaw     bool `yaml:"match_raw" env:"HUNK_MATCH_RAW"`
	MatchContext bool `yaml:"match_context" env:"HUNK_MATCH_CONTEXT"`
	MatchHeaders bool `yaml:"match_headers" env:"HUNK_MATCH_HEADERS"`

	// Diagnostics
	Verbose bool `yaml:"verbose" env:"HUNK_VERBOSE"`

	// Rules appended after the ones given on the command line
	Rules []RuleConfig `yaml:"rules"`
}

// RuleConfig is one rule from the config file. Exactly one of In and Out is set.
type RuleConfig struct {
	In  string `yaml:"in,omitempty"`
	Out string `yaml:"out,omitempty"`
}

// Rule converts the entry into a matcher rule
func (r RuleConfig) Rule() matcher.Rule {
	if r.In != "" {
		return matcher.Rule{Polarity: matcher.Include, Pattern: r.In}
	}
	return matcher.Rule{Polarity: matcher.Exclude, Pattern: r.Out}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{}
}

// HunkOptions returns the classifier options selected by the config
func (c *Config) HunkOptions() hunk.Options {
	return hunk.Options{
		MatchContext: c.MatchContext,
		MatchHeaders: c.MatchHeaders,
	}
}

// MatcherRules returns the config file rules in order
func (c *Config) MatcherRules() []matcher.Rule {
	rules := make([]matcher.Rule, 0, len(c.Rules))
	for _, r := range c.Rules {
		rules = append(rules, r.Rule())
	}
	return rules
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Try to load from config file
	configPath := getConfigPath()
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	// Check for explicit config path
	if path := os.Getenv("HUNK_CONFIG"); path != "" {
		return path
	}

	// Check XDG config directory
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "hunk", "config.yaml")
	}

	// Fall back to home directory
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "hunk", "config.yaml")
	}

	return ""
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - The config file path comes from trusted sources (env var or standard locations)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(cfg *Config) error {
	vars := []struct {
		name string
		dst  *bool
	}{
		{"HUNK_MATCH_RAW", &cfg.MatchRaw},
		{"HUNK_MATCH_CONTEXT", &cfg.MatchContext},
		{"HUNK_MATCH_HEADERS", &cfg.MatchHeaders},
		{"HUNK_VERBOSE", &cfg.Verbose},
	}

	for _, v := range vars {
		value := os.Getenv(v.name)
		if value == "" {
			continue
		}
		switch value {
		case "true", "1", "yes":
			*v.dst = true
		case "false", "0", "no":
			*v.dst = false
		default:
			return fmt.Errorf("invalid %s value: %q (use true/false)", v.name, value)
		}
	}

	return nil
}

// validate validates the configuration
func validate(cfg *Config) error {
	for i, r := range cfg.Rules {
		switch {
		case r.In == "" && r.Out == "":
			return fmt.Errorf("rules[%d]: one of in or out is required", i)
		case r.In != "" && r.Out != "":
			return fmt.Errorf("rules[%d]: in and out are mutually exclusive", i)
		}
	}

	return nil
}
