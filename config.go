package shamir

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds call-site defaults for Generate/Recover, loadable from a
// YAML file so a deployment can pin its preferred wire format and
// duplicate-index policy without touching call sites. It configures no
// secret material and persists no shares.
type Config struct {
	DefaultFormat         Format `yaml:"default_format"`
	DefaultSignShares     bool   `yaml:"default_sign_shares"`
	AllowDuplicateIndices bool   `yaml:"allow_duplicate_indices"`
}

// Defaults returns the built-in configuration: Binary format, unsigned
// shares, duplicate indices rejected.
func Defaults() *Config {
	return &Config{
		DefaultFormat:         Binary,
		DefaultSignShares:     false,
		AllowDuplicateIndices: false,
	}
}

// LoadConfig reads a YAML configuration file, falling back to Defaults
// for any field the file omits.
func LoadConfig(path string) (*Config, error) {
	// #nosec G304 -- config file path is supplied by the caller, not derived from untrusted input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GenerateOptions converts the configuration into the GenerateOption
// set a call site would pass to apply these defaults.
func (c *Config) GenerateOptions() []GenerateOption {
	return []GenerateOption{
		WithFormat(c.DefaultFormat),
		WithSign(c.DefaultSignShares),
	}
}

// RecoverOptions converts the configuration into the RecoverOption set
// a call site would pass to apply these defaults.
func (c *Config) RecoverOptions() []RecoverOption {
	return []RecoverOption{
		WithRecoverFormat(c.DefaultFormat),
		WithDuplicatePolicy(c.AllowDuplicateIndices),
	}
}
