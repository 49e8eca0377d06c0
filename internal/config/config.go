// Package config handles configuration loading from YAML files and environment variables.
// Configuration precedence: environment variables > config file > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a wrapper around time.Duration that supports YAML unmarshaling
// from human-readable strings like "10s", "30s", "1m".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements the yaml.Unmarshaler interface for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := time.ParseDuration(value.Value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value.Value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("unsupported duration format: %v", value.Kind)
	}
}

// MarshalYAML implements the yaml.Marshaler interface for Duration.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Config holds all sysreport configuration.
type Config struct {
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

// ReportConfig controls where the generated report goes.
type ReportConfig struct {
	// Output is the report destination path; "-" means stdout.
	Output string `yaml:"output"`
	// Pretty enables indented JSON output.
	Pretty bool `yaml:"pretty"`
	// URL, when set, enables publishing the report to an HTTP endpoint.
	URL string `yaml:"url"`
	// Token is the bearer token sent when publishing.
	Token string `yaml:"token"`
	// Timeout bounds each publish attempt.
	Timeout Duration `yaml:"timeout"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Report: ReportConfig{
			Output:  "-",
			Pretty:  true,
			Timeout: Duration{10 * time.Second},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadFromBytes parses YAML configuration from a byte slice and merges with defaults.
// Environment variables take highest precedence and override values from the byte slice.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config data: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// Load reads configuration from a YAML file and merges with defaults.
// If path is empty or the file does not exist, only defaults and environment
// variables are used.
func Load(path string) (*Config, error) {
	if path == "" {
		return LoadFromBytes(nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// File doesn't exist — use defaults + env overrides
		return LoadFromBytes(nil)
	}

	return LoadFromBytes(data)
}

// Locate searches standard config file paths and returns the first one found.
// Returns empty string if no config file exists.
func Locate() string {
	candidates := configSearchPaths()
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// WriteConfig serializes the config to a YAML file at the given path.
// Creates parent directories if needed.
func WriteConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0640)
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables have the highest precedence.
func applyEnvOverrides(cfg *Config) {
	if out := os.Getenv("SYSREPORT_OUTPUT"); out != "" {
		cfg.Report.Output = out
	}
	if url := os.Getenv("SYSREPORT_REPORT_URL"); url != "" {
		cfg.Report.URL = url
	}
	if token := os.Getenv("SYSREPORT_REPORT_TOKEN"); token != "" {
		cfg.Report.Token = token
	}
	if level := os.Getenv("SYSREPORT_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}

// Validate checks that the configuration is usable. Publishing requires
// a token and, outside localhost, an HTTPS endpoint.
func (c *Config) Validate() error {
	if c.Report.Output == "" {
		return fmt.Errorf("report output is required")
	}
	if c.Report.URL == "" {
		return nil
	}
	if c.Report.Token == "" {
		return fmt.Errorf("report token is required when a report URL is set")
	}
	if !strings.HasPrefix(c.Report.URL, "https://") {
		// Allow localhost for development
		if !strings.Contains(c.Report.URL, "localhost") && !strings.Contains(c.Report.URL, "127.0.0.1") {
			return fmt.Errorf("report URL must use HTTPS (got: %s)", c.Report.URL)
		}
	}
	return nil
}
