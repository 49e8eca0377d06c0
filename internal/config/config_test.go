package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromBytes_Defaults(t *testing.T) {
	cfg, err := LoadFromBytes(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Report.Output != "-" {
		t.Errorf("Output = %q, want stdout default", cfg.Report.Output)
	}
	if !cfg.Report.Pretty {
		t.Error("Pretty should default to true")
	}
	if cfg.Report.Timeout.Duration != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s default", cfg.Report.Timeout.Duration)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want info default", cfg.Logging.Level)
	}
}

func TestLoadFromBytes_YAMLOverridesDefaults(t *testing.T) {
	data := []byte("report:\n  output: \"/tmp/report.json\"\n  timeout: \"30s\"\nlogging:\n  level: debug")
	cfg, err := LoadFromBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Report.Output != "/tmp/report.json" {
		t.Errorf("Output = %q, want YAML value", cfg.Report.Output)
	}
	if cfg.Report.Timeout.Duration != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Report.Timeout.Duration)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadFromBytes_EnvOverridesYAML(t *testing.T) {
	t.Setenv("SYSREPORT_OUTPUT", "/env/report.json")
	t.Setenv("SYSREPORT_LOG_LEVEL", "warn")

	data := []byte("report:\n  output: \"/yaml/report.json\"")
	cfg, err := LoadFromBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Report.Output != "/env/report.json" {
		t.Errorf("Output = %q, want env override", cfg.Report.Output)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %q, want env override", cfg.Logging.Level)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Report.Output != "-" {
		t.Errorf("Output = %q, want default", cfg.Report.Output)
	}
}

func TestLoadFromBytes_InvalidDuration(t *testing.T) {
	if _, err := LoadFromBytes([]byte("report:\n  timeout: \"soon\"")); err == nil {
		t.Error("expected error for invalid duration")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"empty output", func(c *Config) { c.Report.Output = "" }, true},
		{"url without token", func(c *Config) { c.Report.URL = "https://example.com/ingest" }, true},
		{"https url with token", func(c *Config) {
			c.Report.URL = "https://example.com/ingest"
			c.Report.Token = "tok"
		}, false},
		{"plain http rejected", func(c *Config) {
			c.Report.URL = "http://example.com/ingest"
			c.Report.Token = "tok"
		}, true},
		{"localhost http allowed", func(c *Config) {
			c.Report.URL = "http://localhost:3000/ingest"
			c.Report.Token = "tok"
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWriteConfig_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	if err := WriteConfig(DefaultConfig(), path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("config file is empty")
	}
}
