package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	API       APIConfig       `yaml:"api"`
	Auth      AuthConfig      `yaml:"auth"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
}

type APIConfig struct {
	BaseURL string `yaml:"base_url"`
}

type AuthConfig struct {
	ProviderURL string `yaml:"provider_url"`
	ClientID    string `yaml:"client_id"`
	StateDir    string `yaml:"state_dir"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, "ironlog", "config.yaml")
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error — env vars can supply everything.
// Env vars use the prefix IRONLOG_ and underscore-separated paths:
//
//	IRONLOG_API_BASE_URL,
//	IRONLOG_AUTH_PROVIDER_URL, IRONLOG_AUTH_CLIENT_ID, IRONLOG_AUTH_STATE_DIR,
//	IRONLOG_TS_ENABLED, IRONLOG_TS_HOSTNAME, IRONLOG_TS_STATE_DIR
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("IRONLOG_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("IRONLOG_AUTH_PROVIDER_URL"); v != "" {
		cfg.Auth.ProviderURL = v
	}
	if v := os.Getenv("IRONLOG_AUTH_CLIENT_ID"); v != "" {
		cfg.Auth.ClientID = v
	}
	if v := os.Getenv("IRONLOG_AUTH_STATE_DIR"); v != "" {
		cfg.Auth.StateDir = v
	}
	if v := os.Getenv("IRONLOG_TS_ENABLED"); v == "true" || v == "1" {
		cfg.Tailscale.Enabled = true
	}
	if v := os.Getenv("IRONLOG_TS_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
	}
	if v := os.Getenv("IRONLOG_TS_STATE_DIR"); v != "" {
		cfg.Tailscale.StateDir = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Auth.StateDir == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.Auth.StateDir = filepath.Join(dir, "ironlog")
		}
	}
	if cfg.Tailscale.Hostname == "" {
		cfg.Tailscale.Hostname = "ironlog"
	}
	if cfg.Tailscale.StateDir == "" && cfg.Auth.StateDir != "" {
		cfg.Tailscale.StateDir = filepath.Join(cfg.Auth.StateDir, "tsnet")
	}
}

func (c *Config) validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.Auth.ProviderURL == "" {
		return fmt.Errorf("auth.provider_url is required")
	}
	if c.Auth.ClientID == "" {
		return fmt.Errorf("auth.client_id is required")
	}
	if c.Auth.StateDir == "" {
		return fmt.Errorf("auth.state_dir is required")
	}
	return nil
}
