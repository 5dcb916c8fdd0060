package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
api:
  base_url: "https://api.example.com/prod"
auth:
  provider_url: "https://id.example.com"
  client_id: "client-abc"
  state_dir: "/tmp/ironlog-test"
tailscale:
  enabled: true
  hostname: "ironlog-box"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadValid verifies that a well-formed YAML config loads with all fields populated.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "https://api.example.com/prod" {
		t.Errorf("api.base_url = %q", cfg.API.BaseURL)
	}
	if cfg.Auth.ProviderURL != "https://id.example.com" {
		t.Errorf("auth.provider_url = %q", cfg.Auth.ProviderURL)
	}
	if cfg.Auth.ClientID != "client-abc" {
		t.Errorf("auth.client_id = %q", cfg.Auth.ClientID)
	}
	if !cfg.Tailscale.Enabled {
		t.Error("tailscale.enabled = false, want true")
	}
	if cfg.Tailscale.Hostname != "ironlog-box" {
		t.Errorf("tailscale.hostname = %q", cfg.Tailscale.Hostname)
	}
}

// TestEnvOverride verifies that IRONLOG_ env vars take precedence over YAML values.
func TestEnvOverride(t *testing.T) {
	t.Setenv("IRONLOG_API_BASE_URL", "https://override.example.com")
	t.Setenv("IRONLOG_AUTH_CLIENT_ID", "client-env")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "https://override.example.com" {
		t.Errorf("api.base_url = %q, want env override", cfg.API.BaseURL)
	}
	if cfg.Auth.ClientID != "client-env" {
		t.Errorf("auth.client_id = %q, want env override", cfg.Auth.ClientID)
	}
}

// TestMissingFileEnvOnly verifies env vars alone can configure the client.
func TestMissingFileEnvOnly(t *testing.T) {
	t.Setenv("IRONLOG_API_BASE_URL", "https://api.example.com")
	t.Setenv("IRONLOG_AUTH_PROVIDER_URL", "https://id.example.com")
	t.Setenv("IRONLOG_AUTH_CLIENT_ID", "client-abc")
	t.Setenv("IRONLOG_AUTH_STATE_DIR", t.TempDir())

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "https://api.example.com" {
		t.Errorf("api.base_url = %q", cfg.API.BaseURL)
	}
}

// TestValidateMissingBaseURL verifies validation rejects an empty API base URL.
func TestValidateMissingBaseURL(t *testing.T) {
	_, err := Load(writeTemp(t, `
auth:
  provider_url: "https://id.example.com"
  client_id: "client-abc"
  state_dir: "/tmp/x"
`))
	if err == nil {
		t.Fatal("expected validation error for missing api.base_url")
	}
}

// TestStateDirDefault verifies a default auth state dir is filled in.
func TestStateDirDefault(t *testing.T) {
	cfg, err := Load(writeTemp(t, `
api:
  base_url: "https://api.example.com"
auth:
  provider_url: "https://id.example.com"
  client_id: "client-abc"
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Auth.StateDir == "" {
		t.Error("auth.state_dir not defaulted")
	}
	if cfg.Tailscale.StateDir == "" {
		t.Error("tailscale.state_dir not defaulted")
	}
}
