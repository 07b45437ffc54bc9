package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()

	if !cfg.Python3 {
		t.Error("default config should prefer python3 wsgi")
	}
	if cfg.Family != "" {
		t.Errorf("default config should not pin a family, got %q", cfg.Family)
	}
	if cfg.Overrides != (Overrides{}) {
		t.Errorf("default config should have no overrides, got %+v", cfg.Overrides)
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("missing config file should not error: %v", err)
	}
	if !cfg.Python3 {
		t.Error("missing config should yield defaults")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `family: fedora
python3: false
user: apache
overrides:
  service: httpd24
  config_dir: /srv/httpd/conf.d
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Family != "fedora" {
		t.Errorf("expected family fedora, got %q", cfg.Family)
	}
	if cfg.Python3 {
		t.Error("expected python3 false")
	}
	if cfg.User != "apache" {
		t.Errorf("expected user apache, got %q", cfg.User)
	}
	if cfg.Overrides.Service != "httpd24" {
		t.Errorf("expected service override httpd24, got %q", cfg.Overrides.Service)
	}
	if cfg.Overrides.ConfigDir != "/srv/httpd/conf.d" {
		t.Errorf("expected config_dir override, got %q", cfg.Overrides.ConfigDir)
	}
	if cfg.Overrides.SettingsDir != "" {
		t.Errorf("unset override should stay empty, got %q", cfg.Overrides.SettingsDir)
	}
}

func TestLoadFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("family: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("user: www-data\ngroup: www-data\n"), 0644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}

	t.Setenv("APACHE_USER", "horizon")
	t.Setenv("APACHE_GROUP", "horizon")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.User != "horizon" || cfg.Group != "horizon" {
		t.Errorf("env should win over file, got user=%q group=%q", cfg.User, cfg.Group)
	}
}

func TestGroupDefaultsToUser(t *testing.T) {
	t.Setenv("APACHE_USER", "wwwrun")
	t.Setenv("APACHE_GROUP", "")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Group != "wwwrun" {
		t.Errorf("group should default to user, got %q", cfg.Group)
	}
}
