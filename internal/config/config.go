package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Overrides holds per-field overrides for the resolved Apache identity.
// An empty field means "use the distro default".
type Overrides struct {
	Service     string `yaml:"service,omitempty"`
	ConfigDir   string `yaml:"config_dir,omitempty"`
	SettingsDir string `yaml:"settings_dir,omitempty"`
	LogDir      string `yaml:"log_dir,omitempty"`
}

// Config represents the application configuration.
type Config struct {
	// Family overrides distro detection when set (ubuntu, fedora, suse).
	Family string `yaml:"family,omitempty"`

	// Python3 selects the Python-3 WSGI package variant on install.
	Python3 bool `yaml:"python3"`

	// User and Group are the ownership defaults applied to site configs
	// written by this tool. Overridden by APACHE_USER / APACHE_GROUP.
	User  string `yaml:"user,omitempty"`
	Group string `yaml:"group,omitempty"`

	Overrides Overrides `yaml:"overrides,omitempty"`
}

// configDir is the default config directory
const configDir = ".config/apachemgr"
const configFile = "config.yaml"

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Python3: true,
	}
}

// ConfigDir returns the config directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, configDir), nil
}

// ConfigPath returns the config file path.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads the config from disk and applies environment overrides.
func Load() (*Config, error) {
	// Pick up a local .env if one exists; absence is not an error.
	_ = godotenv.Load()

	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the config from an explicit path. A missing file yields
// the default config, not an error.
func LoadFile(path string) (*Config, error) {
	cfg := New()

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv applies the externally defined user/group pair. The
// environment wins over the config file.
func (c *Config) applyEnv() {
	if user := os.Getenv("APACHE_USER"); user != "" {
		c.User = user
	}
	if group := os.Getenv("APACHE_GROUP"); group != "" {
		c.Group = group
	}
	// Group defaults to the user name, same as the apache packaging does.
	if c.Group == "" {
		c.Group = c.User
	}
}

// Save writes the config to disk.
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path, err := ConfigPath()
	if err != nil {
		return err
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
