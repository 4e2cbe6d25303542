// Package config provides centralized defaults and the optional config
// file for dashlan.
//
// Defaults are consts so every command agrees on them. An optional
// ~/.dashlan/config.yaml overrides the three knobs serve accepts; the
// file is run through environment-variable substitution before parsing
// so entries like "app: ${DASH_APP}" work.
//
// Environment variables:
//   - DASHLAN_HOME: override the config directory (default: ~/.dashlan)
//   - DASHLAN_LOG_LEVEL: zerolog level for diagnostics (default: info)
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/a8m/envsubst"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultPort is the port the dashboard process listens on.
	DefaultPort = 8501

	// WildcardBind accepts connections on every local interface so
	// peers on the LAN can reach the dashboard. Binding loopback-only
	// would defeat the point of the tool.
	WildcardBind = "0.0.0.0"

	// DefaultApp is the dashboard entry point looked for in the
	// working directory.
	DefaultApp = "employee_dashboard_fixed.py"
)

const (
	// DefaultDirPerms is the default permission mode for created directories.
	DefaultDirPerms = 0755

	// DefaultFilePerms is the default permission mode for created files.
	DefaultFilePerms = 0644
)

// Config holds the knobs serve accepts. Everything else about the child
// invocation is fixed.
type Config struct {
	// Port is the dashboard server port (default: 8501)
	Port int `yaml:"port,omitempty" json:"port"`
	// Bind is the server bind address (default: 0.0.0.0)
	Bind string `yaml:"bind,omitempty" json:"bind"`
	// App is the dashboard entry point (default: employee_dashboard_fixed.py)
	App string `yaml:"app,omitempty" json:"app"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Port: DefaultPort,
		Bind: WildcardBind,
		App:  DefaultApp,
	}
}

// Home returns the dashlan config directory, honoring DASHLAN_HOME.
func Home() string {
	if h := os.Getenv("DASHLAN_HOME"); h != "" {
		return h
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".dashlan"
	}
	return filepath.Join(home, ".dashlan")
}

// Path returns the path to the config file.
func Path() string {
	return filepath.Join(Home(), "config.yaml")
}

// Load reads the config file, expands ${VAR} references, and overlays
// the result on the defaults. A missing file is not an error.
func Load() (*Config, error) {
	return LoadFile(Path())
}

// LoadFile is Load against an explicit path.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	expanded, err := envsubst.String(string(data))
	if err != nil {
		return nil, fmt.Errorf("expanding %s: %w", path, err)
	}

	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.ApplyDefaults()
	return cfg, nil
}

// Save writes cfg to the config file, creating the directory if needed.
func Save(cfg *Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), DefaultDirPerms); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, DefaultFilePerms)
}

// ApplyDefaults fills in default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Bind == "" {
		c.Bind = WildcardBind
	}
	if c.App == "" {
		c.App = DefaultApp
	}
}
