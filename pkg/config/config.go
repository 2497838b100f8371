package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Database file names shipped by HydroBuddy, by platform.
const (
	UnixDatabaseName    = "substances_unix.dbf"
	WindowsDatabaseName = "substances_win.dbf"
)

// Config represents the fertbase configuration
type Config struct {
	BaseDir        string  `yaml:"base_dir"` // HydroBuddy installation folder
	StrictOverflow bool    `yaml:"strict_overflow"`
	Bind           string  `yaml:"bind"`
	Port           int     `yaml:"port"`
	Logging        Logging `yaml:"logging"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseDir:        ".",
		StrictOverflow: false,
		Bind:           "127.0.0.1",
		Port:           8080,
		Logging: Logging{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from the specified path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ResolveDatabasePath locates the substances database inside a HydroBuddy
// installation folder. The Unix layout is checked first, then the Windows
// one.
func ResolveDatabasePath(baseDir string) (string, error) {
	info, err := os.Stat(baseDir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("base directory not found: %s", baseDir)
	}

	for _, name := range []string{UnixDatabaseName, WindowsDatabaseName} {
		path := filepath.Join(baseDir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("no substances database under %s (expected %s or %s)",
		baseDir, UnixDatabaseName, WindowsDatabaseName)
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./fertbase.yaml"
	}

	configDir := filepath.Join(homeDir, ".config", "fertbase")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
