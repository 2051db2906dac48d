// Package config provides configuration management for the application.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Colors ColorConfig  `yaml:"colors"`
	Output OutputConfig `yaml:"output"`
}

// OutputConfig holds the report output defaults. Command-line flags
// override these per invocation.
type OutputConfig struct {
	// Pretty-print the JSON report by default
	Pretty bool `yaml:"pretty"`

	// Colorize the status banner written to stderr
	Color bool `yaml:"color"`
}

// ColorConfig holds the color configuration values.
type ColorConfig struct {
	Info      string `yaml:"info"`      // Informational messages (cyan/blue)
	Success   string `yaml:"success"`   // Success messages (green)
	Warning   string `yaml:"warning"`   // Warning messages (yellow/orange)
	Error     string `yaml:"error"`     // Error messages (red)
	Highlight string `yaml:"highlight"` // Highlighted elements (purple)
	Faint     string `yaml:"faint"`     // Less important text (gray)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Colors: ColorConfig{
			Info:      "#3366cc",
			Success:   "#22aa22",
			Warning:   "#ffaa00",
			Error:     "#ff3333",
			Highlight: "#8833ff",
			Faint:     "#777777",
		},
		Output: OutputConfig{
			Pretty: false,
			Color:  true,
		},
	}
}

// ConfigFilePath returns the path to the configuration file.
func ConfigFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("unable to get user home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "tfanalyze")
	return filepath.Join(configDir, "config.yaml"), nil
}

// LoadConfig loads the configuration from the config file.
// If the file doesn't exist, it creates a default configuration.
// Returns the config, a flag indicating if the config was created, and any error.
func LoadConfig() (*Config, bool, error) {
	filename, err := ConfigFilePath()
	if err != nil {
		return nil, false, err
	}

	return LoadConfigFile(filename)
}

// LoadConfigFile loads the configuration from an explicit path, creating a
// default file when none exists.
func LoadConfigFile(filename string) (*Config, bool, error) {
	configCreated := false
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		if err := createDefaultConfig(filename); err != nil {
			return nil, false, fmt.Errorf("failed to create default config: %w", err)
		}
		configCreated = true
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, configCreated, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, configCreated, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, configCreated, nil
}

// createDefaultConfig creates a default configuration file.
func createDefaultConfig(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
