// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// configFileEnv names the environment variable holding the config file path.
const configFileEnv = "MCP_BUNDLE_CONFIG_FILE"

// defaultMaxInputBytes caps tool input size when no config overrides it.
const defaultMaxInputBytes = 4 << 20

// Config represents the MCP server configuration structure.
// It contains default settings for bundle parsing operations.
//
// The configuration can be loaded from a JSON or YAML file specified by the
// MCP_BUNDLE_CONFIG_FILE environment variable, with defaults applied for any
// missing values. Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Defaults: Default settings for bundle parsing operations
	Defaults struct {
		// Format: Default output format for parse results ("json" or "table")
		Format string `json:"format" yaml:"format"`
		// MaxInputBytes: Upper bound on accepted certificate input size
		MaxInputBytes int `json:"maxInputBytes" yaml:"maxInputBytes"`
	} `json:"defaults" yaml:"defaults"`
}

// detectConfigFormat determines the configuration file format based on file
// extension, using case-insensitive matching for cross-platform compatibility.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// loadConfig loads MCP server configuration from a JSON or YAML file or
// applies defaults.
//
// Configuration Priority:
//  1. Default values are set
//  2. MCP_BUNDLE_CONFIG_FILE environment variable is checked if configPath is empty
//  3. Config file values override defaults (if file exists and is valid)
func loadConfig(configPath string) (*Config, error) {
	config := &Config{}

	// Set defaults
	config.Defaults.Format = "json"
	config.Defaults.MaxInputBytes = defaultMaxInputBytes

	// Check environment variable for config file path if not provided
	if configPath == "" {
		configPath = os.Getenv(configFileEnv)
	}

	// Try to load from file if path is provided
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Detect format and unmarshal accordingly
		format := detectConfigFormat(configPath)
		if err := unmarshalConfig(data, config, format); err != nil {
			return nil, err
		}

		// Validate and set defaults for invalid values
		if config.Defaults.Format != "json" && config.Defaults.Format != "table" {
			config.Defaults.Format = "json"
		}
		if config.Defaults.MaxInputBytes <= 0 {
			config.Defaults.MaxInputBytes = defaultMaxInputBytes
		}
	}

	return config, nil
}
