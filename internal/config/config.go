// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package config provides configuration management.
package config

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"

	"unitcalc/internal/errors"
	"unitcalc/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Precision is the number of decimal places shown for floating point results
	Precision int `json:"precision"`

	// Definitions is an optional file of extra unit definition lines,
	// loaded after the built-in table
	Definitions string `json:"definitions,omitempty"`

	History HistoryConfig `json:"history"`

	Logging logging.Config `json:"logging"`
}

// HistoryConfig controls the conversion history database
type HistoryConfig struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

// DefaultPath is where Load looks when no file is named.
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".unitcalc.json")
}

func Default() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Precision: 4,
		History: HistoryConfig{
			Enabled: true,
			Path:    filepath.Join(homeDir, "data", "unit-conversions.sqlite3"),
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads configuration from path; a missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Wrap(errors.TypeConfig, err, "failed to read config").WithContext("path", path)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(errors.TypeConfig, err, "failed to parse config").WithContext("path", path)
	}
	if config.Precision < 0 {
		return nil, errors.Newf(errors.TypeConfig, "precision must not be negative, got %d", config.Precision).WithContext("path", path)
	}

	return config, nil
}

// Save writes the configuration, creating its directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefinitionLines returns the lines of the extra definitions file, or
// nothing when none is configured.
func (c *Config) DefinitionLines() ([]string, error) {
	if c.Definitions == "" {
		return nil, nil
	}

	file, err := os.Open(c.Definitions)
	if err != nil {
		return nil, errors.Wrap(errors.TypeConfig, err, "failed to open definitions").WithContext("path", c.Definitions)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.TypeConfig, err, "failed to read definitions").WithContext("path", c.Definitions)
	}

	return lines, nil
}
