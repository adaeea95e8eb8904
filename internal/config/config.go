// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags or environment variables.
type Config struct {
	// Inputs
	Resume string `json:"resume,omitempty"` // Path to resume file (.pdf/.docx/.txt)
	JD     string `json:"jd,omitempty"`     // Path to job description text file
	JDURL  string `json:"jd_url,omitempty"` // URL to fetch job description from

	// Analysis
	HoursPerWeek int `json:"hours_per_week,omitempty"` // Study hours available per week (1-80)

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for the noun-phrase recognizer
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Use headless browser for SPA job boards
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed output
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.JD != "" && c.JDURL != "" {
		return fmt.Errorf("config error: 'jd' and 'jd_url' are mutually exclusive")
	}

	if c.HoursPerWeek < 0 || c.HoursPerWeek > 80 {
		return fmt.Errorf("config error: 'hours_per_week' must be between 1 and 80")
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.JD != "" {
		if _, err := os.Stat(c.JD); os.IsNotExist(err) {
			return fmt.Errorf("config error: jd file not found: %s", c.JD)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.JD == "" {
		result.JD = defaults.JD
	}
	if result.JDURL == "" {
		result.JDURL = defaults.JDURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.HoursPerWeek == 0 {
		if defaults.HoursPerWeek > 0 {
			result.HoursPerWeek = defaults.HoursPerWeek
		} else {
			result.HoursPerWeek = 10 // Default study pace
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
