// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Input paths
	Profile  string `json:"profile,omitempty"`  // Path to student profile JSON file
	Claims   string `json:"claims,omitempty"`   // Path to pre-normalized claims JSON file
	Catalog  string `json:"catalog,omitempty"`  // Path to listing catalog JSON file
	Criteria string `json:"criteria,omitempty"` // Path to eligibility criteria JSON file

	// Listing source
	CatalogURL string `json:"catalog_url,omitempty"` // URL of an HTML listing catalog page

	// Behavior
	Limit       int    `json:"limit,omitempty"`        // Maximum results to return
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for document analysis
	Model       string `json:"model,omitempty"`        // Gemini model name override
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Port        int    `json:"port,omitempty"`         // HTTP server port
	Verbose     bool   `json:"verbose,omitempty"`      // Print the full match report
	JSONLogs    bool   `json:"json_logs,omitempty"`    // Emit JSON-encoded logs
	Debug       bool   `json:"debug,omitempty"`        // Enable debug logging
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
// Required fields are not checked here; CLI flag validation handles those
// after merging.
func (c *Config) Validate() error {
	if c.Catalog != "" && c.CatalogURL != "" {
		return fmt.Errorf("config error: 'catalog' and 'catalog_url' are mutually exclusive")
	}
	if c.Limit < 0 {
		return fmt.Errorf("config error: 'limit' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}

	for _, path := range []string{c.Profile, c.Claims, c.Catalog, c.Criteria} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: file not found: %s", path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.Claims == "" {
		result.Claims = defaults.Claims
	}
	if result.Catalog == "" {
		result.Catalog = defaults.Catalog
	}
	if result.Criteria == "" {
		result.Criteria = defaults.Criteria
	}
	if result.CatalogURL == "" {
		result.CatalogURL = defaults.CatalogURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Limit == 0 {
		result.Limit = defaults.Limit
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}
	if !result.JSONLogs {
		result.JSONLogs = defaults.JSONLogs
	}
	if !result.Debug {
		result.Debug = defaults.Debug
	}

	return result
}
