// Package config provides configuration loading and validation for CoverCraft.
package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Defaults for the generation pipeline. The token ceilings track the context
// window of the configured completion model.
const (
	DefaultResumeMaxTokens  = 8000
	DefaultJobDescMaxTokens = 3000
	DefaultTotalMaxTokens   = 16000
	DefaultModel            = "gemini-2.5-flash"
	DefaultMaxOutputTokens  = 1000
	DefaultCacheTTL         = 3600 // seconds
	DefaultSessionTTL       = 7200 // seconds
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults. The API
// credential is never read from the config file, only from the environment.
type Config struct {
	// Token budget
	ResumeMaxTokens  int `json:"resume_max_tokens,omitempty"`   // Admission ceiling for the resume alone
	JobDescMaxTokens int `json:"job_desc_max_tokens,omitempty"` // Admission ceiling for the job description alone
	TotalMaxTokens   int `json:"total_max_tokens,omitempty"`    // Combined safe ceiling

	// Generation
	Model           string `json:"model,omitempty"`             // Completion model name
	MaxOutputTokens int    `json:"max_output_tokens,omitempty"` // Cap on generated letter length
	MockFallback    bool   `json:"mock_fallback,omitempty"`     // Serve a mock letter on service failure instead of an error

	// Cache and sessions
	CacheTTLSeconds   int `json:"cache_ttl_seconds,omitempty"`   // Letter cache TTL
	SessionTTLSeconds int `json:"session_ttl_seconds,omitempty"` // Idle session expiry

	// Uploads
	SupportedExtensions []string `json:"supported_extensions,omitempty"` // Allowed resume file extensions

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser for SPA job posting pages
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information
}

// Default returns the configuration with all defaults applied.
func Default() *Config {
	return &Config{
		ResumeMaxTokens:     DefaultResumeMaxTokens,
		JobDescMaxTokens:    DefaultJobDescMaxTokens,
		TotalMaxTokens:      DefaultTotalMaxTokens,
		Model:               DefaultModel,
		MaxOutputTokens:     DefaultMaxOutputTokens,
		CacheTTLSeconds:     DefaultCacheTTL,
		SessionTTLSeconds:   DefaultSessionTTL,
		SupportedExtensions: []string{"pdf"},
	}
}

// Load loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
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

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. CLI flags and config files only need to set what they override.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ResumeMaxTokens == 0 {
		result.ResumeMaxTokens = defaults.ResumeMaxTokens
	}
	if result.JobDescMaxTokens == 0 {
		result.JobDescMaxTokens = defaults.JobDescMaxTokens
	}
	if result.TotalMaxTokens == 0 {
		result.TotalMaxTokens = defaults.TotalMaxTokens
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.MaxOutputTokens == 0 {
		result.MaxOutputTokens = defaults.MaxOutputTokens
	}
	if result.CacheTTLSeconds == 0 {
		result.CacheTTLSeconds = defaults.CacheTTLSeconds
	}
	if result.SessionTTLSeconds == 0 {
		result.SessionTTLSeconds = defaults.SessionTTLSeconds
	}
	if len(result.SupportedExtensions) == 0 {
		result.SupportedExtensions = defaults.SupportedExtensions
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Validate checks that the configuration has valid values. Ceilings must be
// positive; a total ceiling smaller than the sum of the per-part ceilings is
// legal but makes the combined check the binding one, so it only warns.
func (c *Config) Validate() error {
	if c.ResumeMaxTokens <= 0 {
		return fmt.Errorf("config error: 'resume_max_tokens' must be positive")
	}
	if c.JobDescMaxTokens <= 0 {
		return fmt.Errorf("config error: 'job_desc_max_tokens' must be positive")
	}
	if c.TotalMaxTokens <= 0 {
		return fmt.Errorf("config error: 'total_max_tokens' must be positive")
	}
	if c.MaxOutputTokens <= 0 {
		return fmt.Errorf("config error: 'max_output_tokens' must be positive")
	}
	if c.CacheTTLSeconds < 0 {
		return fmt.Errorf("config error: 'cache_ttl_seconds' must be non-negative")
	}
	if c.Model == "" {
		return fmt.Errorf("config error: 'model' must be set")
	}
	if len(c.SupportedExtensions) == 0 {
		return fmt.Errorf("config error: 'supported_extensions' must not be empty")
	}

	if c.TotalMaxTokens < c.ResumeMaxTokens+c.JobDescMaxTokens {
		log.Printf("[config] Warning: total_max_tokens (%d) is less than resume_max_tokens + job_desc_max_tokens (%d); the combined ceiling will reject some inputs that pass the per-part checks",
			c.TotalMaxTokens, c.ResumeMaxTokens+c.JobDescMaxTokens)
	}

	return nil
}

// CacheTTL returns the letter cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// SessionTTL returns the idle session expiry as a duration.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLSeconds) * time.Second
}
