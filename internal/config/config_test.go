package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_AppliesDocumentedDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 8000, cfg.ResumeMaxTokens)
	assert.Equal(t, 3000, cfg.JobDescMaxTokens)
	assert.Equal(t, 16000, cfg.TotalMaxTokens)
	assert.Equal(t, 3600, cfg.CacheTTLSeconds)
	assert.Equal(t, []string{"pdf"}, cfg.SupportedExtensions)
	assert.False(t, cfg.MockFallback)
}

func TestLoad_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.json")
	content := `{"resume_max_tokens": 5000, "model": "gemini-2.5-pro", "use_browser": true}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.ResumeMaxTokens)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.True(t, cfg.UseBrowser)
	// Untouched fields stay zero until merged
	assert.Equal(t, 0, cfg.JobDescMaxTokens)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.json")
	assert.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestMergeWithDefaults_FillsZeroFields(t *testing.T) {
	cfg := &Config{ResumeMaxTokens: 5000}
	merged := cfg.MergeWithDefaults(*Default())

	assert.Equal(t, 5000, merged.ResumeMaxTokens) // explicit value wins
	assert.Equal(t, 3000, merged.JobDescMaxTokens)
	assert.Equal(t, 16000, merged.TotalMaxTokens)
	assert.Equal(t, DefaultModel, merged.Model)
	assert.Equal(t, []string{"pdf"}, merged.SupportedExtensions)
}

func TestValidate_Defaults(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidate_RejectsNonPositiveCeilings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero resume ceiling", func(c *Config) { c.ResumeMaxTokens = 0 }},
		{"negative job desc ceiling", func(c *Config) { c.JobDescMaxTokens = -1 }},
		{"zero total ceiling", func(c *Config) { c.TotalMaxTokens = 0 }},
		{"zero output tokens", func(c *Config) { c.MaxOutputTokens = 0 }},
		{"empty model", func(c *Config) { c.Model = "" }},
		{"no extensions", func(c *Config) { c.SupportedExtensions = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidate_InconsistentTotalIsNotFatal(t *testing.T) {
	cfg := Default()
	cfg.TotalMaxTokens = 4000 // less than 8000 + 3000

	// Logged as a warning, not rejected
	assert.NoError(t, cfg.Validate())
}

func TestTTLHelpers(t *testing.T) {
	cfg := Default()
	assert.Equal(t, time.Hour, cfg.CacheTTL())
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL())
}
