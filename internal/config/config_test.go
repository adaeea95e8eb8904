package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"jd_url": "https://example.com/job",
		"hours_per_week": 15,
		"use_browser": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/job", cfg.JDURL)
	assert.Equal(t, 15, cfg.HoursPerWeek)
	assert.True(t, cfg.UseBrowser)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_BadJSON(t *testing.T) {
	path := writeTempConfig(t, `{not json`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_MutuallyExclusiveJD(t *testing.T) {
	cfg := &Config{JD: "jd.txt", JDURL: "https://example.com/job"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_HoursRange(t *testing.T) {
	assert.Error(t, (&Config{HoursPerWeek: -1}).Validate())
	assert.Error(t, (&Config{HoursPerWeek: 100}).Validate())
	assert.NoError(t, (&Config{HoursPerWeek: 40}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{JDURL: "https://example.com/job"}
	merged := cfg.MergeWithDefaults(Config{
		APIKey:       "default-key",
		HoursPerWeek: 20,
		JDURL:        "https://example.com/other",
	})

	assert.Equal(t, "https://example.com/job", merged.JDURL, "explicit value wins")
	assert.Equal(t, "default-key", merged.APIKey)
	assert.Equal(t, 20, merged.HoursPerWeek)
}

func TestMergeWithDefaults_FallbackHours(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})
	assert.Equal(t, 10, merged.HoursPerWeek)
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "48")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-secret", cfg.Secret)
	assert.Equal(t, 48, cfg.ExpirationHours)
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := NewJWTConfig()
	assert.Error(t, err)
}

func TestNewJWTConfig_InvalidHours(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "zero")
	_, err := NewJWTConfig()
	assert.Error(t, err)
}
