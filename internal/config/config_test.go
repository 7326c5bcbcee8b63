package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadNoPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	body := `
addr: ":9999"
db_path: /tmp/test.db
cache_size: 128
breaker_failures: 3
breaker_cooldown_seconds: 10
anthropic_model: claude-sonnet-4-5-20250929
custom_rules:
  - category: subscriptions
    contains: ["zorbly", "acme plus"]
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, 128, cfg.CacheSize)
	assert.Equal(t, uint32(3), cfg.BreakerFailures)
	assert.Equal(t, 10, cfg.BreakerCooldownSeconds)
	require.Len(t, cfg.CustomRules, 1)
	assert.Equal(t, "subscriptions", cfg.CustomRules[0].Category)
	assert.Equal(t, []string{"zorbly", "acme plus"}, cfg.CustomRules[0].Contains)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: [unclosed"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadEmptyFieldsFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache_size: 64"), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Addr, cfg.Addr)
	assert.Equal(t, Default().DBPath, cfg.DBPath)
	assert.Equal(t, 64, cfg.CacheSize)
}
