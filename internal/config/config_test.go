package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 9, cfg.PageSize)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, 10000, cfg.MaxSessions)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("PAGE_SIZE", "4")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 4, cfg.PageSize)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("page_size: 6\nseed_path: seed.yaml\n"), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 6, cfg.PageSize)
	assert.Equal(t, "seed.yaml", cfg.SeedPath)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_PATH", "/does/not/exist.yaml")

	_, err := Load()

	assert.Error(t, err)
}

func TestLoad_RejectsInvalidPageSize(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("PAGE_SIZE", "0")

	_, err := Load()

	assert.ErrorContains(t, err, "page_size")
}

func TestValidate(t *testing.T) {
	valid := Config{PageSize: 9, MaxUploadBytes: 1, SessionTTL: time.Minute, MaxSessions: 1}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"page size", func(c *Config) { c.PageSize = -1 }},
		{"upload limit", func(c *Config) { c.MaxUploadBytes = 0 }},
		{"session ttl", func(c *Config) { c.SessionTTL = 0 }},
		{"session cap", func(c *Config) { c.MaxSessions = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
