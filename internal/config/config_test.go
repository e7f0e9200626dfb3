package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ".py", cfg.Extension)
	assert.Empty(t, cfg.Include)
	assert.False(t, cfg.Verbose)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	content := `extension: .pyi
include:
  - "src/**"
exclude:
  - "**/*_test.pyi"
verbose: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, ".pyi", cfg.Extension)
	assert.Equal(t, []string{"src/**"}, cfg.Include)
	assert.Equal(t, []string{"**/*_test.pyi"}, cfg.Exclude)
	assert.True(t, cfg.Verbose)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GPI_EXTENSION", ".pyw")
	t.Setenv("GPI_EXCLUDE", "vendor/**, generated/**")
	t.Setenv("GPI_VERBOSE", "1")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	assert.Equal(t, ".pyw", cfg.Extension)
	assert.Equal(t, []string{"vendor/**", "generated/**"}, cfg.Exclude)
	assert.True(t, cfg.Verbose)
}

func TestValidate_RejectsBadExtension(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extension = "py"
	assert.Error(t, cfg.Validate())

	cfg.Extension = ""
	assert.Error(t, cfg.Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Include = []string{"app/**"}
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Extension, loaded.Extension)
	assert.Equal(t, cfg.Include, loaded.Include)
}
