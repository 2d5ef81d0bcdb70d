package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nxerrors "github.com/nxdevel/nx-misc/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Empty(t, cfg.Timezone)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.Equal(t, 20, cfg.Demo.Count)
	assert.Equal(t, 100*time.Millisecond, cfg.Demo.Interval)
	assert.NotEmpty(t, cfg.Demo.Message)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
timezone: Europe/Berlin
output:
  color: never
demo:
  count: 5
  interval: 250ms
  message: crunching
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Europe/Berlin", cfg.Timezone)
	assert.Equal(t, "never", cfg.Output.Color)
	assert.Equal(t, 5, cfg.Demo.Count)
	assert.Equal(t, 250*time.Millisecond, cfg.Demo.Interval)
	assert.Equal(t, "crunching", cfg.Demo.Message)
}

func TestLoadPartialMergesDefaults(t *testing.T) {
	path := writeConfig(t, "timezone: UTC\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.Equal(t, 20, cfg.Demo.Count)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, nxerrors.IsCode(err, nxerrors.ErrConfig))
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "output: [not a mapping\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, nxerrors.IsCode(err, nxerrors.ErrConfig))
}

func TestLoadInvalidColor(t *testing.T) {
	path := writeConfig(t, "output:\n  color: sometimes\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.color")
}

func TestLoadNegativeCount(t *testing.T) {
	path := writeConfig(t, "demo:\n  count: -3\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, nxerrors.IsCode(err, nxerrors.ErrConfig))
}

func TestFindExplicit(t *testing.T) {
	path := writeConfig(t, "timezone: UTC\n")

	found, err := Find(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFindExplicitMissing(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, nxerrors.IsCode(err, nxerrors.ErrConfig))
}

func TestFindCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("timezone: UTC\n"), 0o644))
	t.Chdir(dir)

	found, err := Find("")
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestLoadOrDefaultWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
