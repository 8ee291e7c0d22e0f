package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json5")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path())
	assert.Empty(t, cfg.Backend)
	assert.Equal(t, DefaultPackageName, cfg.ResolvedPackageName())
	assert.Equal(t, DataDir(), cfg.ResolvedFileDir())
}

func TestLoadJSON5(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json5")
	data := `{
  // comments and trailing commas are fine
  backend: "file",
  package_name: "envtool",
  file_dir: "/tmp/keyenv",
}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Backend)
	assert.Equal(t, "envtool", cfg.ResolvedPackageName())
	assert.Equal(t, "/tmp/keyenv", cfg.ResolvedFileDir())
}

func TestLoadRejectsBadEnum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json5")
	require.NoError(t, os.WriteFile(path, []byte(`{backend: "vault"}`), 0600))

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid backend")
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json5")
	require.NoError(t, os.WriteFile(path, []byte(`{{{`), 0600))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestSetGetUnset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json5")
	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	require.NoError(t, cfg.Set("backend", "keyring"))
	require.NoError(t, cfg.Set("package_name", "tool"))

	reloaded, err := LoadFrom(path)
	require.NoError(t, err)
	value, err := reloaded.Get("backend")
	require.NoError(t, err)
	assert.Equal(t, "keyring", value)
	assert.Equal(t, "tool", reloaded.PackageName)

	require.NoError(t, reloaded.Unset("package_name"))
	reloaded, err = LoadFrom(path)
	require.NoError(t, err)
	assert.Empty(t, reloaded.PackageName)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestSetValidation(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json5"))
	require.NoError(t, err)

	err = cfg.Set("backend", "vault")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid backend")

	err = cfg.Set("region", "us")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")

	_, err = cfg.Get("path")
	assert.Error(t, err)
	assert.Error(t, cfg.Unset("nope"))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []string{"backend", "package_name", "default_output", "file_dir"}, Keys())
}

func TestUsername(t *testing.T) {
	name, err := Username()
	if err != nil {
		t.Skip("no user information in this environment")
	}
	assert.NotEmpty(t, name)
	assert.NotContains(t, name, `\`)
}
