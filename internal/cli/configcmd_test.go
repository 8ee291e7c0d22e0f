package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/semmy-space/keyenv/internal/config"
	"github.com/semmy-space/keyenv/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T) (*config.Config, *Streams, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.json5"))
	require.NoError(t, err)

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return cfg, &Streams{Out: out, Err: errOut}, out, errOut
}

func TestConfigSetGetUnset(t *testing.T) {
	cfg, streams, out, errOut := newTestConfig(t)

	require.NoError(t, (&ConfigSetCmd{Key: "backend", Value: "file"}).Run(cfg, streams))
	assert.Equal(t, "Set backend = file\n", errOut.String())

	reloaded, err := config.LoadFrom(cfg.Path())
	require.NoError(t, err)
	assert.Equal(t, "file", reloaded.Backend)

	require.NoError(t, (&ConfigGetCmd{Key: "backend"}).Run(reloaded, streams))
	assert.Equal(t, "file\n", out.String())

	errOut.Reset()
	require.NoError(t, (&ConfigUnsetCmd{Key: "backend"}).Run(reloaded, streams))
	assert.Equal(t, "Unset backend\n", errOut.String())
	assert.Empty(t, reloaded.Backend)
}

func TestConfigSetPackageNameWarns(t *testing.T) {
	cfg, streams, _, errOut := newTestConfig(t)

	require.NoError(t, (&ConfigSetCmd{Key: "package_name", Value: "envtool"}).Run(cfg, streams))
	assert.Contains(t, errOut.String(), `profiles stored under package "keyenv" are no longer visible`)
	assert.Equal(t, "envtool", cfg.ResolvedPackageName())
}

func TestConfigErrors(t *testing.T) {
	cfg, streams, _, _ := newTestConfig(t)

	tests := []struct {
		name string
		run  func() error
		msg  string
	}{
		{name: "get unknown", run: func() error { return (&ConfigGetCmd{Key: "region"}).Run(cfg, streams) }, msg: "Unknown config key: region"},
		{name: "set unknown", run: func() error { return (&ConfigSetCmd{Key: "region", Value: "us"}).Run(cfg, streams) }, msg: "Unknown config key: region"},
		{name: "unset unknown", run: func() error { return (&ConfigUnsetCmd{Key: "region"}).Run(cfg, streams) }, msg: "Unknown config key: region"},
		{name: "set bad enum", run: func() error { return (&ConfigSetCmd{Key: "backend", Value: "vault"}).Run(cfg, streams) }, msg: "Failed to set config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cliErr := requireCLIError(t, tt.run())
			assert.Equal(t, output.ExitGeneral, cliErr.ExitCode)
			assert.Contains(t, cliErr.Message, tt.msg)
		})
	}
}

func TestConfigList(t *testing.T) {
	cfg, _, _, _ := newTestConfig(t)
	require.NoError(t, cfg.Set("default_output", "json"))

	var out bytes.Buffer
	fp := &FormatterProvider{Formatter: output.NewTo("plain", &out, &bytes.Buffer{}), Mode: "plain"}
	require.NoError(t, (&ConfigListConfigCmd{}).Run(cfg, fp))

	assert.Equal(t, "Key\tValue\nbackend\t\npackage_name\t\ndefault_output\tjson\nfile_dir\t\n", out.String())
}

func TestConfigPath(t *testing.T) {
	cfg, streams, out, errOut := newTestConfig(t)

	require.NoError(t, (&ConfigPathCmd{}).Run(cfg, streams))
	assert.Equal(t, cfg.Path()+"\n", out.String())
	assert.Contains(t, errOut.String(), "does not exist yet")
}
