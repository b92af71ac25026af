package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	opts, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DedupeRename, opts.Dedupe)
	assert.Equal(t, FormatAuto, opts.Format)
	assert.Equal(t, EncodingWindows949, opts.Encoding)
	assert.Equal(t, "warn", opts.LogLevel)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("D2TXT_DEDUPE", "reject")
	t.Setenv("D2TXT_FORMAT", "ini")

	opts, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DedupeReject, opts.Dedupe)
	assert.Equal(t, FormatINI, opts.Format)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d2txt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dedupe: reject\nformat: toml\n"), 0o644))

	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DedupeReject, opts.Dedupe)
	assert.Equal(t, FormatTOML, opts.Format)
}

func TestMissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	opts := DefaultOptions()
	require.NoError(t, opts.Validate())

	bad := *DefaultOptions()
	bad.Dedupe = "upsert"
	assert.Error(t, bad.Validate())

	bad = *DefaultOptions()
	bad.Format = "yaml"
	assert.Error(t, bad.Validate())

	bad = *DefaultOptions()
	bad.Encoding = "latin-1"
	assert.Error(t, bad.Validate())

	bad = *DefaultOptions()
	bad.LogEncoding = "xml"
	assert.Error(t, bad.Validate())
}
