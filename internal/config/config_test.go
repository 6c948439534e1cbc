package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvEndpoint, EnvQueryParam, EnvTimeout, EnvTheme, EnvLogFile, EnvListen} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "numeral.yaml")
	body := []byte("endpoint: https://roman.example.com/romannumeral\ntimeout: 3s\ntheme: Dark\nlogFile: /tmp/numeral.log\n")
	require.NoError(t, os.WriteFile(path, body, 0o644))

	t.Setenv(EnvQueryParam, "n")
	t.Setenv(EnvTimeout, "750ms")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://roman.example.com/romannumeral", cfg.Endpoint)
	assert.Equal(t, "n", cfg.QueryParam)
	assert.Equal(t, 750*time.Millisecond, cfg.Timeout)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "/tmp/numeral.log", cfg.LogFile)
	assert.Equal(t, DefaultListen, cfg.Listen)
	assert.NoError(t, cfg.Validate())
}

func TestLoadKeepsEndpointAsWritten(t *testing.T) {
	const endpoint = "https://roman.example.com/romannumeral/"

	clearEnv(t)
	path := filepath.Join(t.TempDir(), "numeral.yaml")
	require.NoError(t, os.WriteFile(path, []byte("endpoint: "+endpoint+"\n"), 0o644))
	fromFile, err := Load(path)
	require.NoError(t, err)

	clearEnv(t)
	t.Setenv(EnvEndpoint, endpoint)
	fromEnv, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, endpoint, fromFile.Endpoint)
	assert.Equal(t, fromFile.Endpoint, fromEnv.Endpoint)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadBadTimeoutEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvTimeout, "soon")

	_, err := Load("")
	assert.ErrorContains(t, err, EnvTimeout)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.Endpoint = "not a url"
	cfg.Theme = "sepia"
	cfg.Timeout = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Endpoint")
	assert.Contains(t, err.Error(), "Theme")
	assert.Contains(t, err.Error(), "Timeout")
}
