package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/userdesk/internal/directory"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"testbin"}, args...)
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, ":8080", c.EndpointAddr)
	assert.Equal(t, "/api", c.BasePath)
	assert.Equal(t, directory.DefaultPerPage, c.PerPage)
	assert.False(t, c.RequireAuth)
	assert.Equal(t, directory.DefaultToken, c.Token)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	chdir(t, t.TempDir())
	withArgs(t)

	c := LoadConfig()
	require.NotNil(t, c, "LoadConfig must not return nil")
	assert.Empty(t, cmp.Diff(defaults(), c))
}

func TestParseEnv_FileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "stub.env")
	require.NoError(t, os.WriteFile(envFile, []byte("DIRECTORY_PER_PAGE=4\nDIRECTORY_TOKEN=file-token\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv(EnvPerPage)
		os.Unsetenv(EnvToken)
	})
	t.Setenv(EnvRequireAuth, "true")
	withArgs(t, "-env", envFile)

	cfg := defaults()
	parseEnv(cfg)

	assert.Equal(t, 4, cfg.PerPage)
	assert.Equal(t, "file-token", cfg.Token)
	assert.True(t, cfg.RequireAuth)
}

func TestParseEnv_Malformed(t *testing.T) {
	chdir(t, t.TempDir())
	withArgs(t)

	t.Setenv(EnvPerPage, "six")
	require.Panics(t, func() { parseEnv(defaults()) })
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "127.0.0.1:9090", "-b", "/v1", "-p", "3", "-r=true", "-t", "tok", "-l", "debug"},
			expected: &Config{
				EndpointAddr: "127.0.0.1:9090",
				BasePath:     "/v1",
				PerPage:      3,
				RequireAuth:  true,
				Token:        "tok",
				LogLevel:     "debug",
			},
		},
		{name: "incorrect page size", args: []string{"-p", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withArgs(t, tt.args...)

			config := defaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
