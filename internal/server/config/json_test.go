package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"endpoint_addr": "www.example:9000",
		"per_page":      2,
		"require_auth":  true,
	})

	t.Run("loads from flags", func(t *testing.T) {
		withArgs(t, "-c", pathFlag)

		cfg := defaults()
		parseJson(cfg)

		assert.Equal(t, "www.example:9000", cfg.EndpointAddr)
		assert.Equal(t, 2, cfg.PerPage)
		assert.True(t, cfg.RequireAuth)
		assert.Equal(t, "/api", cfg.BasePath)
	})

	t.Run("explicit false overrides", func(t *testing.T) {
		p := writeTempJSON(t, dir, "off.json", map[string]any{"require_auth": false})
		withArgs(t, "-config", p)

		cfg := defaults()
		cfg.RequireAuth = true
		parseJson(cfg)
		assert.False(t, cfg.RequireAuth)
	})

	t.Run("no flags → no changes", func(t *testing.T) {
		withArgs(t)

		cfg := defaults()
		parseJson(cfg)
		assert.Equal(t, defaults(), cfg)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		withArgs(t, "-config", bad)

		require.Panics(t, func() { parseJson(defaults()) })
	})
}
