package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/xorsolve/minweight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// TestLoadConfig_Defaults returns built-in values without a file.
func TestLoadConfig_Defaults(t *testing.T) {
	c, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, minweight.DefaultExhaustiveLimit, c.Search.ExhaustiveLimit)
	assert.Equal(t, "auto", c.Search.Strategy)
	assert.Equal(t, 1, c.Batch.Workers)
	assert.Equal(t, "info", c.Log.Level)
	assert.NoError(t, c.Validate())
}

// TestLoadConfig_FileOverridesDefaults keeps unspecified keys at their defaults.
func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := writeFile(t, "cfg.yaml", `
search:
  strategy: meet_in_the_middle
batch:
  workers: 4
log:
  format: json
`)
	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "meet_in_the_middle", c.Search.Strategy)
	assert.Equal(t, minweight.DefaultExhaustiveLimit, c.Search.ExhaustiveLimit)
	assert.Equal(t, 4, c.Batch.Workers)
	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, "info", c.Log.Level)
}

// TestLoadConfig_Invalid rejects bad values and unreadable files.
func TestLoadConfig_Invalid(t *testing.T) {
	for name, body := range map[string]string{
		"workers":  "batch:\n  workers: 0\n",
		"limit":    "search:\n  exhaustive_limit: 99\n",
		"strategy": "search:\n  strategy: greedy\n",
		"format":   "log:\n  format: xml\n",
		"yaml":     "search: [unclosed\n",
	} {
		_, err := LoadConfig(writeFile(t, name+".yaml", body))
		assert.Error(t, err, name)
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
