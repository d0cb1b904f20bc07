package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"LATER_THEME", "LATER_LOG_LEVEL", "LATER_PROMPT"} {
		t.Setenv(k, "")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, "later> ", cfg.Prompt)
	assert.Equal(t, "classic", cfg.Theme)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
prompt = "todo$ "
theme = "mono"
history_file = ""
log_level = "debug"
log_format = "json"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Prompt:      "todo$ ",
		Theme:       "mono",
		HistoryFile: "",
		LogLevel:    "debug",
		LogFormat:   "json",
	}, cfg)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`theme = "mono"`), 0o644))
	t.Setenv("LATER_THEME", "neon")
	t.Setenv("LATER_HISTORY_FILE", "/tmp/h")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, "/tmp/h", cfg.HistoryFile)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad toml", content: `theme = `},
		{name: "unknown theme", content: `theme = "sparkly"`},
		{name: "unknown level", content: `log_level = "loud"`},
		{name: "unknown format", content: `log_format = "xml"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
