package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	origConfig := Config
	origDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() {
		Config = origConfig
		_ = os.Chdir(origDir)
	})
	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	return dir
}

// TestConfig_LoadFromFile loads the repository's config.yml
func TestConfig_LoadFromFile(t *testing.T) {
	origConfig := Config
	defer func() { Config = origConfig }()

	err := LoadAppConfigFrom("../config.yml")
	require.NoError(t, err)

	assert.Equal(t, 16181, Config.Server.Port)
	assert.Equal(t, "text", Config.Output.Format)
	assert.NotEmpty(t, Config.Input.BaseRequestsPath)
}

func TestConfig_MissingFile(t *testing.T) {
	chdirTemp(t)

	err := LoadAppConfig()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_InvalidYAML(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("invalid: yaml: content: [[["), 0644))

	assert.Error(t, LoadAppConfig())
}

func TestConfig_EmptyFileUsesDefaults(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(""), 0644))

	require.NoError(t, LoadAppConfig())
	assert.Equal(t, Default(), Config)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    AppConfig
		wantErr bool
	}{
		{
			name: "full",
			yaml: "server:\n  port: 8080\n  allowedOrigins: [\"http://a\"]\ninput:\n  baseRequests: base.txt\noutput:\n  format: json\n",
			want: AppConfig{
				Server: ServerConfig{Port: 8080, AllowedOrigins: []string{"http://a"}},
				Input:  InputConfig{BaseRequestsPath: "base.txt"},
				Output: OutputConfig{Format: "json"},
			},
		},
		{
			name: "defaults fill gaps",
			yaml: "input:\n  baseRequests: base.txt\n",
			want: AppConfig{
				Server: ServerConfig{Port: 16181},
				Input:  InputConfig{BaseRequestsPath: "base.txt"},
				Output: OutputConfig{Format: "text"},
			},
		},
		{name: "bad format", yaml: "output:\n  format: xml\n", wantErr: true},
		{name: "negative port", yaml: "server:\n  port: -1\n", wantErr: true},
		{name: "port out of range", yaml: "server:\n  port: 70000\n", wantErr: true},
		{name: "blank origin", yaml: "server:\n  allowedOrigins: [\"\"]\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.yaml))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvFormat, "json")
	t.Setenv(EnvBaseRequests, "/data/base.txt")

	got, err := Parse([]byte("server:\n  port: 8080\n"))
	require.NoError(t, err)
	assert.Equal(t, 9090, got.Server.Port)
	assert.Equal(t, "json", got.Output.Format)
	assert.Equal(t, "/data/base.txt", got.Input.BaseRequestsPath)

	t.Setenv(EnvPort, "eighty")
	_, err = Parse(nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(Default()))

	cfg := Default()
	cfg.Output.Format = "xml"
	assert.Error(t, Validate(cfg))

	cfg = Default()
	cfg.Server.Port = 70000
	assert.Error(t, Validate(cfg))
}

func TestFromEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv(EnvFormat, "json")

	got, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "json", got.Output.Format)
	assert.Equal(t, 16181, got.Server.Port)
}

func TestLoadAppConfig_DotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("server:\n  port: 8080\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvPort+"=7070\n"), 0644))
	t.Cleanup(func() { _ = os.Unsetenv(EnvPort) })

	require.NoError(t, LoadAppConfig())
	assert.Equal(t, 7070, Config.Server.Port)
}
