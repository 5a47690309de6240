package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/socialgraph/pkg/logging"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, StylePlain, cfg.Output.Style)
	assert.Equal(t, DiagnosticsStdout, cfg.Output.Diagnostics)
	assert.Equal(t, logging.WarnLevel, cfg.Level())
	assert.Equal(t, os.Stdout, cfg.DiagnosticsWriter(os.Stdout, os.Stderr))
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`
log_level: debug
output:
  style: styled
metrics:
  enabled: true
`))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, StyleStyled, cfg.Output.Style)
	assert.Equal(t, DiagnosticsStdout, cfg.Output.Diagnostics, "unset keys keep defaults")
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 5, cfg.GraphQL.MaxDepth)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse(strings.NewReader("colour: red\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode config")
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad style", func(c *Config) { c.Output.Style = "fancy" }, "output.style"},
		{"bad diagnostics", func(c *Config) { c.Output.Diagnostics = "file" }, "output.diagnostics"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, `unknown level "loud"`},
		{"empty level", func(c *Config) { c.LogLevel = "" }, "log_level: required"},
		{"depth zero", func(c *Config) { c.GraphQL.MaxDepth = 0 }, "graphql.max_depth"},
		{"missing seed", func(c *Config) { c.SeedFile = "/does/not/exist.yaml" }, "seed_file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultConfig()
	env := map[string]string{EnvLogLevel: "error", EnvStyle: StyleStyled}
	cfg.ApplyEnv(func(k string) string { return env[k] })

	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, StyleStyled, cfg.Output.Style)
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvStyle, "")

	dir := t.TempDir()
	seedPath := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte("people: [a]\n"), 0o600))

	cfgPath := filepath.Join(dir, "config.yaml")
	body := "seed_file: " + seedPath + "\noutput:\n  diagnostics: stderr\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o600))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, seedPath, cfg.SeedFile)
	assert.Equal(t, os.Stderr, cfg.DiagnosticsWriter(os.Stdout, os.Stderr))
}

func TestLoad_NoPath(t *testing.T) {
	t.Setenv(EnvLogLevel, "info")
	t.Setenv(EnvStyle, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv(EnvStyle, "neon")
	_, err = Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.style")
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Style = "fancy"
	cfg.GraphQL.MaxDepth = 99

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config has 2 problems")
	assert.Contains(t, err.Error(), "output.style")
	assert.Contains(t, err.Error(), "graphql.max_depth")
}
