// Package config loads socialgraph settings from YAML with environment
// overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/socialgraph/pkg/logging"
	"github.com/dd0wney/socialgraph/pkg/validation"
)

// Output styles
const (
	StylePlain  = "plain"
	StyleStyled = "styled"
)

// Diagnostics destinations
const (
	DiagnosticsStdout = "stdout"
	DiagnosticsStderr = "stderr"
)

// Environment overrides
const (
	EnvLogLevel = "LOG_LEVEL"
	EnvStyle    = "SOCIALGRAPH_STYLE"
)

// Config holds runtime settings for the CLI and TUI.
type Config struct {
	LogLevel string        `yaml:"log_level"`
	SeedFile string        `yaml:"seed_file"`
	Output   OutputConfig  `yaml:"output"`
	Metrics  MetricsConfig `yaml:"metrics"`
	GraphQL  GraphQLConfig `yaml:"graphql"`
}

// OutputConfig controls how the listing and notices are written.
type OutputConfig struct {
	Style       string `yaml:"style"`
	Diagnostics string `yaml:"diagnostics"`
}

// MetricsConfig controls the metrics dump at exit.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// GraphQLConfig limits in-process queries.
type GraphQLConfig struct {
	MaxDepth int `yaml:"max_depth"`
}

// DefaultConfig reproduces the plain demo output.
func DefaultConfig() Config {
	return Config{
		LogLevel: "warn",
		Output: OutputConfig{
			Style:       StylePlain,
			Diagnostics: DiagnosticsStdout,
		},
		GraphQL: GraphQLConfig{
			MaxDepth: 5,
		},
	}
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Load reads path (if non-empty), applies environment overrides and validates
// the result.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if cfg, err = Parse(bytes.NewReader(data)); err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
	}

	cfg.ApplyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables looked up with getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := getenv(EnvStyle); v != "" {
		c.Output.Style = v
	}
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	return validation.NewConfigValidator("Config").
		Required("log_level", c.LogLevel).
		Custom("log_level", func() error {
			if c.LogLevel != "" && !logging.ValidLevel(c.LogLevel) {
				return fmt.Errorf("unknown level %q", c.LogLevel)
			}
			return nil
		}).
		OneOf("output.style", c.Output.Style, []string{StylePlain, StyleStyled}).
		OneOf("output.diagnostics", c.Output.Diagnostics, []string{DiagnosticsStdout, DiagnosticsStderr}).
		RangeInt("graphql.max_depth", c.GraphQL.MaxDepth, 1, 20).
		When(c.SeedFile != "", func(cv *validation.ConfigValidator) {
			cv.Custom("seed_file", func() error {
				_, err := os.Stat(c.SeedFile)
				return err
			})
		}).
		Validate()
}

// Level returns the parsed log level.
func (c Config) Level() logging.Level {
	return logging.ParseLevel(c.LogLevel)
}

// DiagnosticsWriter picks the stream rejection notices go to.
func (c Config) DiagnosticsWriter(stdout, stderr io.Writer) io.Writer {
	if c.Output.Diagnostics == DiagnosticsStderr {
		return stderr
	}
	return stdout
}
