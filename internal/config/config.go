package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mdrepo/mdrmeta/internal/metadata"
	"github.com/mdrepo/mdrmeta/pkg/mdrmeta"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Environment variables that override the file.
const (
	EnvSchema    = mdrmeta.EnvPrefix + "SCHEMA"
	EnvLogFormat = mdrmeta.EnvPrefix + "LOG_FORMAT"
	EnvColor     = mdrmeta.EnvPrefix + "COLOR"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// TemperatureBounds overrides one or both ends of a version's Kelvin range.
type TemperatureBounds struct {
	Min *int `yaml:"min,omitempty"`
	Max *int `yaml:"max,omitempty"`
}

type TemperatureConfig struct {
	Legacy *TemperatureBounds `yaml:"legacy,omitempty"`
	V1     *TemperatureBounds `yaml:"v1,omitempty"`
	V2     *TemperatureBounds `yaml:"v2,omitempty"`
}

type ProjectConfig struct {
	Schema       string            `yaml:"schema,omitempty"`
	InputFormat  string            `yaml:"input_format,omitempty"`
	OutputFormat string            `yaml:"output_format,omitempty"`
	LogFormat    string            `yaml:"log_format,omitempty"`
	Color        string            `yaml:"color,omitempty"`
	Temperature  TemperatureConfig `yaml:"temperature,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *ProjectConfig {
	return &ProjectConfig{
		Schema:       string(metadata.SchemaV1),
		InputFormat:  "auto",
		OutputFormat: string(metadata.FormatTOML),
		LogFormat:    "text",
		Color:        ColorAuto,
	}
}

// Load reads ConfigFileName from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, mdrmeta.ConfigFileName))
}

// LoadFile reads a configuration file, expanding ${VAR} references first.
// Unset keys keep their Default values.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	expanded := os.ExpandEnv(string(data))
	if strings.TrimSpace(expanded) != "" {
		dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s: %v", mdrmeta.ErrInvalidConfig, path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads .env from the working directory, then the configuration at
// path (or ConfigFileName in the working directory when path is empty), then
// applies environment overrides. A missing default file yields Default();
// a missing explicit path is an error.
func Resolve(path string) (*ProjectConfig, error) {
	_ = godotenv.Load()

	explicit := path != ""
	if !explicit {
		path = mdrmeta.ConfigFileName
	}

	cfg, err := LoadFile(path)
	switch {
	case errors.Is(err, ErrConfigNotFound) && !explicit:
		cfg = Default()
	case errors.Is(err, ErrConfigNotFound):
		return nil, fmt.Errorf("%w: %s: %v", mdrmeta.ErrInvalidConfig, path, err)
	case err != nil:
		return nil, err
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from MDRMETA_* environment variables.
func (c *ProjectConfig) ApplyEnv() {
	if v := os.Getenv(EnvSchema); v != "" {
		c.Schema = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv(EnvColor); v != "" {
		c.Color = v
	}
}

// Validate checks every field, wrapping failures with mdrmeta.ErrInvalidConfig.
func (c *ProjectConfig) Validate() error {
	if _, err := metadata.ParseSchemaVersion(c.Schema); err != nil {
		return fmt.Errorf("%w: schema: %v", mdrmeta.ErrInvalidConfig, err)
	}
	if _, err := metadata.ParseFormat(c.InputFormat); err != nil {
		return fmt.Errorf("%w: input_format: %v", mdrmeta.ErrInvalidConfig, err)
	}
	if _, err := c.Output(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log_format: unknown value %q (expected text or json)", mdrmeta.ErrInvalidConfig, c.LogFormat)
	}
	switch strings.ToLower(c.Color) {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color: unknown value %q (expected auto, always or never)", mdrmeta.ErrInvalidConfig, c.Color)
	}
	for _, v := range []metadata.SchemaVersion{metadata.SchemaLegacy, metadata.SchemaV1, metadata.SchemaV2} {
		r := c.Rules(v).Temperature
		if r.Min > r.Max {
			return fmt.Errorf("%w: temperature.%s: min %d exceeds max %d", mdrmeta.ErrInvalidConfig, v, r.Min, r.Max)
		}
	}
	return nil
}

// Version returns the configured schema version.
func (c *ProjectConfig) Version() metadata.SchemaVersion {
	v, err := metadata.ParseSchemaVersion(c.Schema)
	if err != nil {
		return metadata.SchemaV1
	}
	return v
}

// Input returns the configured input format.
func (c *ProjectConfig) Input() metadata.Format {
	f, _ := metadata.ParseFormat(c.InputFormat)
	return f
}

// Output returns the configured output format. Auto is not an output format.
func (c *ProjectConfig) Output() (metadata.Format, error) {
	f, err := metadata.ParseFormat(c.OutputFormat)
	if err != nil || f == metadata.FormatAuto {
		if c.OutputFormat == "" {
			return metadata.FormatTOML, nil
		}
		return metadata.FormatAuto, fmt.Errorf("%w: output_format: unknown value %q (expected json or toml)", mdrmeta.ErrInvalidConfig, c.OutputFormat)
	}
	return f, nil
}

// Rules returns the validator parameters for version with any configured
// temperature override applied.
func (c *ProjectConfig) Rules(version metadata.SchemaVersion) metadata.Rules {
	rules := metadata.DefaultRules(version)

	var bounds *TemperatureBounds
	switch version {
	case metadata.SchemaLegacy:
		bounds = c.Temperature.Legacy
	case metadata.SchemaV1:
		bounds = c.Temperature.V1
	case metadata.SchemaV2:
		bounds = c.Temperature.V2
	}
	if bounds != nil {
		if bounds.Min != nil {
			rules.Temperature.Min = *bounds.Min
		}
		if bounds.Max != nil {
			rules.Temperature.Max = *bounds.Max
		}
	}
	return rules
}
