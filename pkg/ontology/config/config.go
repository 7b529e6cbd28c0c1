package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/ecc/pkg/ontology"
	"github.com/cognicore/ecc/pkg/ontology/internalerr"
	"github.com/cognicore/ecc/pkg/ontology/paths"
)

// Config represents the project configuration
type Config struct {
	Input     string `yaml:"input"`     // TSV file with the ontology rows
	Output    string `yaml:"output"`    // directory to scaffold into
	Extension string `yaml:"extension"` // per-node file extension
	Index     string `yaml:"index"`     // SQLite index database
	LogLevel  string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Extension: paths.DefaultExtension,
		LogLevel:  "info",
	}
}

// LoadFile loads configuration from a YAML file on top of the defaults
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks the configuration for values the tool cannot use
func (c Config) Validate() error {
	if c.Extension != "" && !strings.HasPrefix(c.Extension, ".") {
		return fmt.Errorf("%w: extension %q must start with a dot", internalerr.ErrInvalidConfig, c.Extension)
	}
	if strings.ContainsAny(c.Extension, `/\`) {
		return fmt.Errorf("%w: extension %q must not contain a path separator", internalerr.ErrInvalidConfig, c.Extension)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// OntologyOptions returns the options for an ontology pass
func (c Config) OntologyOptions() ontology.Options {
	return ontology.Options{Extension: c.Extension}
}

// Level returns the configured log level
func (c Config) Level() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLevel parses a log level name. The empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", internalerr.ErrInvalidConfig, s)
}
