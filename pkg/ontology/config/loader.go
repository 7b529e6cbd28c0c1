package config

import (
	"fmt"
)

// Loader resolves the effective configuration from an optional file and
// command-line overrides
type Loader struct {
	Path      string // optional YAML file
	Overrides Config // non-empty fields win over the file
}

// Load reads the configuration file (if any), applies overrides and
// validates the result
func (l *Loader) Load() (*Config, error) {
	cfg := Default()

	if l.Path != "" {
		fromFile, err := LoadFile(l.Path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = *fromFile
	}

	cfg = merge(cfg, l.Overrides)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func merge(base, over Config) Config {
	if over.Input != "" {
		base.Input = over.Input
	}
	if over.Output != "" {
		base.Output = over.Output
	}
	if over.Extension != "" {
		base.Extension = over.Extension
	}
	if over.Index != "" {
		base.Index = over.Index
	}
	if over.LogLevel != "" {
		base.LogLevel = over.LogLevel
	}
	return base
}
