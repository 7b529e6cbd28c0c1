package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/ecc/pkg/ontology/internalerr"
)

func TestLoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "ecc.yaml")

	content := `input: ontology.tsv
output: build/ontology
extension: .yaml
index: build/ontology.db
log_level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Input != "ontology.tsv" {
		t.Errorf("Expected input ontology.tsv, got %q", cfg.Input)
	}
	if cfg.Output != "build/ontology" {
		t.Errorf("Expected output build/ontology, got %q", cfg.Output)
	}
	if cfg.Extension != ".yaml" {
		t.Errorf("Expected extension .yaml, got %q", cfg.Extension)
	}
	if cfg.Index != "build/ontology.db" {
		t.Errorf("Expected index build/ontology.db, got %q", cfg.Index)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("Expected debug level, got %v", cfg.Level())
	}
}

func TestLoadFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecc.yaml")
	if err := os.WriteFile(path, []byte("output: out\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Extension != ".yml" {
		t.Errorf("Default extension should survive, got %q", cfg.Extension)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Default log level should survive, got %q", cfg.LogLevel)
	}
}

func TestLoadFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecc.yaml")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("Empty config file should load: %v", err)
	}
	if *cfg != Default() {
		t.Errorf("Expected defaults, got %+v", *cfg)
	}
}

func TestLoadFileUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecc.yaml")
	if err := os.WriteFile(path, []byte("ouptut: typo\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("Unknown fields should be rejected")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("/nonexistent/ecc.yaml"); err == nil {
		t.Error("Should error on nonexistent file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Default(), false},
		{"empty", Config{}, false},
		{"extension without dot", Config{Extension: "yml"}, true},
		{"extension with separator", Config{Extension: ".a/b"}, true},
		{"unknown level", Config{LogLevel: "loud"}, true},
		{"warning alias", Config{LogLevel: "WARNING"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, internalerr.ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestOntologyOptions(t *testing.T) {
	cfg := Config{Extension: ".yaml"}
	if got := cfg.OntologyOptions().Extension; got != ".yaml" {
		t.Errorf("Expected .yaml, got %q", got)
	}
}
