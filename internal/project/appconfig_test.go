package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/SpritePack/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := model.DefaultAppConfig()
	cfg.DefaultStrategy = model.StrategyAlternating
	cfg.DefaultPadding = 4
	cfg.DefaultXPadding = 2
	cfg.SheetURL = "/static/sprites.png"
	cfg.ClassPrefix = "ico"
	cfg.OutputFormats = []string{"css", "json"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.DefaultStrategy != model.StrategyAlternating {
		t.Errorf("expected strategy alternating, got %q", loaded.DefaultStrategy)
	}
	if loaded.DefaultPadding != 4 || loaded.DefaultXPadding != 2 || loaded.DefaultYPadding != 0 {
		t.Errorf("unexpected paddings %d/%d/%d", loaded.DefaultPadding, loaded.DefaultXPadding, loaded.DefaultYPadding)
	}
	if loaded.SheetURL != "/static/sprites.png" || loaded.ClassPrefix != "ico" {
		t.Errorf("unexpected style settings %q %q", loaded.SheetURL, loaded.ClassPrefix)
	}
	if len(loaded.OutputFormats) != 2 || loaded.OutputFormats[1] != "json" {
		t.Errorf("unexpected output formats %v", loaded.OutputFormats)
	}
}

func TestSaveAppConfig_WritesTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := SaveAppConfig(path, model.DefaultAppConfig()); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, want := range []string{`default_strategy = "greedy"`, `class_prefix = "sprite"`, `output_formats = ["css"]`} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in:\n%s", want, text)
		}
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.toml")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	defaults := model.DefaultAppConfig()
	if cfg.DefaultStrategy != defaults.DefaultStrategy {
		t.Errorf("expected default strategy %q, got %q", defaults.DefaultStrategy, cfg.DefaultStrategy)
	}
	if cfg.ClassPrefix != "sprite" {
		t.Errorf("expected class prefix 'sprite', got %q", cfg.ClassPrefix)
	}
}

func TestLoadAppConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("default_padding = 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.DefaultPadding != 3 {
		t.Errorf("expected padding 3, got %d", cfg.DefaultPadding)
	}
	if cfg.DefaultStrategy != model.StrategyGreedy || cfg.ClassPrefix != "sprite" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadAppConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "default_padding = = 3\n", "parsing"},
		{"unknown key", "default_paddng = 3\n", "unknown keys: default_paddng"},
		{"unknown strategy", "default_strategy = \"spiral\"\n", "unknown strategy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadAppConfig(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if filepath.Base(path) != "config.toml" {
		t.Errorf("expected config.toml, got %s", path)
	}
	if filepath.Base(filepath.Dir(path)) != ".spritepack" {
		t.Errorf("expected .spritepack directory, got %s", path)
	}
}
