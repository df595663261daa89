package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromEnvironDefaults(t *testing.T) {
	cfg := FromEnviron(nil)
	if cfg.App.ScriptDir != "" || cfg.App.CatalogPath != "" {
		t.Fatalf("expected empty path defaults, got %#v", cfg.App)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected zero dimensions, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if cfg.App.ShowFooter || cfg.App.Verbose || cfg.Logging.Trace {
		t.Fatalf("expected booleans off by default")
	}
}

func TestFromEnvironReadsValues(t *testing.T) {
	cfg := FromEnviron([]string{
		"SCRIPTDECK_SCRIPT_DIR=/opt/scripts",
		"SCRIPTDECK_CATALOG=/etc/scriptdeck/catalog.yaml",
		"SCRIPTDECK_WIDTH=120",
		"SCRIPTDECK_HEIGHT=40",
		"SCRIPTDECK_FOOTER=true",
		"SCRIPTDECK_TRACE=1",
		"SCRIPTDECK_LOG_FILE=/tmp/sd.log",
	})
	if cfg.App.ScriptDir != "/opt/scripts" {
		t.Fatalf("unexpected script dir %q", cfg.App.ScriptDir)
	}
	if cfg.App.CatalogPath != "/etc/scriptdeck/catalog.yaml" {
		t.Fatalf("unexpected catalog path %q", cfg.App.CatalogPath)
	}
	if cfg.App.Width != 120 || cfg.App.Height != 40 {
		t.Fatalf("unexpected dimensions %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.App.ShowFooter || !cfg.Logging.Trace {
		t.Fatalf("expected footer and trace enabled")
	}
	if cfg.Logging.FilePath != "/tmp/sd.log" {
		t.Fatalf("unexpected log file %q", cfg.Logging.FilePath)
	}
}

func TestFromEnvironIgnoresMalformedValues(t *testing.T) {
	cfg := FromEnviron([]string{
		"SCRIPTDECK_WIDTH=wide",
		"SCRIPTDECK_FOOTER=definitely",
		"not-an-assignment",
	})
	if cfg.App.Width != 0 || cfg.App.ShowFooter {
		t.Fatalf("expected malformed values to fall back, got %#v", cfg.App)
	}
}

func TestValidateRejectsNegativeDimensions(t *testing.T) {
	cfg := FromEnviron(nil)
	cfg.App.Width = -1
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected negative width to fail validation")
	}
	cfg.App.Width = 0
	cfg.App.Height = -5
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected negative height to fail validation")
	}
}

func TestValidateChecksCatalogExists(t *testing.T) {
	cfg := FromEnviron(nil)
	cfg.App.CatalogPath = filepath.Join(t.TempDir(), "missing.yaml")
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected missing catalog to fail validation")
	}
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("items: []\n"), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	cfg.App.CatalogPath = path
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}
