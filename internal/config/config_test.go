package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	data := "extension_prefix: extension_\nelevation: true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ExtensionPrefix != "extension_" {
		t.Errorf("prefix is %q", cfg.ExtensionPrefix)
	}
	if !cfg.Elevation {
		t.Error("elevation not set")
	}
	if cfg.Indent {
		t.Error("indent should default to false")
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestOptions(t *testing.T) {
	cfg := &Config{ExtensionPrefix: "extension_", Elevation: true}

	opts := cfg.Options(false, "")
	if !opts.IncludeElevation || opts.ExtensionPrefix != "extension_" {
		t.Errorf("bad merged options: %+v", opts)
	}

	// The flag value wins over the configured default.
	opts = cfg.Options(false, "ex_")
	if opts.ExtensionPrefix != "ex_" {
		t.Errorf("flag prefix lost: %+v", opts)
	}

	opts = (&Config{}).Options(true, "")
	if !opts.IncludeElevation {
		t.Error("flag elevation lost")
	}
	if opts.ExtensionPrefix != "" {
		t.Errorf("zero config invented a prefix: %+v", opts)
	}
}
