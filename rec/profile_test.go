package rec

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	return path
}

func TestLoadProfileOverridesAndDefaults(t *testing.T) {
	path := writeProfile(t, "n_unique: 10\nseed: 7\nformat: msgpack\n")
	p, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	cfg := p.Config()
	if cfg.NUnique != 10 || cfg.NDuplicates != DefaultNDuplicates || cfg.Seed != 7 {
		t.Fatalf("bad resolved config: %+v", cfg)
	}
	if p.OutputFormat() != "msgpack" {
		t.Fatalf("bad format: %s", p.OutputFormat())
	}
}

func TestLoadProfileEmptyFallsBackToDefaults(t *testing.T) {
	p, err := LoadProfile(writeProfile(t, ""))
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if p.Config() != DefaultConfig() {
		t.Fatalf("empty profile should resolve to defaults: %+v", p.Config())
	}
	if p.OutputFormat() != "csv" {
		t.Fatalf("default format should be csv, got %s", p.OutputFormat())
	}
}

func TestLoadProfileRejectsUnknownFormat(t *testing.T) {
	_, err := LoadProfile(writeProfile(t, "format: parquet\n"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadProfileMissingFile(t *testing.T) {
	if _, err := LoadProfile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("missing file should fail")
	}
}
