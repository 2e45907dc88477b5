package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte(`
logger:
  level: debug
source:
  kind: static
  base_url: http://localhost:9999/api.php
quiz:
  dwell: 500ms
  decode_before_compare: true
`)
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Logger.Level != "debug" || cfg.Logger.Env != "development" {
		t.Fatalf("unexpected logger config: %+v", cfg.Logger)
	}
	if cfg.Source.Kind != SourceStatic || cfg.Source.BaseURL != "http://localhost:9999/api.php" || cfg.Source.Timeout != "10s" {
		t.Fatalf("unexpected source config: %+v", cfg.Source)
	}
	if Duration(cfg.Quiz.Dwell, time.Second) != 500*time.Millisecond || !cfg.Quiz.DecodeBeforeCompare {
		t.Fatalf("unexpected quiz config: %+v", cfg.Quiz)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if cfg.Quiz.Dwell != "2s" {
		t.Fatalf("expected defaults alongside error, got %+v", cfg)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("quiz: [unterminated"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected yaml error")
	}
}

func TestDuration(t *testing.T) {
	cases := map[string]time.Duration{
		"":      3 * time.Second,
		"bogus": 3 * time.Second,
		"-1s":   3 * time.Second,
		"750ms": 750 * time.Millisecond,
	}
	for raw, want := range cases {
		if got := Duration(raw, 3*time.Second); got != want {
			t.Fatalf("Duration(%q) = %v, want %v", raw, got, want)
		}
	}
}
