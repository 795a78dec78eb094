package grokconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Engine != "stdregexp" {
		t.Errorf("Engine = %q, want stdregexp", cfg.Engine)
	}
	if !cfg.LoadDefaultPatterns {
		t.Errorf("LoadDefaultPatterns should default to true")
	}
}

func TestLoadMissingFileFallsBackToDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want Default()", cfg)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grok.yaml")
	contents := "engine: pcre\nmax_recursion_depth: 64\nnamed_captures_only: true\nload_default_patterns: false\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Engine != "pcre" || cfg.MaxRecursionDepth != 64 || !cfg.NamedCapturesOnly || cfg.LoadDefaultPatterns {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grok.yaml")
	if err := os.WriteFile(path, []byte("engine: stdregexp\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	t.Setenv("GROK_ENGINE", "pcre")
	t.Setenv("GROK_MAX_RECURSION_DEPTH", "10")
	t.Setenv("GROK_NAMED_CAPTURES_ONLY", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Engine != "pcre" || cfg.MaxRecursionDepth != 10 || !cfg.NamedCapturesOnly {
		t.Errorf("environment overrides not applied: %+v", cfg)
	}
}
