package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_Model(t *testing.T) {
	cfg := Default()
	if cfg.Model != DefaultModel {
		t.Fatalf("Default().Model = %q, want %q", cfg.Model, DefaultModel)
	}
}

func TestLoad_MissingFile_UsesDefaults(t *testing.T) {
	t.Setenv("OPENAI_BASE_URL", "")
	t.Setenv("OPENAI_API_KEY", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source != path {
		t.Fatalf("cfg.Source = %q, want %q", cfg.Source, path)
	}
	if cfg.Model != DefaultModel {
		t.Fatalf("cfg.Model = %q, want %q", cfg.Model, DefaultModel)
	}
}

func TestLoad_FromTOML(t *testing.T) {
	t.Setenv("OPENAI_BASE_URL", "")
	t.Setenv("OPENAI_API_KEY", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`
url = "https://example.test/v1"
token = "file-token"
model = "gpt-4.1"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.URL != "https://example.test/v1" {
		t.Fatalf("cfg.URL = %q", cfg.URL)
	}
	if cfg.Token != "file-token" {
		t.Fatalf("cfg.Token = %q", cfg.Token)
	}
	if cfg.Model != "gpt-4.1" {
		t.Fatalf("cfg.Model = %q", cfg.Model)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("OPENAI_BASE_URL", "https://env.test/v1")
	t.Setenv("OPENAI_API_KEY", "env-key")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`
url = "https://file.test/v1"
token = "file-token"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.URL != "https://env.test/v1" {
		t.Fatalf("cfg.URL = %q, env should win", cfg.URL)
	}
	if cfg.Token != "env-key" {
		t.Fatalf("cfg.Token = %q, env should win", cfg.Token)
	}
}

func TestLoad_BadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`url = `), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Load should fail on malformed TOML")
	}
}

func TestApplyKVOverrides(t *testing.T) {
	cfg := Default()
	got := ApplyKVOverrides(cfg, []string{"model=o4-mini", "url=https://o.test", "bogus", "token=t"})
	if got.Model != "o4-mini" {
		t.Fatalf("Model = %q", got.Model)
	}
	if got.URL != "https://o.test" {
		t.Fatalf("URL = %q", got.URL)
	}
	if got.Token != "t" {
		t.Fatalf("Token = %q", got.Token)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("OPENAI_BASE_URL", "")
	t.Setenv("OPENAI_API_KEY", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")
	in := Config{URL: "https://rt.test", Token: "rt", Model: "gpt-4o"}
	if err := Save(path, in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.URL != in.URL || out.Token != in.Token || out.Model != in.Model {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}
