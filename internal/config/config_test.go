package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Search.Threshold != 3 || cfg.Search.ExpansionK != 3 {
		t.Errorf("search defaults = %+v, want threshold 3, expansion_k 3", cfg.Search)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port default = %q, want 8080", cfg.Server.Port)
	}
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: "9000"
corpus:
  path: /tmp/corpus.txt
search:
  threshold: 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CORPUS_API_PORT", "9100")
	t.Setenv("VECTOR_MODEL_PATH", "/tmp/model.vec")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9100" {
		t.Errorf("port = %q, want env override 9100", cfg.Server.Port)
	}
	if cfg.Corpus.Path != "/tmp/corpus.txt" {
		t.Errorf("corpus path = %q, want file value", cfg.Corpus.Path)
	}
	if cfg.Model.Path != "/tmp/model.vec" {
		t.Errorf("model path = %q, want env override", cfg.Model.Path)
	}
	if cfg.Search.Threshold != 5 {
		t.Errorf("threshold = %d, want 5", cfg.Search.Threshold)
	}
	// Unset fields still get defaults.
	if cfg.Search.ExpansionK != 3 {
		t.Errorf("expansion_k = %d, want default 3", cfg.Search.ExpansionK)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted malformed YAML")
	}
}
