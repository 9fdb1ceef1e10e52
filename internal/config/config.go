// Package config loads the service configuration from YAML with environment
// overrides for deployment-specific values.
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port string `yaml:"port"`
}

// CorpusConfig locates the corpus artifact and tunes snippet extraction.
type CorpusConfig struct {
	Path string `yaml:"path"`
	// ContextSize is the highlight window in runes around a match; 0 returns
	// whole sentences.
	ContextSize int `yaml:"context_size"`
}

// ModelConfig locates the word-vector artifact.
type ModelConfig struct {
	Path string `yaml:"path"`
}

// SearchConfig tunes the two-stage retrieval.
type SearchConfig struct {
	// Threshold is both the minimum literal hit count that skips expansion
	// and the result cap.
	Threshold int `yaml:"threshold"`
	// ExpansionK is how many similar words the fallback consults.
	ExpansionK int `yaml:"expansion_k"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Server   ServerConfig `yaml:"server"`
	Corpus   CorpusConfig `yaml:"corpus"`
	Model    ModelConfig  `yaml:"model"`
	Search   SearchConfig `yaml:"search"`
	LogLevel string       `yaml:"log_level"`
}

// Load reads the config file at path. A missing file yields defaults;
// environment variables override file values either way.
func Load(path string) (*AppConfig, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	applyEnvOverrides(cfg)
	return cfg, nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Server:   ServerConfig{Port: "8080"},
		Corpus:   CorpusConfig{Path: "data/corpus.txt", ContextSize: 40},
		Model:    ModelConfig{Path: "data/vectors.vec"},
		Search:   SearchConfig{Threshold: 3, ExpansionK: 3},
		LogLevel: "info",
	}
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Search.Threshold == 0 {
		cfg.Search.Threshold = 3
	}
	if cfg.Search.ExpansionK == 0 {
		cfg.Search.ExpansionK = 3
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("CORPUS_API_PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("CORPUS_FILE_PATH"); v != "" {
		cfg.Corpus.Path = v
	}
	if v := os.Getenv("VECTOR_MODEL_PATH"); v != "" {
		cfg.Model.Path = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
