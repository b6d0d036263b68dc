// Package config loads the svocheck configuration: defaults, an optional YAML
// file, a .env file and environment overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const DefaultFile = "svocheck.yaml"

// parser backends
const (
	BackendSpacy  = "spacy"
	BackendGcloud = "gcloud"
	BackendStore  = "store"
)

type Config struct {
	Parser  ParserConfig  `yaml:"parser"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

type ParserConfig struct {
	// Backend is one of spacy, gcloud or store
	Backend  string        `yaml:"backend"`
	SpacyURL string        `yaml:"spacy_url"`
	Model    string        `yaml:"model"`
	Timeout  time.Duration `yaml:"timeout"`
	Language string        `yaml:"language"`

	// Cache stores every new parse in the sqlite database
	Cache bool `yaml:"cache"`

	// Credentials is the base64 encoded service account of the gcloud
	// backend. Only read from the environment.
	Credentials string `yaml:"-"`
}

type StorageConfig struct {
	// Database is the sqlite parse store
	Database string `yaml:"database"`

	// Corpus is a directory of parsed docs in JSON
	Corpus string `yaml:"corpus"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func DefaultConfig() *Config {
	return &Config{
		Parser: ParserConfig{
			Backend:  BackendSpacy,
			SpacyURL: "http://localhost:8000",
			Model:    "en_core_web_sm",
			Timeout:  10 * time.Second,
			Language: "en",
		},
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load returns the configuration in path on top of the defaults. A missing
// file is not an error. Environment overrides are always applied.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadEnv loads the .env files into the environment. Variables already set
// are kept. Missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if backend := os.Getenv("SVOCHECK_PARSER"); backend != "" {
		c.Parser.Backend = backend
	}
	if url := os.Getenv("SVOCHECK_SPACY_URL"); url != "" {
		c.Parser.SpacyURL = url
	}
	if creds := os.Getenv("NATURAL_LANGUAGE_CREDENTIALS"); creds != "" {
		c.Parser.Credentials = creds
	}

	if path := os.Getenv("SVOCHECK_DB"); path != "" {
		c.Storage.Database = path
	}
	if dir := os.Getenv("SVOCHECK_CORPUS"); dir != "" {
		c.Storage.Corpus = dir
	}

	if addr := os.Getenv("SVOCHECK_ADDR"); addr != "" {
		c.Server.Addr = addr
	}

	if level := os.Getenv("SVOCHECK_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

func (c *Config) Validate() error {
	switch c.Parser.Backend {
	case BackendSpacy:
		if c.Parser.SpacyURL == "" {
			return errors.New("spacy backend needs a spacy_url")
		}
	case BackendGcloud:
	case BackendStore:
		if c.Storage.Database == "" && c.Storage.Corpus == "" {
			return errors.New("store backend needs a database or a corpus directory")
		}
	default:
		return fmt.Errorf("unknown parser backend %q", c.Parser.Backend)
	}

	if c.Parser.Cache && c.Storage.Database == "" {
		return errors.New("parse cache needs a database")
	}

	if _, err := zap.ParseAtomicLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	return nil
}
