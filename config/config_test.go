package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// clearEnv unsets the overrides for the duration of the test
func clearEnv(t *testing.T) {
	for _, k := range []string{
		"SVOCHECK_PARSER", "SVOCHECK_SPACY_URL", "SVOCHECK_DB", "SVOCHECK_CORPUS",
		"SVOCHECK_ADDR", "SVOCHECK_LOG_LEVEL", "NATURAL_LANGUAGE_CREDENTIALS",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)

	path := writeFile(t, "svocheck.yaml", `
parser:
  backend: store
  timeout: 3s
storage:
  database: parses.db
  corpus: corpus
server:
  addr: ":9090"
  allowed_origins: ["https://example.org"]
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, BackendStore, cfg.Parser.Backend)
	assert.Equal(t, 3*time.Second, cfg.Parser.Timeout)
	// not in the file
	assert.Equal(t, "en_core_web_sm", cfg.Parser.Model)
	assert.Equal(t, "parses.db", cfg.Storage.Database)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, []string{"https://example.org"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SVOCHECK_PARSER", "gcloud")
	t.Setenv("NATURAL_LANGUAGE_CREDENTIALS", "e30=")
	t.Setenv("SVOCHECK_ADDR", ":7000")
	t.Setenv("SVOCHECK_LOG_LEVEL", "warn")

	path := writeFile(t, "svocheck.yaml", "parser:\n  backend: spacy\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, BackendGcloud, cfg.Parser.Backend)
	assert.Equal(t, "e30=", cfg.Parser.Credentials)
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadInvalid(t *testing.T) {
	clearEnv(t)

	cases := map[string]string{
		"bad yaml":      "parser: [",
		"unknown":       "parser:\n  backend: stanza\n",
		"store no data": "parser:\n  backend: store\n",
		"cache no db":   "parser:\n  cache: true\n",
		"bad log level": "logging:\n  level: loud\n",
		"spacy no url":  "parser:\n  spacy_url: \"\"\n",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, "svocheck.yaml", content))
			assert.Error(t, err)
		})
	}
}

func TestCredentialsNotFromFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(writeFile(t, "svocheck.yaml", "parser:\n  credentials: secret\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Parser.Credentials)
}

func TestLoadEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, ".env", "SVOCHECK_DB=from-dotenv.db\n")

	require.NoError(t, LoadEnv(path, filepath.Join(t.TempDir(), "missing.env")))
	assert.Equal(t, "from-dotenv.db", os.Getenv("SVOCHECK_DB"))
}

func TestLoadEnvKeepsSetVariables(t *testing.T) {
	clearEnv(t)
	t.Setenv("SVOCHECK_ADDR", ":1234")
	path := writeFile(t, ".env", "SVOCHECK_ADDR=:5678\n")

	require.NoError(t, LoadEnv(path))
	assert.Equal(t, ":1234", os.Getenv("SVOCHECK_ADDR"))
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(LoggingConfig{Level: "debug"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = NewLogger(LoggingConfig{Level: "error", Development: true})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.WarnLevel))

	_, err = NewLogger(LoggingConfig{Level: "loud"})
	assert.Error(t, err)
}
