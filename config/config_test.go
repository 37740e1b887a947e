package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func setSecrets(t *testing.T) {
	t.Helper()

	t.Setenv("DATABASE_URI", "mongodb://localhost:27017")
	t.Setenv("BROKER_URI", "redis://localhost:6379/0")
	t.Setenv("MINIO_ROOT_USER", "minioadmin")
	t.Setenv("MINIO_ROOT_PASSWORD", "minioadmin")
	t.Setenv("SESSION_SECRET", "a-very-secret-session-key")
}

func TestLoadFromFile(t *testing.T) {
	setSecrets(t)

	path := writeConfig(t, `
environment: "prod"
db_config:
  db_name: "prana"
minio_uploader:
  bucket: "prana"
  public_url: "http://localhost:9000"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.DBConfig.URI)
	assert.Equal(t, "redis://localhost:6379/0", cfg.BrokerConfig.URI)
	assert.Equal(t, "minioadmin", cfg.MinIOClient.AccessKey)
	assert.Equal(t, "a-very-secret-session-key", cfg.Session.Secret)

	assert.Equal(t, ":5000", cfg.HTTP.Address)
	assert.Equal(t, "admin", cfg.Auth.AdminRole)
	assert.Equal(t, int64(5<<20), cfg.MinIOUploader.MaxFileSize)
}

func TestLoadMissingSessionSecret(t *testing.T) {
	setSecrets(t)
	t.Setenv("SESSION_SECRET", "")

	path := writeConfig(t, `
environment: "prod"
db_config:
  db_name: "prana"
minio_uploader:
  bucket: "prana"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)

	var cfgErr Error
	assert.ErrorAs(t, err, &cfgErr)
}
