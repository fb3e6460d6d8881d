package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opservo/adminkit/internal/config"
	"github.com/opservo/adminkit/internal/core/logger"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "adminkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
logger:
  mod: development
  level: debug
toolkit:
  prefix: opskit
  strict: true
valkey:
  addresses:
    - "localhost:6379"
  password: hunter2
s3:
  url: "http://localhost:9000"
  region: us-east-1
  key_id: minio
  secret_key: miniosecret
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, logger.DevelopmentMod, cfg.Logger.LogMod)
	require.Equal(t, "debug", cfg.Logger.LogLevel)
	require.Equal(t, "opskit", cfg.Toolkit.Prefix)
	require.True(t, cfg.Toolkit.Strict)
	require.NotNil(t, cfg.Valkey)
	require.Equal(t, []string{"localhost:6379"}, cfg.Valkey.Addresses)
	require.NotNil(t, cfg.S3)
	require.Equal(t, "minio", cfg.S3.AccessKeyId)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "toolkit: {}\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "adminkit", cfg.Toolkit.Prefix)
	require.False(t, cfg.Toolkit.Strict)
	require.Equal(t, logger.ProductionMod, cfg.Logger.LogMod)
	require.Equal(t, "info", cfg.Logger.LogLevel)
	require.Nil(t, cfg.Valkey)
	require.Nil(t, cfg.S3)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedYaml(t *testing.T) {
	path := writeConfig(t, "toolkit: [not a mapping\n")
	_, err := config.Load(path)
	require.Error(t, err)
}
