package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_YAMLAndEnv(t *testing.T) {
	path := writeConfig(t, `
http:
  address: ":9000"
database:
  url: postgres://file/db
session:
  ttl: 2h
kafka:
  brokers: ["k1:9092"]
`)
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("KAFKA_BROKERS", "a:9092,b:9092")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.HTTP.Address)
	assert.Equal(t, "postgres://env/db", cfg.Database.DSN())
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "airport_session", cfg.Session.CookieName)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
}

func TestLoadConfig_BadYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "http: [unclosed"))
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.EqualError(t, cfg.Validate(), "DATABASE_URL is required")

	cfg.Database.Host = "localhost"
	cfg.Database.User = "app"
	cfg.Database.Name = "airport"
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "host=localhost port=5432 user=app password= dbname=airport sslmode=disable", cfg.Database.DSN())

	mem := Default()
	mem.Storage.Driver = StorageDriverMemory
	assert.NoError(t, mem.Validate())

	mem.Storage.Driver = "sqlite"
	assert.Error(t, mem.Validate())
}

func TestLoadConfig_ShippedFileRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "")

	cfg, err := LoadConfig(filepath.Join("..", "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.False(t, cfg.Storage.Seed)
	assert.EqualError(t, cfg.Validate(), "DATABASE_URL is required")
}

func TestRequireSharedStorage(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.RequireSharedStorage())

	cfg.Storage.Driver = StorageDriverMemory
	assert.Error(t, cfg.RequireSharedStorage())
}
