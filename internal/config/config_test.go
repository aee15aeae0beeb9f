package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearDBEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD", "DB_SSL_MODE", "DB_FILE"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaultsToLocalStore(t *testing.T) {
	clearDBEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.UsesNetworkStore())
	assert.Equal(t, "drivers.db", cfg.File)
}

func TestLoadLocalStoreFileOverride(t *testing.T) {
	clearDBEnv(t)
	t.Setenv("DB_FILE", "test.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.UsesNetworkStore())
	assert.Equal(t, "test.db", cfg.File)
}

func TestLoadNetworkStore(t *testing.T) {
	clearDBEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "drivers")
	t.Setenv("DB_USER", "api")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.UsesNetworkStore())
	assert.Equal(t, "5432", cfg.Port)
	assert.Equal(t, "disable", cfg.SSLMode)
	assert.Empty(t, cfg.File)
}

func TestLoadNetworkStoreExplicitPortAndSSL(t *testing.T) {
	clearDBEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "drivers")
	t.Setenv("DB_USER", "api")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_SSL_MODE", "require")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "5433", cfg.Port)
	assert.Equal(t, "require", cfg.SSLMode)
}

// Host without credentials must fail loudly, never fall back to the file store.
func TestLoadPartialConfigRejected(t *testing.T) {
	clearDBEnv(t)
	t.Setenv("DB_HOST", "db.internal")

	_, err := Load()
	require.ErrorIs(t, err, ErrPartialConfig)
}

func TestLoadPartialConfigMissingPassword(t *testing.T) {
	clearDBEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "drivers")
	t.Setenv("DB_USER", "api")

	_, err := Load()
	require.ErrorIs(t, err, ErrPartialConfig)
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	clearDBEnv(t)
	t.Setenv("DB_FILE", "file:ensure_schema?mode=memory&cache=shared")

	cfg, err := Load()
	require.NoError(t, err)

	db, err := Connect(cfg)
	require.NoError(t, err)

	require.NoError(t, EnsureSchema(db))
	// Safe to run on every startup.
	require.NoError(t, EnsureSchema(db))
}
