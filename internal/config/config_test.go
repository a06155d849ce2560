package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONFIG_FILE", "PORT", "LOG_LEVEL", "DB_PATH", "WORDS_FILE", "WORDS_SECONDARY_FILE",
		"CONNECTIONS_FILE", "PUZ_TITLE", "PUZ_AUTHOR", "DAILY_SALT", "SHARE_SECRET",
		"ADMIN_PASSWORD_HASH", "CLIENT_ORIGIN", "GRID_SIZE", "TARGET_WORDS",
		"GENERATION_RETRIES", "SHARE_EXPIRES_DAYS", "STORE_CAPACITY",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 14*24*time.Hour, cfg.ShareTTL())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minigen.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
port = "9000"
grid_size = 10
puz_title = "From file"
generation_retries = 3
`), 0o644))

	clearEnv(t)
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("GRID_SIZE", "12")
	t.Setenv("PUZ_AUTHOR", "env author")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 12, cfg.GridSize, "environment wins over the file")
	assert.Equal(t, "From file", cfg.PuzTitle)
	assert.Equal(t, "env author", cfg.PuzAuthor)
	assert.Equal(t, 3, cfg.GenerationRetries)
	assert.Equal(t, 8, cfg.TargetWords)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	t.Run("missing file", func(t *testing.T) {
		t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.toml"))
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("bad toml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("grid_size = ["), 0o644))
		t.Setenv("CONFIG_FILE", path)
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("bad int", func(t *testing.T) {
		t.Setenv("CONFIG_FILE", "")
		t.Setenv("TARGET_WORDS", "eight")
		_, err := Load()
		assert.ErrorIs(t, err, ErrInvalid)
	})
	t.Run("out of range", func(t *testing.T) {
		t.Setenv("CONFIG_FILE", "")
		t.Setenv("GRID_SIZE", "40")
		_, err := Load()
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"small grid":   func(c *Config) { c.GridSize = 2 },
		"zero target":  func(c *Config) { c.TargetWords = 0 },
		"zero retries": func(c *Config) { c.GenerationRetries = 0 },
		"zero ttl":     func(c *Config) { c.ShareExpiresDays = 0 },
	} {
		c := Default()
		mutate(&c)
		assert.ErrorIs(t, c.Validate(), ErrInvalid, name)
	}
	assert.NoError(t, Default().Validate())
}
