// internal/config/config.go
//
// Runtime configuration.
// Values come from, in increasing priority:
//   1. Built-in defaults.
//   2. An optional TOML file named by CONFIG_FILE.
//   3. Environment variables (usually populated from .env by godotenv).

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Size limits for generated grids.
const (
	MinGridSize = 3
	MaxGridSize = 25
)

var ErrInvalid = errors.New("config: invalid value")

// Config holds every setting the server and CLI read.
type Config struct {
	Port              string `toml:"port"`
	LogLevel          string `toml:"log_level"`
	DBPath            string `toml:"db_path"`
	GridSize          int    `toml:"grid_size"`
	TargetWords       int    `toml:"target_words"`
	GenerationRetries int    `toml:"generation_retries"`
	WordsFile         string `toml:"words_file"`
	WordsSecondary    string `toml:"words_secondary_file"`
	ConnectionsFile   string `toml:"connections_file"`
	PuzTitle          string `toml:"puz_title"`
	PuzAuthor         string `toml:"puz_author"`
	DailySalt         string `toml:"daily_salt"`
	ShareSecret       string `toml:"share_secret"`
	ShareExpiresDays  int    `toml:"share_expires_days"`
	AdminPasswordHash string `toml:"admin_password_hash"`
	ClientOrigin      string `toml:"client_origin"`
	StoreCapacity     int    `toml:"store_capacity"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:              "5175",
		LogLevel:          "info",
		DBPath:            "./data/app.db",
		GridSize:          8,
		TargetWords:       8,
		GenerationRetries: 5,
		PuzTitle:          "Core Games Mini",
		PuzAuthor:         "thecodeworks",
		DailySalt:         "local_dev_salt",
		ShareSecret:       "dev_secret_change_me",
		ShareExpiresDays:  14,
		ClientOrigin:      "http://localhost:5173",
		StoreCapacity:     256,
	}
}

// Load builds the configuration from defaults, CONFIG_FILE and the environment.
func Load() (Config, error) {
	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.mergeEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) mergeFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	strs := map[string]*string{
		"PORT":                 &c.Port,
		"LOG_LEVEL":            &c.LogLevel,
		"DB_PATH":              &c.DBPath,
		"WORDS_FILE":           &c.WordsFile,
		"WORDS_SECONDARY_FILE": &c.WordsSecondary,
		"CONNECTIONS_FILE":     &c.ConnectionsFile,
		"PUZ_TITLE":            &c.PuzTitle,
		"PUZ_AUTHOR":           &c.PuzAuthor,
		"DAILY_SALT":           &c.DailySalt,
		"SHARE_SECRET":         &c.ShareSecret,
		"ADMIN_PASSWORD_HASH":  &c.AdminPasswordHash,
		"CLIENT_ORIGIN":        &c.ClientOrigin,
	}
	for k, dst := range strs {
		if v := os.Getenv(k); v != "" {
			*dst = v
		}
	}

	ints := map[string]*int{
		"GRID_SIZE":          &c.GridSize,
		"TARGET_WORDS":       &c.TargetWords,
		"GENERATION_RETRIES": &c.GenerationRetries,
		"SHARE_EXPIRES_DAYS": &c.ShareExpiresDays,
		"STORE_CAPACITY":     &c.StoreCapacity,
	}
	for k, dst := range ints {
		v := os.Getenv(k)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, k, v)
		}
		*dst = n
	}
	return nil
}

// Validate checks ranges.
func (c Config) Validate() error {
	switch {
	case c.GridSize < MinGridSize || c.GridSize > MaxGridSize:
		return fmt.Errorf("%w: grid_size %d not in [%d, %d]", ErrInvalid, c.GridSize, MinGridSize, MaxGridSize)
	case c.TargetWords < 1:
		return fmt.Errorf("%w: target_words must be at least 1", ErrInvalid)
	case c.GenerationRetries < 1:
		return fmt.Errorf("%w: generation_retries must be at least 1", ErrInvalid)
	case c.ShareExpiresDays < 1:
		return fmt.Errorf("%w: share_expires_days must be at least 1", ErrInvalid)
	}
	return nil
}

// ShareTTL is the lifetime of share tokens.
func (c Config) ShareTTL() time.Duration {
	return time.Duration(c.ShareExpiresDays) * 24 * time.Hour
}
