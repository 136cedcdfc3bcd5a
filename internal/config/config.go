// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Token   string
	Port    string
	DataDir string
	DBPath  string

	// LanguageTimeout bounds the FR/EN prompt; BrowseTimeout and
	// QuizTimeout bound the longer-lived sub-sessions.
	LanguageTimeout time.Duration
	BrowseTimeout   time.Duration
	QuizTimeout     time.Duration
	SweepInterval   time.Duration

	PageSize   int
	QuizLength int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Token:           getEnv("BOT_TOKEN", ""),
		Port:            getEnv("PORT", "8080"),
		DataDir:         getEnv("DATA_DIR", "./data"),
		DBPath:          getEnv("DB_PATH", "./data/hadithsahih.db"),
		LanguageTimeout: getEnvDuration("LANGUAGE_TIMEOUT", 60*time.Second),
		BrowseTimeout:   getEnvDuration("BROWSE_TIMEOUT", 180*time.Second),
		QuizTimeout:     getEnvDuration("QUIZ_TIMEOUT", 180*time.Second),
		SweepInterval:   getEnvDuration("SWEEP_INTERVAL", 10*time.Second),
		PageSize:        getEnvInt("PAGE_SIZE", 5),
		QuizLength:      getEnvInt("QUIZ_LENGTH", 3),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("BOT_TOKEN cannot be empty")
	}
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.DataDir == "" {
		return fmt.Errorf("DATA_DIR cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be > 0")
	}
	if c.QuizLength <= 0 {
		return fmt.Errorf("QUIZ_LENGTH must be > 0")
	}
	if c.LanguageTimeout <= 0 || c.BrowseTimeout <= 0 || c.QuizTimeout <= 0 {
		return fmt.Errorf("session timeouts must be > 0")
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("SWEEP_INTERVAL must be > 0")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}
