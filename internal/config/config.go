package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds everything the composition root needs. Values come from
// the environment; main loads a .env file first if one exists.
type Config struct {
	Port           string
	MongoURI       string
	DatabaseName   string
	RedisAddr      string
	NewsAPIKey     string
	NewsAPIBaseURL string
	LocalStorePath string
	SessionTTL     time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:           getenv("PORT", "8080"),
		MongoURI:       os.Getenv("MONGODB_URI"),
		DatabaseName:   getenv("DATABASE_NAME", "newsplus"),
		RedisAddr:      getenv("REDIS_ADDR", "localhost:6379"),
		NewsAPIKey:     os.Getenv("NEWS_API_KEY"),
		NewsAPIBaseURL: os.Getenv("NEWS_API_BASE_URL"),
		LocalStorePath: getenv("LOCAL_STORE_PATH", "data/localstore.db"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}
	if cfg.NewsAPIKey == "" {
		return nil, fmt.Errorf("NEWS_API_KEY is required")
	}

	ttlHours, err := strconv.Atoi(getenv("SESSION_TTL_HOURS", "168"))
	if err != nil || ttlHours <= 0 {
		return nil, fmt.Errorf("invalid SESSION_TTL_HOURS")
	}
	cfg.SessionTTL = time.Duration(ttlHours) * time.Hour

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
