package config

import (
	"os"
	"time"
)

type Config struct {
	// APIURL is the remote service root, including any path prefix.
	APIURL string
	// HTTPTimeout bounds each request; "no response" surfaces as a
	// transport error like any other.
	HTTPTimeout time.Duration
	// Port is where cmd/mockserver listens.
	Port string
}

func Load() *Config {
	return &Config{
		APIURL:      getEnv("API_URL", "http://localhost:8000/api"),
		HTTPTimeout: getDuration("HTTP_TIMEOUT", 30*time.Second),
		Port:        getEnv("PORT", "8000"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
