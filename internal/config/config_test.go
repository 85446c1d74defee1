package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_URL", "")
	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("PORT", "")

	cfg := Load()

	if cfg.APIURL != "http://localhost:8000/api" {
		t.Errorf("unexpected default API_URL: %q", cfg.APIURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("unexpected default HTTP_TIMEOUT: %v", cfg.HTTPTimeout)
	}
	if cfg.Port != "8000" {
		t.Errorf("unexpected default PORT: %q", cfg.Port)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("API_URL", "http://example.test/api")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("PORT", "9001")

	cfg := Load()

	if cfg.APIURL != "http://example.test/api" {
		t.Errorf("API_URL not read from env: %q", cfg.APIURL)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("HTTP_TIMEOUT not read from env: %v", cfg.HTTPTimeout)
	}
	if cfg.Port != "9001" {
		t.Errorf("PORT not read from env: %q", cfg.Port)
	}
}

func TestInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "not-a-duration")

	cfg := Load()

	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("expected fallback timeout, got %v", cfg.HTTPTimeout)
	}
}
