package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_TYPE", "QUIZ_SESSION_SIZE", "QUIZ_SESSION_TTL", "SESSION_SECRET", "ALLOWED_ORIGINS", "DEBUG"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want 8080", cfg.ServerPort)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("DatabaseType = %q, want sqlite", cfg.DatabaseType)
	}
	if cfg.SessionSize != 8 {
		t.Errorf("SessionSize = %d, want 8", cfg.SessionSize)
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Errorf("SessionTTL = %s, want 2h", cfg.SessionTTL)
	}
	if cfg.SessionSecret == "" {
		t.Error("SessionSecret should fall back to a development secret")
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("QUIZ_SESSION_SIZE", "5")
	t.Setenv("QUIZ_SESSION_TTL", "30m")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000, https://quiz.example.com ,")
	t.Setenv("DEBUG", "true")

	cfg := Load()
	if cfg.ServerPort != "9090" || cfg.DatabaseType != "postgres" {
		t.Errorf("got port %q type %q", cfg.ServerPort, cfg.DatabaseType)
	}
	if cfg.SessionSize != 5 || cfg.SessionTTL != 30*time.Minute {
		t.Errorf("got size %d ttl %s", cfg.SessionSize, cfg.SessionTTL)
	}
	want := []string{"http://localhost:3000", "https://quiz.example.com"}
	if !reflect.DeepEqual(cfg.AllowedOrigins, want) {
		t.Errorf("AllowedOrigins = %v, want %v", cfg.AllowedOrigins, want)
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("QUIZ_SESSION_SIZE", "eight")
	t.Setenv("QUIZ_SESSION_TTL", "soon")
	t.Setenv("DEBUG", "maybe")

	cfg := Load()
	if cfg.SessionSize != 8 || cfg.SessionTTL != 2*time.Hour || cfg.Debug {
		t.Errorf("invalid values should fall back to defaults, got %d %s %t", cfg.SessionSize, cfg.SessionTTL, cfg.Debug)
	}
}
