package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	ServerPort      string
	DatabaseType    string
	DatabasePath    string
	DatabaseURL     string
	QuizDataPath    string
	SessionSize     int
	SessionTTL      time.Duration
	SessionSecret   string
	StaticFilesPath string
	AllowedOrigins  []string
	StartRateLimit  int
	StartRateWindow time.Duration
	Debug           bool
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	cfg := &Config{
		ServerPort:      getEnv("PORT", "8080"),
		DatabaseType:    getEnv("DB_TYPE", "sqlite"),
		DatabasePath:    getEnv("DB_PATH", "./sentenceclash.db"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		QuizDataPath:    getEnv("QUIZ_DATA_PATH", ""),
		SessionSize:     getEnvInt("QUIZ_SESSION_SIZE", 8),
		SessionTTL:      getEnvDuration("QUIZ_SESSION_TTL", 2*time.Hour),
		SessionSecret:   getEnv("SESSION_SECRET", ""),
		StaticFilesPath: getEnv("STATIC_PATH", "./static"),
		AllowedOrigins:  splitList(getEnv("ALLOWED_ORIGINS", "")),
		StartRateLimit:  getEnvInt("START_RATE_LIMIT", 30),
		StartRateWindow: getEnvDuration("START_RATE_WINDOW", time.Minute),
		Debug:           getEnvBool("DEBUG", false),
	}

	if cfg.SessionSecret == "" {
		log.Println("Warning: SESSION_SECRET not set, using an insecure development secret")
		cfg.SessionSecret = "sentenceclash-development-secret"
	}

	return cfg
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %t", key, value, defaultValue)
		return defaultValue
	}
	return b
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
