package bootstrap

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerAddr string
	LogLevel   string

	ModelDir       string
	ScoringURL     string
	ScoringModel   string
	ScoringTimeout time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SessionTTL    time.Duration
}

func LoadConfig() *Config {
	return &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		ModelDir:       getEnv("MODEL_DIR", "./models"),
		ScoringURL:     getEnv("SCORING_URL", "http://localhost:8501"),
		ScoringModel:   getEnv("SCORING_MODEL", "abandon_prediction"),
		ScoringTimeout: time.Duration(getEnvInt("SCORING_TIMEOUT_MS", 10000)) * time.Millisecond,

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		SessionTTL:    time.Duration(getEnvInt("SESSION_TTL_SECONDS", 86400)) * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
