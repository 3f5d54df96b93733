package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
	Assistant AssistantConfig
	App       AppConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret          string
	TokenTTL           time.Duration
	GoogleClientID     string
	GoogleClientSecret string
}

type AssistantConfig struct {
	UploadTTL     time.Duration
	UpstreamAIURL string
}

type AppConfig struct {
	Environment string
	// StorageMode selects the repository backends: "memory" keeps
	// everything in-process (dev), "external" uses Postgres + Redis.
	StorageMode string
	Version     string
	// Simulated network latency bounds, applied only in memory mode.
	MockDelayMin time.Duration
	MockDelayMax time.Duration
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: []string{getEnv("CORS_ORIGIN", "http://localhost:5173")},
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "nexter"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			JWTSecret:          getEnv("JWT_SECRET", ""),
			TokenTTL:           getEnvAsDuration("TOKEN_TTL", 720*time.Hour),
			GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		},
		Assistant: AssistantConfig{
			UploadTTL:     getEnvAsDuration("UPLOAD_TTL", 7*24*time.Hour),
			UpstreamAIURL: getEnv("AI_BASE_URL", ""),
		},
		App: AppConfig{
			Environment:  getEnv("APP_ENV", "development"),
			StorageMode:  getEnv("STORAGE_MODE", "memory"),
			Version:      getEnv("APP_VERSION", "1.0.0"),
			MockDelayMin: getEnvAsDuration("MOCK_DELAY_MIN", 200*time.Millisecond),
			MockDelayMax: getEnvAsDuration("MOCK_DELAY_MAX", 1200*time.Millisecond),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.App.StorageMode != "memory" && c.App.StorageMode != "external" {
		return fmt.Errorf("STORAGE_MODE must be \"memory\" or \"external\"")
	}

	if c.App.StorageMode == "external" {
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required in external mode")
		}
		if c.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required in external mode")
		}
	}

	if c.Auth.JWTSecret == "" && c.App.Environment == "production" {
		return fmt.Errorf("JWT_SECRET is required in production")
	}

	if c.App.MockDelayMax < c.App.MockDelayMin {
		return fmt.Errorf("MOCK_DELAY_MAX must be >= MOCK_DELAY_MIN")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}
