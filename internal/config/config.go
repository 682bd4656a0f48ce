package config

import (
	"fmt"
	"os"
	"time"
)

// Token lifetime for issued sessions. The redis allowlist entry and the
// JWT exp claim share this value.
const TokenTTL = 72 * time.Hour

// JWTIssuer is the iss claim on every issued token.
const JWTIssuer = "metro-rail-service"

// MediaDir is where uploaded lost-item images are written.
const MediaDir = "media/lost_items"

// Config carries the environment-driven settings read at startup.
type Config struct {
	Addr      string
	RedisAddr string
	JWTSecret string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
}

// Load reads settings from the environment, applying local-development
// defaults for anything unset.
func Load() Config {
	return Config{
		Addr:       getenv("ADDR", ":8000"),
		RedisAddr:  getenv("REDIS_ADDR", "localhost:6379"),
		JWTSecret:  getenv("JWT_SECRET", "dev-secret-change-me"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBUser:     getenv("DB_USER", "user"),
		DBPassword: getenv("DB_PASSWORD", "password"),
		DBName:     getenv("DB_NAME", "metrodb"),
		DBPort:     getenv("DB_PORT", "5432"),
	}
}

// DSN assembles the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
