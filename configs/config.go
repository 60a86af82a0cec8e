package configs

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource     string
	Port         string
	JWTSecret    string
	JWTTTL       time.Duration
	LogLevel     string
	AllowOrigins []string
}

func LoadConfig() *Config {
	// .env is optional outside local dev
	_ = godotenv.Load()

	return &Config{
		DBSource:     getEnv("DB_SOURCE", "marketplace.db"),
		Port:         getEnv("PORT", "8000"),
		JWTSecret:    getEnv("JWT_SECRET", "changeme"),
		JWTTTL:       24 * time.Hour,
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		AllowOrigins: strings.Split(getEnv("ALLOW_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func MustGetEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		log.Fatalf("missing env: %s", key)
	}
	return v
}
