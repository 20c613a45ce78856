package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DBDriver          string
	DBDSN             string
	JWTSecret         string
	TokenTTL          time.Duration
	AllowedOrigins    []string
	MinPasswordLength int
}

// Load reads configuration from the environment, falling back to development
// defaults. A .env file is honored when present.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		DBDriver:          getEnv("DB_DRIVER", "sqlite3"),
		DBDSN:             os.Getenv("DATABASE_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		TokenTTL:          time.Duration(getEnvInt("JWT_TTL_MINUTES", 24*60)) * time.Minute,
		MinPasswordLength: getEnvInt("MIN_PASSWORD_LENGTH", 6),
	}

	if cfg.DBDSN == "" && cfg.DBDriver == "sqlite3" {
		cfg.DBDSN = getEnv("DB_PATH", "./finledger.db")
	}
	if os.Getenv("DATABASE_URL") != "" && os.Getenv("DB_DRIVER") == "" {
		cfg.DBDriver = "postgres"
	}

	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set, using a default key. This is NOT secure for production!")
		cfg.JWTSecret = "default-key-for-development-only"
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowedOrigins = []string{
			"http://localhost:5173", // Vite development server
			"http://localhost:3000", // Alternative local development
			"http://localhost:8080", // Backend port
		}
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
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
		log.Printf("Warning: invalid %s=%q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
