package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver         string
	DBPath           string
	DBUser           string
	DBPassword       string
	DBHost           string
	DBPort           string
	DBName           string
	JWTSecret        string
	HTTPAddr         string
	LogDir           string
	MockProperties   string
	SessionCacheSize int
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() Config {
	// a missing .env is fine, the environment still applies
	_ = godotenv.Load()

	return Config{
		DBDriver:         getEnv("DB_DRIVER", "sqlite"),
		DBPath:           getEnv("DB_PATH", "fooddecider.db"),
		DBUser:           getEnv("DB_USER", ""),
		DBPassword:       getEnv("DB_PASSWORD", ""),
		DBHost:           getEnv("DB_HOST", ""),
		DBPort:           getEnv("DB_PORT", ""),
		DBName:           getEnv("DB_NAME", ""),
		JWTSecret:        getEnv("JWT_SECRET", "fooddecider-dev-secret"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8000"),
		LogDir:           getEnv("LOG_DIR", "./logs"),
		MockProperties:   getEnv("MOCK_PROPERTIES", ""),
		SessionCacheSize: getEnvInt("SESSION_CACHE_SIZE", 1024),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
