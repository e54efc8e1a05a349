package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort = "8080"
	// DefaultTokenExpiryMin is seven days, matching the token lifetime the
	// frontend assumes.
	DefaultTokenExpiryMin = 10080
)

type Config struct {
	Env            string
	Port           string
	DBURL          string
	JWTSecret      string
	TokenExpiryMin int
}

// Load reads configuration from the environment, falling back to a
// config/.env.<env> file for anything not set. Environment variables always
// win over file values.
func Load() *Config {
	env := getEnv("ENV", "development")

	envFile := "config/.env.dev"
	if env == "production" {
		envFile = "config/.env.prod"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("No %s file found, relying on environment variables", envFile)
	}

	return &Config{
		Env:            env,
		Port:           getEnv("PORT", DefaultPort),
		DBURL:          mustGetEnv("DB_URL"),
		JWTSecret:      mustGetEnv("JWT_SECRET"),
		TokenExpiryMin: getEnvAsInt("TOKEN_EXPIRY", DefaultTokenExpiryMin),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}
