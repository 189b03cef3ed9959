package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	GinMode   string
	JWTSecret []byte
	JWTTTL    time.Duration
}

// Load reads configuration from the environment, with a .env file as
// fallback for local development.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	return &Config{
		DBSource:  getEnv("DB_SOURCE", "restaurant.db"),
		Port:      getEnv("PORT", "8080"),
		GinMode:   getEnv("GIN_MODE", ""),
		JWTSecret: []byte(getEnv("JWT_SECRET", "restaurant_super_secret_2025")),
		JWTTTL:    24 * time.Hour,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
