package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver      string
	DBSource      string
	AdminEmail    string
	AdminPassword string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	return &Config{
		DBDriver:      getEnv("DB_DRIVER", "postgres"),
		DBSource:      getEnv("DB_SOURCE", os.Getenv("POSTGRES_URL")),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@hbnb.io"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin1234"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
