package config

import (
	"os"
)

type Config struct {
	MongoURI      string
	MongoDatabase string
	RedisAddr     string
	RedisPassword string
	Port          string
}

func Load() Config {
	return Config{
		MongoURI:      getenv("DATABASE_URL", "mongodb://localhost:27017"),
		MongoDatabase: getenv("DATABASE_NAME", "realestate"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		Port:          getenv("PORT", "8080"),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
