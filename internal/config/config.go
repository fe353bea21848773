package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds everything the API reads from the environment.
type Config struct {
	MongoURI     string
	MongoDB      string
	Port         string
	JWTSecret    string
	GeminiAPIKey string
	GinMode      string
}

var (
	config *Config
	once   sync.Once
)

// Load reads the .env file (if present) and returns the singleton Config.
func Load() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, relying on environment variables.")
		}
		config = &Config{
			MongoURI:     getEnv("MONGO_URI", ""),
			MongoDB:      getEnv("MONGO_DATABASE", "mindease"),
			Port:         getEnv("PORT", "5000"),
			JWTSecret:    getEnv("JWT_SECRET", ""),
			GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
			GinMode:      getEnv("GIN_MODE", "debug"),
		}
	})
	return config
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
