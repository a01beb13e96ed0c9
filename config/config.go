package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI        string
	MongoDB         string
	Port            string
	JWTSecret       string
	CloudinaryCloud string
	Environment     string
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func LoadConfig() Config {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	cfg := Config{
		MongoURI:        getEnv("MONGODB_URI", ""),
		MongoDB:         getEnv("MONGO_DB", "meetspace"),
		Port:            getEnv("PORT", "8000"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		CloudinaryCloud: getEnv("CLOUDINARY_CLOUD_NAME", "meetspace"),
		Environment:     getEnv("APP_ENV", "development"),
	}
	return cfg
}
