package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	GinMode          string
	MongoURI         string
	MongoDatabase    string
	RabbitMQURI      string
	RabbitMQExchange string
	LLMAPIKey        string
	LLMBaseURL       string
	LLMModel         string
	JWTSecret        string
	CORSOrigins      string
	ServiceName      string
	ServiceVersion   string
}

var AppConfig *Config

func LoadConfig() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		GinMode:          getEnvOrDefault("GIN_MODE", "debug"),
		MongoURI:         getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnvOrDefault("MONGO_DATABASE", "learning_service"),
		RabbitMQURI:      getEnvOrDefault("RABBITMQ_URI", ""),
		RabbitMQExchange: getEnvOrDefault("RABBITMQ_EXCHANGE", ""),
		LLMAPIKey:        getEnvOrDefault("LLM_API_KEY", ""),
		LLMBaseURL:       getEnvOrDefault("LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMModel:         getEnvOrDefault("LLM_MODEL", "gpt-4o-mini"),
		JWTSecret:        getEnvOrDefault("JWT_SECRET", "learning_secret_key_2025"),
		CORSOrigins:      getEnvOrDefault("CORS_ORIGINS", "http://localhost:3000"),
		ServiceName:      getEnvOrDefault("SERVICE_NAME", "learning-service"),
		ServiceVersion:   getEnvOrDefault("SERVICE_VERSION", "1.0.0"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
