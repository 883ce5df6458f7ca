package config

import (
	"errors"
	"os"
	"time"
)

// app config, mostly store and AI provider related
type Config struct {
	Port         string
	Provider     string
	MongoURI     string
	DatabaseName string
	Topic        string
	LLMTimeout   time.Duration
}

// loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		Port:         getEnvOrDefault("PORT", "8080"),
		Provider:     getEnvOrDefault("AI_PROVIDER", "gemini"),
		MongoURI:     getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		DatabaseName: getEnvOrDefault("DATABASE_NAME", "interview_assistant"),
		Topic:        getEnvOrDefault("INTERVIEW_TOPIC", "fullstack"),
		LLMTimeout:   getEnvDuration("LLM_TIMEOUT", 30*time.Second),
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Provider != "gemini" {
		return errors.New("unsupported AI provider: " + config.Provider + ". Currently supported: gemini")
	}
	if config.LLMTimeout <= 0 {
		return errors.New("LLM_TIMEOUT must be positive")
	}
	// Gemini validation is handled by gemini.NewConfig()
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
