package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Gemini GeminiConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	Environment  string
	ServiceName  string
	ReadTimeout  int
	WriteTimeout int
	CORSOrigins  string // Comma-separated list of allowed origins
}

// GeminiConfig holds the generation-oracle configuration. The API key is
// injected into the adapter constructor at startup rather than read from
// ambient process state at call time.
type GeminiConfig struct {
	APIKey              string
	Model               string
	ClassifyTemperature float64
	DraftTemperature    float64
	BaseURL             string
}

// Load loads configuration from environment variables
func Load(serviceName string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Environment:  getEnv("ENVIRONMENT", "development"),
			ServiceName:  serviceName,
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 30),
			CORSOrigins:  getEnv("CORS_ORIGINS", "http://localhost:3000"),
		},
		Gemini: GeminiConfig{
			APIKey:              getEnv("GOOGLE_API_KEY", ""),
			Model:               getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			ClassifyTemperature: getEnvAsFloat("GEMINI_CLASSIFY_TEMPERATURE", 0.1),
			DraftTemperature:    getEnvAsFloat("GEMINI_DRAFT_TEMPERATURE", 0.3),
			BaseURL:             getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP listen address
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}
