package environment

import (
	"os"
	"strconv"
	"time"
)

// GetEnv reads an environment variable with a fallback default
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func GetGroqAPIKey() string {
	return os.Getenv("GROQ_API_KEY")
}

// GetGroqBaseURL returns the OpenAI-compatible endpoint of the generative backend
func GetGroqBaseURL() string {
	return GetEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1")
}

func GetGroqModel() string {
	return GetEnv("GROQ_MODEL", "meta-llama/llama-4-scout-17b-16e-instruct")
}

// GetServerURL returns the base URL of the commerce backend (product search + cart)
func GetServerURL() string {
	return os.Getenv("SERVER_URL")
}

func GetOpenAITimeout() time.Duration {
	return time.Duration(getEnvAsInt("OPENAI_TIMEOUT_SECONDS", 60)) * time.Second
}

func GetSessionTTL() time.Duration {
	return time.Duration(getEnvAsInt("SESSION_TTL_HOURS", 24)) * time.Hour
}

func GetDBHost() string     { return GetEnv("DB_HOST", "localhost") }
func GetDBPort() string     { return GetEnv("DB_PORT", "5432") }
func GetDBName() string     { return os.Getenv("DB_NAME") }
func GetDBUser() string     { return os.Getenv("DB_USER") }
func GetDBPassword() string { return os.Getenv("DB_PASSWORD") }
func GetDBSSLMode() string  { return GetEnv("DB_SSLMODE", "disable") }
