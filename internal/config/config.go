package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Keys      APIKeys
	Ai        AIConfig
	Retrieval RetrievalConfig
	Handshake HandshakeConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	EventLogFilePath   string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	OpenAI         string
	GoogleGemini   string
	ClerkSecret    string
	AnalyticsTopic string
}

type AIConfig struct {
	EmbeddingProvider string // "openai" or "gemini"
	LLMProvider       string // "openai" or "ollama"
	LLMModel          string
	OpenAIBaseURL     string
	OllamaBaseURL     string
}

type RetrievalConfig struct {
	Table         string
	AllowedTables []string
	TopK          int
}

type HandshakeConfig struct {
	Backend string // "memory" or "redis"
	TTL     time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			EventLogFilePath:   getEnv("EVENT_LOG_FILE_PATH", "logs/events.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			OpenAI:         getEnv("OPENAI_API_KEY", ""),
			GoogleGemini:   getEnv("GOOGLE_GEMINI_API_KEY", ""),
			ClerkSecret:    getEnv("CLERK_SECRET_KEY", ""),
			AnalyticsTopic: getEnv("ANALYTICS_TOPIC_NAME", "TRACKED_EVENTS"),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "openai"),
			LLMProvider:       getEnv("LLM_PROVIDER", "openai"),
			LLMModel:          getEnv("LLM_MODEL", "gpt-4o-mini"),
			OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
		Retrieval: RetrievalConfig{
			Table:         getEnv("RETRIEVAL_TABLE", "bents"),
			AllowedTables: getEnvAsSlice("RETRIEVAL_ALLOWED_TABLES", []string{"bents"}),
			TopK:          getEnvAsInt("RETRIEVAL_TOP_K", 10),
		},
		Handshake: HandshakeConfig{
			Backend: getEnv("HANDSHAKE_BACKEND", "memory"),
			TTL:     time.Duration(getEnvAsInt("HANDSHAKE_TTL_MINUTES", 10)) * time.Minute,
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsSlice(key string, fallback []string) []string {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	parts := strings.Split(strValue, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
