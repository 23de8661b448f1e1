package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Inventory InventoryConfig
	Ai        AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	WebhookToken       string
}

type DatabaseConfig struct {
	Connection string
}

type InventoryConfig struct {
	CSVPath        string
	KnowledgeScope string
}

type AIConfig struct {
	EmbeddingProvider   string // "gemini" or "ollama"
	EmbeddingCacheTTL   time.Duration
	OllamaBaseURL       string
	OllamaModel         string
	LLMProvider         string // "ollama" or "deepseek"
	LLMModel            string
	DeepSeekAPIKey      string
	DeepSeekBaseURL     string
	GeminiAPIKey        string
	KnowledgeTopic      string
	RetrievalTopK       int
	SimilarityThreshold float64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			WebhookToken:       getEnv("WEBHOOK_TOKEN", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Inventory: InventoryConfig{
			CSVPath:        getEnv("INVENTORY_CSV_PATH", "inventory.csv"),
			KnowledgeScope: getEnv("KNOWLEDGE_SCOPE", "vendai"),
		},
		Ai: AIConfig{
			EmbeddingProvider:   getEnv("EMBEDDING_PROVIDER", "ollama"),
			EmbeddingCacheTTL:   getEnvAsDuration("EMBEDDING_CACHE_TTL", 24*time.Hour),
			OllamaBaseURL:       getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:         getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:         getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:            getEnv("LLM_MODEL", "llama3"),
			DeepSeekAPIKey:      getEnv("DEEPSEEK_API_KEY", ""),
			DeepSeekBaseURL:     getEnv("DEEPSEEK_BASE_URL", "https://api.deepseek.com/v1"),
			GeminiAPIKey:        getEnv("GOOGLE_GEMINI_API_KEY", ""),
			KnowledgeTopic:      getEnv("EMBED_KNOWLEDGE_TOPIC_NAME", "EMBED_KNOWLEDGE"),
			RetrievalTopK:       getEnvAsInt("RETRIEVAL_TOP_K", 3),
			SimilarityThreshold: getEnvAsFloat("SIMILARITY_THRESHOLD", 0.35),
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

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
