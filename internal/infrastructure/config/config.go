package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Quiz persistence
	DBPath string

	// LLM question generation
	LLMURL   string // OpenAI-compatible endpoint, e.g. "https://router.huggingface.co"
	LLMModel string // model name, e.g. "meta-llama/Meta-Llama-3-8B-Instruct"
	LLMToken string // bearer token, empty for local endpoints

	// Parallel chunk generation
	GenerationWorkers int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:     mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout:   mustGetDuration("SHUTDOWN_TIMEOUT"),
		DBPath:            getenvDefault("DB_PATH", "quizzer.db"),
		LLMURL:            getenvDefault("LLM_URL", "http://localhost:1234"),
		LLMModel:          getenvDefault("LLM_MODEL", "qwen3-8b"),
		LLMToken:          os.Getenv("HF_TOKEN"),
		GenerationWorkers: getenvInt("GENERATION_WORKERS", 4),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getenvInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid integer: %v", k, v, err)
	}
	return n
}
