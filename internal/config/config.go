package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Stream  StreamConfig
	Worker  WorkerConfig
	Gemini  GeminiConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type StorageConfig struct {
	MaxFileSize     int64
	ArtifactTTL     time.Duration
	CleanupInterval time.Duration
}

type StreamConfig struct {
	Lifetime time.Duration
	Buffer   int
}

type WorkerConfig struct {
	Concurrency int
	QueueSize   int
}

type GeminiConfig struct {
	Model       string
	Temperature float64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Storage: StorageConfig{
			MaxFileSize:     getEnvAsInt64("MAX_FILE_SIZE", 5242880),
			ArtifactTTL:     getEnvAsDuration("ARTIFACT_TTL", "15m"),
			CleanupInterval: getEnvAsDuration("ARTIFACT_CLEANUP_INTERVAL", "1m"),
		},
		Stream: StreamConfig{
			Lifetime: getEnvAsDuration("STREAM_LIFETIME", "180s"),
			Buffer:   getEnvAsInt("STREAM_BUFFER", 16),
		},
		Worker: WorkerConfig{
			Concurrency: getEnvAsInt("WORKER_CONCURRENCY", 4),
			QueueSize:   getEnvAsInt("WORKER_QUEUE_SIZE", 16),
		},
		Gemini: GeminiConfig{
			Model:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Temperature: getEnvAsFloat("GEMINI_TEMPERATURE", 0.2),
		},
	}
}

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

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
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

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
