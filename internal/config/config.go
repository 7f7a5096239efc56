package config

import (
	"fmt"
	"os"
	"strconv"
)

const defaultWhisperURL = "https://api.deepinfra.com/v1/inference/openai/whisper-large-v3"

type Config struct {
	Port            string
	DatabaseURL     string
	STTProvider     string
	DeepInfraAPIKey string
	DeepInfraURL    string
	OpenAIKey       string
	UploadDir       string
	MaxUploadBytes  int64
}

// Load loads configuration from environment variables. Missing credentials
// do not fail startup; the endpoints that need them fail on first use.
func Load() (*Config, error) {
	maxUpload := int64(25 << 20)
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid MAX_UPLOAD_BYTES: %q", v)
		}
		maxUpload = n
	}

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		STTProvider:     getEnv("STT_PROVIDER", "deepinfra"),
		DeepInfraAPIKey: os.Getenv("DEEPINFRA_API_KEY"),
		DeepInfraURL:    getEnv("DEEPINFRA_WHISPER_URL", defaultWhisperURL),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes:  maxUpload,
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
