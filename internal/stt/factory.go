package stt

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"scribe/internal/config"
)

// CreateProvider creates an STT provider from configuration. A missing API
// key is not an error here; providers check their key per call.
func CreateProvider(cfg *config.Config) (Provider, error) {
	name := strings.ToLower(cfg.STTProvider)

	// Default to DeepInfra if not specified
	if name == "" {
		name = "deepinfra"
	}

	switch name {
	case "deepinfra":
		log.Info().Msg("creating DeepInfra STT provider")
		return NewDeepInfraProvider(cfg.DeepInfraAPIKey, cfg.DeepInfraURL), nil
	case "openai":
		log.Info().Msg("creating OpenAI STT provider")
		return NewOpenAIProvider(cfg.OpenAIKey), nil
	default:
		return nil, fmt.Errorf("unsupported STT provider: %s. Supported: deepinfra, openai", name)
	}
}
