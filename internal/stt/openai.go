package stt

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"

	"scribe/internal/apperr"
)

// OpenAIProvider implements STT using OpenAI's Whisper transcription API
type OpenAIProvider struct {
	apiKey string
	client *openai.Client
}

// NewOpenAIProvider creates a new OpenAI STT provider. The key is validated
// per call so a missing key degrades only the transcribe endpoint.
func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	return &OpenAIProvider{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Transcribe sends the audio file to the Whisper transcription endpoint
func (p *OpenAIProvider) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if p.apiKey == "" {
		return "", apperr.Configuration("transcription API key not configured")
	}

	resp, err := p.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
	})
	if err != nil {
		log.Error().Err(err).Str("path", audioPath).Msg("openai transcription failed")
		return "", apperr.Transcription("failed to transcribe audio", err)
	}

	return resp.Text, nil
}
