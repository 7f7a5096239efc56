package stt

import "context"

// Provider defines the interface for speech-to-text providers
type Provider interface {
	// Transcribe runs speech-to-text on the audio file at path and returns
	// the transcript text
	Transcribe(ctx context.Context, audioPath string) (string, error)

	// Name returns the name of the provider (e.g., "deepinfra", "openai")
	Name() string
}
