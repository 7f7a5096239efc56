package stt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"scribe/internal/apperr"
)

// DeepInfraProvider implements STT using DeepInfra's hosted Whisper API.
// One attempt per call, transport-default timeout, no retry.
type DeepInfraProvider struct {
	apiKey string
	url    string
	client *http.Client
}

// NewDeepInfraProvider creates a new DeepInfra STT provider. The API key is
// checked per call, not here, so the process can run degraded without it.
func NewDeepInfraProvider(apiKey, url string) *DeepInfraProvider {
	return &DeepInfraProvider{
		apiKey: apiKey,
		url:    url,
		client: http.DefaultClient,
	}
}

// Name returns the provider name
func (p *DeepInfraProvider) Name() string {
	return "deepinfra"
}

// deepInfraResponse represents the Whisper inference API response. Text is a
// pointer so an absent field is distinguishable from an empty transcript.
type deepInfraResponse struct {
	Text *string `json:"text"`
}

// Transcribe reads the whole audio file into memory and submits it as a
// single multipart upload. The remote error body, if any, is logged but
// never returned to the caller.
func (p *DeepInfraProvider) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if p.apiKey == "" {
		return "", apperr.Configuration("transcription API key not configured")
	}

	audioBytes, err := os.ReadFile(audioPath)
	if err != nil {
		return "", apperr.Transcription("failed to read audio file", err)
	}

	log.Info().Str("path", audioPath).Int("size", len(audioBytes)).Msg("submitting audio for transcription")

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", apperr.Transcription("failed to build upload request", err)
	}
	if _, err := part.Write(audioBytes); err != nil {
		return "", apperr.Transcription("failed to build upload request", err)
	}
	if err := w.Close(); err != nil {
		return "", apperr.Transcription("failed to build upload request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, &buf)
	if err != nil {
		return "", apperr.Transcription("failed to build upload request", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := p.client.Do(req)
	if err != nil {
		return "", apperr.Transcription("failed to reach transcription service", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperr.Transcription("failed to read transcription response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error().Int("status", resp.StatusCode).Str("body", preview(body)).Msg("transcription API error")
		return "", apperr.Transcription(fmt.Sprintf("transcription service returned status %d", resp.StatusCode), nil)
	}

	var out deepInfraResponse
	if err := json.Unmarshal(body, &out); err != nil {
		log.Error().Str("body", preview(body)).Msg("failed to parse transcription response")
		return "", apperr.Transcription("invalid response from transcription service", err)
	}
	if out.Text == nil {
		log.Error().Str("body", preview(body)).Msg("transcription response missing text field")
		return "", apperr.Transcription("invalid response from transcription service", nil)
	}

	log.Info().Int("length", len(*out.Text)).Msg("transcription successful")
	return *out.Text, nil
}

// preview truncates a response body for logging (first 500 chars)
func preview(body []byte) string {
	s := string(body)
	if len(s) > 500 {
		return s[:500] + "..."
	}
	return s
}
