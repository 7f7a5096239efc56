package api

import (
	"scribe/internal/config"
	"scribe/internal/repository"
	"scribe/internal/stt"
)

// Handler bundles the dependencies shared by the HTTP handlers. The
// repository may be nil when DATABASE_URL is not configured; handlers that
// need it fail with a configuration error instead of crashing.
type Handler struct {
	repo      repository.TranscriptionRepository
	stt       stt.Provider
	uploadDir string
	maxUpload int64
}

// NewHandler creates the handler set with its injected dependencies.
func NewHandler(repo repository.TranscriptionRepository, provider stt.Provider, cfg *config.Config) *Handler {
	return &Handler{
		repo:      repo,
		stt:       provider,
		uploadDir: cfg.UploadDir,
		maxUpload: cfg.MaxUploadBytes,
	}
}
