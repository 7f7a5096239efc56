package repository

import (
	"context"

	"github.com/google/uuid"

	"scribe/internal/model"
)

// TranscriptionRepository defines the interface for transcription record
// data access
type TranscriptionRepository interface {
	// Insert stores a new record and returns it with its assigned id
	Insert(ctx context.Context, rec *model.Transcription) (*model.Transcription, error)

	// List returns records newest-first, optionally filtered by user id
	// (empty userID means no filter)
	List(ctx context.Context, userID string) ([]model.Transcription, error)

	// GetByID retrieves a single record by id
	GetByID(ctx context.Context, id uuid.UUID) (*model.Transcription, error)

	// Delete removes a record by id; deleting an absent id is not an error
	Delete(ctx context.Context, id uuid.UUID) error

	// Ping reports whether the datastore is reachable
	Ping(ctx context.Context) error
}
