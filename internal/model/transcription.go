package model

import (
	"time"

	"github.com/google/uuid"
)

// Transcription represents one persisted transcription record
type Transcription struct {
	ID                uuid.UUID `json:"id"`
	UserID            string    `json:"user_id"`
	FileName          string    `json:"file_name"`
	TranscriptionText string    `json:"transcription_text"`
	FilePath          string    `json:"file_path"`
	CreatedAt         time.Time `json:"created_at"`
}

// AnonymousUserID is stored when a request carries no userId field.
const AnonymousUserID = "anonymous"
