package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"scribe/internal/apperr"
	"scribe/internal/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a PostgreSQL repository backed by the given
// pool. Driver errors are logged here and surfaced to callers as generic
// persistence errors.
func NewPostgresRepository(pool *pgxpool.Pool) TranscriptionRepository {
	return &postgresRepository{pool: pool}
}

// Insert stores a new record. The id is assigned by the database.
func (r *postgresRepository) Insert(ctx context.Context, rec *model.Transcription) (*model.Transcription, error) {
	query := `
		INSERT INTO transcriptions (user_id, file_name, transcription_text, file_path, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	saved := *rec
	err := r.pool.QueryRow(ctx, query,
		rec.UserID,
		rec.FileName,
		rec.TranscriptionText,
		rec.FilePath,
		rec.CreatedAt,
	).Scan(&saved.ID)

	if err != nil {
		log.Error().Err(err).Msg("failed to insert transcription")
		return nil, apperr.Persistence("Failed to save transcription to database", err)
	}

	return &saved, nil
}

// List returns records newest-first, optionally filtered by user id.
func (r *postgresRepository) List(ctx context.Context, userID string) ([]model.Transcription, error) {
	query := `
		SELECT id, user_id, file_name, transcription_text, file_path, created_at
		FROM transcriptions
	`
	var args []any
	if userID != "" {
		query += ` WHERE user_id = $1`
		args = append(args, userID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		log.Error().Err(err).Msg("failed to query transcriptions")
		return nil, apperr.Persistence("Failed to fetch transcriptions from database", err)
	}
	defer rows.Close()

	records := make([]model.Transcription, 0)
	for rows.Next() {
		var rec model.Transcription
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.FileName,
			&rec.TranscriptionText,
			&rec.FilePath,
			&rec.CreatedAt,
		); err != nil {
			log.Error().Err(err).Msg("failed to scan transcription row")
			return nil, apperr.Persistence("Failed to fetch transcriptions from database", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		log.Error().Err(err).Msg("error iterating transcription rows")
		return nil, apperr.Persistence("Failed to fetch transcriptions from database", err)
	}

	return records, nil
}

// GetByID retrieves a single record. Zero rows map to a not-found error,
// distinct from query failures.
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Transcription, error) {
	query := `
		SELECT id, user_id, file_name, transcription_text, file_path, created_at
		FROM transcriptions
		WHERE id = $1
	`

	var rec model.Transcription
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rec.ID,
		&rec.UserID,
		&rec.FileName,
		&rec.TranscriptionText,
		&rec.FilePath,
		&rec.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("Transcription not found")
	}
	if err != nil {
		log.Error().Err(err).Str("id", id.String()).Msg("failed to fetch transcription")
		return nil, apperr.Persistence("Failed to fetch transcription from database", err)
	}

	return &rec, nil
}

// Delete removes a record by id. Deleting an absent id is not an error at
// this level; the handler decides existence via GetByID first.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM transcriptions WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		log.Error().Err(err).Str("id", id.String()).Msg("failed to delete transcription")
		return apperr.Persistence("Failed to delete transcription", err)
	}

	return nil
}

// Ping reports whether the datastore is reachable.
func (r *postgresRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
