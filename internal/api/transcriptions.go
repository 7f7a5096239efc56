package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"scribe/internal/apperr"
	"scribe/internal/storage"
	"scribe/internal/utils"
)

// listTranscriptions handles GET /api/transcriptions with an optional
// userId query filter
func (h *Handler) listTranscriptions(c *gin.Context) {
	if h.repo == nil {
		c.Error(apperr.Configuration("Database is not configured"))
		return
	}

	records, err := h.repo.List(c.Request.Context(), c.Query("userId"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": len(records),
		"data": gin.H{
			"transcriptions": records,
		},
	})
}

// getTranscription handles GET /api/transcriptions/:id
func (h *Handler) getTranscription(c *gin.Context) {
	if h.repo == nil {
		c.Error(apperr.Configuration("Database is not configured"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperr.Validation("invalid transcription id"))
		return
	}

	rec, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	utils.Success(c, gin.H{
		"transcription": rec,
	})
}

// deleteTranscription handles DELETE /api/transcriptions/:id.
// Fetch-then-delete: an absent id fails the whole operation before any row
// or file is touched. Row and file deletion are not transactional; a file
// removal failure after the row is gone is logged and the operation still
// reports success.
func (h *Handler) deleteTranscription(c *gin.Context) {
	if h.repo == nil {
		c.Error(apperr.Configuration("Database is not configured"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperr.Validation("invalid transcription id"))
		return
	}

	rec, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	if rec.FilePath != "" {
		if err := storage.Remove(h.uploadDir, rec.FilePath); err != nil {
			log.Warn().Err(err).Str("file_path", rec.FilePath).Msg("failed to remove audio file")
		}
	}

	log.Info().Str("id", id.String()).Msg("transcription deleted")

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Transcription deleted successfully",
	})
}
