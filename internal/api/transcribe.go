package api

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"scribe/internal/apperr"
	"scribe/internal/model"
	"scribe/internal/storage"
	"scribe/internal/utils"
)

// iPhone records M4A by default; CAF, WAV, AIFF and MP3 arrive via
// third-party apps.
var allowedExts = map[string]bool{
	".m4a": true, ".mp3": true, ".wav": true, ".aac": true,
	".ogg": true, ".caf": true, ".aiff": true, ".aif": true,
}

// transcribeAudio handles POST /api/transcribe. It sequences upload
// validation, the speech-to-text call and persistence, and responds with
// the saved record together with the raw transcript. The stored file is
// removed on every failure branch and kept only once a record references it.
func (h *Handler) transcribeAudio(c *gin.Context) {
	file, err := c.FormFile("audio")
	if err != nil {
		c.Error(apperr.Validation("No audio file uploaded"))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExts[ext] {
		c.Error(apperr.Validation("unsupported audio format. Supported: m4a, mp3, wav, aac, ogg, caf, aiff"))
		return
	}
	if file.Size > h.maxUpload {
		c.Error(apperr.Validation(fmt.Sprintf("file size exceeds %dMB limit", h.maxUpload>>20)))
		return
	}

	// Fail before saving the file or paying for a transcription call.
	if h.repo == nil {
		c.Error(apperr.Configuration("Database is not configured"))
		return
	}

	audio, err := storage.Save(h.uploadDir, file)
	if err != nil {
		log.Error().Err(err).Str("file_name", file.Filename).Msg("failed to save uploaded audio")
		c.Error(err)
		return
	}
	defer audio.Cleanup()

	text, err := h.stt.Transcribe(c.Request.Context(), audio.Path)
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.PostForm("userId")
	if userID == "" {
		userID = model.AnonymousUserID
	}

	rec := &model.Transcription{
		UserID:            userID,
		FileName:          audio.OriginalName,
		TranscriptionText: text,
		FilePath:          audio.StoredName,
		CreatedAt:         time.Now().UTC(),
	}

	saved, err := h.repo.Insert(c.Request.Context(), rec)
	if err != nil {
		c.Error(err)
		return
	}
	audio.Keep()

	log.Info().Str("id", saved.ID.String()).Str("user_id", saved.UserID).Msg("transcription saved")

	utils.Success(c, gin.H{
		"transcription": saved,
		"text":          text,
	})
}
