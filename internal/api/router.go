package api

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the API routes onto the gin engine.
func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api", ErrorBoundary())
	{
		api.GET("/health", h.healthCheck)

		api.POST("/transcribe", h.transcribeAudio)
		api.GET("/transcriptions", h.listTranscriptions)
		api.GET("/transcriptions/:id", h.getTranscription)
		api.DELETE("/transcriptions/:id", h.deleteTranscription)
	}
}
