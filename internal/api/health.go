package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"scribe/internal/utils"
)

// healthCheck handles GET /api/health: liveness plus a database
// reachability probe
func (h *Handler) healthCheck(c *gin.Context) {
	if h.repo == nil {
		utils.Error(c, http.StatusInternalServerError, "Database connection failed")
		return
	}

	if err := h.repo.Ping(c.Request.Context()); err != nil {
		log.Error().Err(err).Msg("health check: database unreachable")
		utils.Error(c, http.StatusInternalServerError, "Database connection failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"message":   "Server is healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
