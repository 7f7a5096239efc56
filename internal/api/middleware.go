package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"scribe/internal/apperr"
	"scribe/internal/utils"
)

// ErrorBoundary funnels errors attached via c.Error into the JSON error
// envelope. Typed application errors choose their own status code; anything
// else becomes a generic 500. The full error chain is logged server-side,
// only the client-safe message goes out.
func ErrorBoundary() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var ae *apperr.Error
		if errors.As(err, &ae) {
			log.Error().Err(err).Str("path", c.Request.URL.Path).Int("status", ae.HTTPStatus()).Msg("request failed")
			utils.Error(c, ae.HTTPStatus(), ae.Message)
			return
		}

		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		utils.Error(c, http.StatusInternalServerError, "Something went wrong!")
	}
}
