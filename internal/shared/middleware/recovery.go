package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookfinder-backend/internal/shared/apierror"
)

// Recovery turns panics into a plain 500 body in the standard error shape.
// Panics are not part of the error taxonomy; they get the generic internal
// server message, never a kind-specific one.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Interface("error", err).
					Msg("Panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.Response{
					Status:  http.StatusInternalServerError,
					Error:   http.StatusText(http.StatusInternalServerError),
					Message: "Internal server error.",
					Path:    c.Request.URL.Path,
				})
			}
		}()

		c.Next()
	}
}
