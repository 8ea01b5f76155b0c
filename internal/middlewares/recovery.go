package middlewares

import (
	"io"
	"net/http"

	"favorites_api/internal/responses"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Recovery turns a panic into the same 500 body as any other internal error.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		log.Ctx(c.Request.Context()).Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("recovered from panic")

		responses.Fail(c, http.StatusInternalServerError, "Internal server error")
	})
}
