package responses

import (
	"net/http"

	"favorites_api/internal/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorBody is the JSON shape of every failed request.
type ErrorBody struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Text writes a plain-text body, used by the delete endpoints.
func Text(c *gin.Context, statusCode int, message string) {
	c.String(statusCode, message)
}

func Fail(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{
		Message:    message,
		StatusCode: statusCode,
	})
}

// Error writes err with the status of its kind. Unclassified errors become
// a generic 500 and are logged with their cause.
func Error(c *gin.Context, err error) {
	appErr := apperrors.From(err)
	status := appErr.Kind.StatusCode()

	if status >= http.StatusInternalServerError {
		log.Ctx(c.Request.Context()).Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
	}

	Fail(c, status, appErr.Message)
}

// NotFound is written for unmatched routes and malformed ids.
func NotFound(c *gin.Context) {
	Fail(c, http.StatusNotFound, "Not found")
}
