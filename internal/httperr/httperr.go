package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"error"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Respond converts err into the matching JSON failure. Errors outside the
// taxonomy are logged and reported with an opaque message.
func Respond(c *gin.Context, err error) {
	var (
		ve  ValidationError
		nfe NotFoundError
		ce  ConflictError
		ue  UnauthorizedError
	)

	switch {
	case errors.As(err, &ve):
		BadRequest(c, "validation_error", ve.Error())
	case errors.As(err, &nfe):
		NotFound(c, "not_found", nfe.Error())
	case errors.As(err, &ce):
		Conflict(c, ce.Code, ce.Message)
	case errors.As(err, &ue):
		Unauthorized(c, ue.Code, ue.Code)
	default:
		slog.ErrorContext(c.Request.Context(), "unhandled request error",
			"error", err,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"request_id", c.GetString("requestID"),
		)
		Internal(c, "internal_error", "internal server error")
	}
}
