package errors

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard-api/internal/apperror"
)

// APIError represents a standardized API error response.
// Message is either a string or, for validation failures, a list of strings.
type APIError struct {
	StatusCode int         `json:"statusCode"`
	Error      string      `json:"error"`
	Message    interface{} `json:"message"`
}

// NewAPIError creates a new APIError for the given status code.
func NewAPIError(statusCode int, message interface{}) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Error:      http.StatusText(statusCode),
		Message:    message,
	}
}

// RespondWithError sends an error response and aborts the handler chain.
func RespondWithError(c *gin.Context, err *APIError) {
	c.AbortWithStatusJSON(err.StatusCode, err)
}

// Respond maps a service error onto its HTTP representation.
// Errors that carry no domain kind are logged and reported as 500 without detail.
func Respond(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if !stderrors.As(err, &appErr) {
		slog.ErrorContext(c.Request.Context(), "unhandled error",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
		)
		InternalError(c, "")
		return
	}

	switch {
	case stderrors.Is(err, apperror.ErrValidation):
		ValidationFailed(c, appErr.Details)
	case stderrors.Is(err, apperror.ErrBadRequest):
		BadRequest(c, appErr.Message)
	case stderrors.Is(err, apperror.ErrUnauthorized):
		Unauthorized(c, appErr.Message)
	case stderrors.Is(err, apperror.ErrForbidden):
		Forbidden(c, appErr.Message)
	case stderrors.Is(err, apperror.ErrNotFound):
		NotFound(c, appErr.Message)
	case stderrors.Is(err, apperror.ErrConflict):
		Conflict(c, appErr.Message)
	default:
		InternalError(c, "")
	}
}

// Helper functions for common error responses

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	RespondWithError(c, NewAPIError(http.StatusUnauthorized, message))
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Access denied"
	}
	RespondWithError(c, NewAPIError(http.StatusForbidden, message))
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	RespondWithError(c, NewAPIError(http.StatusNotFound, message))
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, NewAPIError(http.StatusBadRequest, message))
}

// ValidationFailed sends a 400 response listing every failed field
func ValidationFailed(c *gin.Context, messages []string) {
	if len(messages) == 0 {
		BadRequest(c, "")
		return
	}
	RespondWithError(c, NewAPIError(http.StatusBadRequest, messages))
}

// Conflict sends a 409 response
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "Resource conflict"
	}
	RespondWithError(c, NewAPIError(http.StatusConflict, message))
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	RespondWithError(c, NewAPIError(http.StatusInternalServerError, message))
}
