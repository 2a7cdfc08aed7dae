// Package handlers provides HTTP handler implementations for the public API.
//
// Every endpoint writes its responses through the helpers in this file so
// that error bodies share a single envelope and success bodies are plain
// JSON serializations of the service-layer types.
//
// Conventions:
//   - Errors always serialize as ErrorResponse with a stable `code`
//     (see errors.go for the full constant list).
//   - fail() is the single choke point for error formatting; it also logs
//     5xx responses with the request-scoped logger so server faults are
//     never silently swallowed.
//   - ok() and noContent() keep success paths uniform across handlers.
//
// A failed lookup, for example, renders as:
//
//	HTTP/1.1 404 Not Found
//	{
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000",
//	  "code": "not_found",
//	  "message": "no reading progress for chapter"
//	}
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-quran-backend/internal/http/middleware"
)

// ErrorResponse is the error envelope returned by every endpoint.
// RequestID echoes the X-Request-ID header so a client error can be
// matched to its server-side log line.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"not_found"`
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"resource not found"`
}

// fail aborts the request with a structured error body. Statuses at or
// above 500 are additionally logged through the request-scoped logger.
func fail(c *gin.Context, status int, code, msg string) {
	resp := ErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Code:      code,
		Message:   msg,
	}

	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail exposes fail to other packages, notably the router's NoRoute and
// NoMethod fallbacks, so they emit the same envelope as the handlers.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// ok writes body as JSON with the given status.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// noContent writes an HTTP 204 with an empty body.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
