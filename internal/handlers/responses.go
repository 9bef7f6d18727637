package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/errors"

	"github.com/labstack/echo/v4"
)

// Error responses
//
// 1. SendError - client errors and load rejections (4xx responses)
//    - Validation errors: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Not found: SendError(c, errors.DatasetNotFound)
//    - Rejected tables: SendError(c, errors.LoadMissingColumns, errors.WithDetails(missing...))
//
// 2. SendSystemError - repository and unexpected errors (500 responses).
//    The internal error is logged, never sent to the client.
//
// validator.ValidationErrors may be returned as-is; the central error
// handler formats them.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internal := errors.WrapSystemError(err, traceID)
	slog.Error("internal error",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"error", internal)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
