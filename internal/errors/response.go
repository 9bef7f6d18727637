package errors

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrorResponse is the envelope every failed API call returns.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the code, a client-safe message and optional details
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption adjusts an ErrorResponse after the defaults are applied
type ErrorOption func(*ErrorResponse)

// WithDetails replaces the detail lines
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the code's default message
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// WithFieldErrors renders "field: message" details, sorted by field.
func WithFieldErrors(fields map[string]string) ErrorOption {
	return func(er *ErrorResponse) {
		details := make([]string, 0, len(fields))
		for field, message := range fields {
			details = append(details, fmt.Sprintf("%s: %s", field, message))
		}
		sort.Strings(details)
		er.Error.Details = details
	}
}

// WithMissingColumns names the required columns a table lacks, in the
// message and one per detail line.
func WithMissingColumns(columns []string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = "Missing required columns: " + strings.Join(columns, ", ")
		er.Error.Details = append([]string(nil), columns...)
	}
}

// NewErrorResponse builds the envelope for code with its default message.
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}
	for _, opt := range opts {
		opt(response)
	}
	return response
}

// NewValidationError reports request fields that failed validation
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	return NewErrorResponse(ValidationGeneral, traceID, WithFieldErrors(fieldErrors))
}

// WrapSystemError returns a generic SYSTEM_001 envelope alongside err, which
// is meant for server-side logs only.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

// httpStatuses lists every code that is not a 500.
var httpStatuses = map[ErrorCode]int{
	ValidationGeneral:       http.StatusBadRequest,
	ValidationRequiredField: http.StatusBadRequest,
	ValidationInvalidFormat: http.StatusBadRequest,
	ValidationOutOfRange:    http.StatusBadRequest,
	ValidationInvalidFilter: http.StatusBadRequest,
	ValidationInvalidID:     http.StatusBadRequest,

	DatasetNotFound: http.StatusNotFound,

	LoadMissingColumns:  http.StatusUnprocessableEntity,
	LoadEmptyFile:       http.StatusBadRequest,
	LoadUnsupportedType: http.StatusBadRequest,
	LoadUnreadable:      http.StatusBadRequest,
	LoadTooManyRows:     http.StatusRequestEntityTooLarge,
	LoadFileTooLarge:    http.StatusRequestEntityTooLarge,

	SystemServiceUnavailable: http.StatusServiceUnavailable,
	SystemRateLimitExceeded:  http.StatusTooManyRequests,
}

// GetHTTPStatus returns the status a code is sent with. Unlisted codes,
// including unknown ones, are 500.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := httpStatuses[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// GetHTTPStatus returns the status for the response's code
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}
