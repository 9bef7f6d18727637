package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidFilter ErrorCode = "VALIDATION_005"
	ValidationInvalidID     ErrorCode = "VALIDATION_006"
)

// Dataset error codes (DATASET_*)
const (
	DatasetNotFound ErrorCode = "DATASET_001"
)

// Load error codes (LOAD_*) describe why an input table was rejected
const (
	LoadMissingColumns  ErrorCode = "LOAD_001"
	LoadEmptyFile       ErrorCode = "LOAD_002"
	LoadUnsupportedType ErrorCode = "LOAD_003"
	LoadTooManyRows     ErrorCode = "LOAD_004"
	LoadUnreadable      ErrorCode = "LOAD_005"
	LoadFileTooLarge    ErrorCode = "LOAD_006"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidFilter: "Invalid record filter",
	ValidationInvalidID:     "Invalid dataset ID format",

	// Dataset errors
	DatasetNotFound: "Dataset not found",

	// Load errors
	LoadMissingColumns:  "Uploaded file is missing required columns",
	LoadEmptyFile:       "Uploaded file is empty",
	LoadUnsupportedType: "Unsupported file type. Upload a CSV or XLSX file",
	LoadTooManyRows:     "Uploaded file has too many rows",
	LoadUnreadable:      "Uploaded file could not be read",
	LoadFileTooLarge:    "Uploaded file exceeds the size limit",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
