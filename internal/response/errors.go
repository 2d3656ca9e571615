package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// Validation
	ErrValidation    ErrCode = "VALIDATION_ERROR"
	ErrInvalidID     ErrCode = "INVALID_ID"
	ErrInvalidFilter ErrCode = "INVALID_FILTER"

	// Resources
	ErrNotFound ErrCode = "NOT_FOUND"

	// Search
	ErrSearchFailed ErrCode = "SEARCH_FAILED"

	// Rate limiting
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// Server
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidFilter:
		return "One or more search filters could not be interpreted."
	case ErrNotFound:
		return "Resource not found."
	case ErrSearchFailed:
		return "The search could not be executed."
	case ErrRateLimitExceeded:
		return "Too many requests. Please slow down."
	case ErrInternal:
		return "An internal error occurred. Please try again later."
	default:
		return "Unknown error."
	}
}
