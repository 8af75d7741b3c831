package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrOTPRejected        ErrCode = "OTP_REJECTED"
	ErrOTPUnavailable     ErrCode = "OTP_UNAVAILABLE"
	ErrOTPDelivery        ErrCode = "OTP_DELIVERY_FAILED"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrTokenRequired ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid  ErrCode = "TOKEN_INVALID"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation       ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload   ErrCode = "INVALID_PAYLOAD"
	ErrFileRequired     ErrCode = "FILE_REQUIRED"
	ErrUnsupportedFile  ErrCode = "UNSUPPORTED_FILE_TYPE"
	ErrFileTooLarge     ErrCode = "FILE_TOO_LARGE"
	ErrWorkbookInvalid  ErrCode = "WORKBOOK_UNREADABLE"
	ErrMissingParameter ErrCode = "MISSING_PARAMETER"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrInvalidCredentials:
		return "Invalid Username or Password"
	case ErrOTPRejected:
		return "Invalid or expired OTP"
	case ErrOTPUnavailable:
		return "OTP verification not available"
	case ErrOTPDelivery:
		return "OTP sending failed"
	case ErrTokenRequired:
		return "Not authenticated"
	case ErrTokenInvalid:
		return "Not authorized"
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidPayload:
		return "Invalid request payload"
	case ErrFileRequired:
		return "File upload required"
	case ErrUnsupportedFile:
		return "Please upload an Excel file (.xls or .xlsx)"
	case ErrFileTooLarge:
		return "File size exceeds the limit"
	case ErrWorkbookInvalid:
		return "Error processing Excel file"
	case ErrMissingParameter:
		return "Required parameter missing"
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrInternal:
		return "Internal server error"
	default:
		return "An unexpected error occurred"
	}
}
