package errors

import (
	"fmt"
	"net/http"
)

// AppError is the custom error type for the application. Every failure
// surfaced at the request boundary is one of these; the handler layer maps
// HTTPCode and Message onto the response.
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Message  string
	// Demo marks a request that was skipped because a required external
	// credential is absent, as opposed to a call that was made and failed.
	Demo bool
}

// Error implements the error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the wrapped cause to errors.Is/As.
func (e AppError) Unwrap() error {
	return e.Raw
}

// General errors

func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

// Upload errors

func ErrNoFileUploaded() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_UPLOAD_REJECTED,
		Message:  "No file uploaded",
	}
}

func ErrUnsupportedFileType() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_UPLOAD_REJECTED,
		Message:  "Only text files are allowed",
	}
}

func ErrFileTooLarge(limit int64) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_UPLOAD_REJECTED,
		Message:  fmt.Sprintf("File size must be less than %d bytes", limit),
	}
}

// Meeting errors

func ErrMeetingNotFound(id int64) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  "Meeting not found",
		Raw:      fmt.Errorf("meeting id %d", id),
	}
}

// Provider errors

// ErrAIUnconfigured is returned when summary generation is requested without
// a Groq credential. Demo is set so clients can explain the degraded mode.
func ErrAIUnconfigured() AppError {
	return AppError{
		HTTPCode: http.StatusServiceUnavailable,
		Code:     ErrorCode_SERVICE_UNAVAILABLE,
		Message:  "AI service not available. Please configure GROQ_API_KEY in your environment variables.",
		Demo:     true,
	}
}

// ErrEmailUnconfigured mirrors ErrAIUnconfigured for the SMTP credential.
func ErrEmailUnconfigured() AppError {
	return AppError{
		HTTPCode: http.StatusServiceUnavailable,
		Code:     ErrorCode_SERVICE_UNAVAILABLE,
		Message:  "Email service not configured. Please set EMAIL_USER and EMAIL_PASS in your environment variables.",
		Demo:     true,
	}
}

func ErrAISummaryFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_AI_SUMMARY_FAILED,
		Message:  "Failed to generate summary",
	}
}

func ErrEmailSendFailed(recipient string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_EMAIL_SEND_FAILED,
		Message:  fmt.Sprintf("Failed to send email to %s", recipient),
	}
}

// Database errors

func ErrDBQueryFailed(operation string, err error) AppError {
	return AppError{
		Raw:      fmt.Errorf("%s: %w", operation, err),
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_DB_QUERY_FAILED,
		Message:  "Database error",
	}
}
