package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode is a stable, machine readable error identifier
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

const (
	ErrorCode_HTTP_OK          ErrorCode = "OK"
	ErrorCode_INTERNAL         ErrorCode = "INTERNAL"
	ErrorCode_INVALID_ARGUMENT ErrorCode = "INVALID_ARGUMENT"
	ErrorCode_INVALID_PAYLOAD  ErrorCode = "INVALID_PAYLOAD"
	ErrorCode_NOT_FOUND        ErrorCode = "NOT_FOUND"
	ErrorCode_GONE             ErrorCode = "GONE"
	ErrorCode_UNAUTHENTICATED  ErrorCode = "UNAUTHENTICATED"

	ErrorCode_AUTH_INVALID_TOKEN ErrorCode = "AUTH_INVALID_TOKEN"
	ErrorCode_AUTH_TOKEN_EXPIRED ErrorCode = "AUTH_TOKEN_EXPIRED"

	ErrorCode_AI_NOT_CONFIGURED       ErrorCode = "AI_NOT_CONFIGURED"
	ErrorCode_AI_TRANSCRIPTION_FAILED ErrorCode = "AI_TRANSCRIPTION_FAILED"
	ErrorCode_AI_SUMMARY_FAILED       ErrorCode = "AI_SUMMARY_FAILED"
	ErrorCode_AI_ACTIONS_FAILED       ErrorCode = "AI_ACTIONS_FAILED"

	ErrorCode_EXPORT_FAILED ErrorCode = "EXPORT_FAILED"

	ErrorCode_SHARE_NOT_FOUND      ErrorCode = "SHARE_NOT_FOUND"
	ErrorCode_SHARE_EXPIRED        ErrorCode = "SHARE_EXPIRED"
	ErrorCode_SHARE_CREATE_FAILED  ErrorCode = "SHARE_CREATE_FAILED"
	ErrorCode_SHARE_RESOLVE_FAILED ErrorCode = "SHARE_RESOLVE_FAILED"

	ErrorCode_MEETING_NOT_FOUND ErrorCode = "MEETING_NOT_FOUND"

	ErrorCode_DB_QUERY_FAILED            ErrorCode = "DB_QUERY_FAILED"
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = "INTEGRATION_STORAGE_FAILED"
)

// WhisperInstallHint is returned with transcription failures of the local recogniser
const WhisperInstallHint = "Make sure Whisper is installed: pip3 install openai-whisper"

// AppError is the application error type rendered by the HTTP layer
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Hint      string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the raw cause to errors.Is / errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

// WithHint attaches a remediation hint
func (e AppError) WithHint(hint string) AppError {
	e.Hint = hint
	return e
}

// General Errors
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

func ErrInvalidPayload(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrUnauthenticated() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_UNAUTHENTICATED,
		Message:  "Authentication required",
	}
}

// Authentication Errors
func ErrInvalidToken(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_AUTH_INVALID_TOKEN,
		Message:  "Invalid authentication token",
	}
}

func ErrTokenExpired() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_AUTH_TOKEN_EXPIRED,
		Message:  "Authentication token has expired",
	}
}

// AI Errors
func ErrAINotConfigured(provider string) AppError {
	return AppError{
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_AI_NOT_CONFIGURED,
		Message:  fmt.Sprintf("%s API key not configured", provider),
	}
}

func ErrAITranscriptionFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_AI_TRANSCRIPTION_FAILED,
		Message:  "Transcription failed",
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

func ErrAIActionsFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_AI_ACTIONS_FAILED,
		Message:  "Failed to extract actions",
	}
}

// Export Errors
func ErrExportFailed(format string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_EXPORT_FAILED,
		Message:  fmt.Sprintf("Failed to generate %s", format),
	}.WithDetail("format", format)
}

// Share Link Errors
func ErrShareNotFound() AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_SHARE_NOT_FOUND,
		Message:  "Share link not found",
	}
}

func ErrShareExpired() AppError {
	return AppError{
		HTTPCode: http.StatusGone,
		Code:     ErrorCode_SHARE_EXPIRED,
		Message:  "Share link has expired",
	}
}

func ErrShareCreateFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_SHARE_CREATE_FAILED,
		Message:  "Failed to create share link",
	}
}

func ErrShareResolveFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_SHARE_RESOLVE_FAILED,
		Message:  "Failed to retrieve shared meeting",
	}
}

// Meeting Errors
func ErrMeetingNotFound(meetingID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_MEETING_NOT_FOUND,
		Message:  "Meeting not found",
	}.WithDetail("meeting_id", meetingID)
}

// Database Errors
func ErrDBQueryFailed(query string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_DB_QUERY_FAILED,
		Message:  "Database query failed",
	}.WithDetail("query", query)
}

func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_STORAGE_FAILED,
		Message:  fmt.Sprintf("Storage operation failed: %s", operation),
	}
}
