package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrorCode identifies an application error independently of its message
type ErrorCode string

const (
	ErrorCode_INTERNAL                ErrorCode = "INTERNAL"
	ErrorCode_INVALID_ARGUMENT        ErrorCode = "INVALID_ARGUMENT"
	ErrorCode_INVALID_PAYLOAD         ErrorCode = "INVALID_PAYLOAD"
	ErrorCode_NOT_FOUND               ErrorCode = "NOT_FOUND"
	ErrorCode_CONFLICT                ErrorCode = "CONFLICT"
	ErrorCode_MISSING_FIELD           ErrorCode = "MISSING_FIELD"
	ErrorCode_INVALID_EMAIL           ErrorCode = "INVALID_EMAIL"
	ErrorCode_INVALID_SCHEDULE_TYPE   ErrorCode = "INVALID_SCHEDULE_TYPE"
	ErrorCode_MISSING_RECURRENCE_RULE ErrorCode = "MISSING_RECURRENCE_RULE"
	ErrorCode_INVALID_DATE_TIME       ErrorCode = "INVALID_DATE_TIME"
	ErrorCode_EMAIL_MISCONFIGURED     ErrorCode = "EMAIL_MISCONFIGURED"
	ErrorCode_INVALID_ACTION          ErrorCode = "INVALID_ACTION"
	ErrorCode_TOKEN_NOT_FOUND         ErrorCode = "TOKEN_NOT_FOUND"
	ErrorCode_MEETING_NOT_FOUND       ErrorCode = "MEETING_NOT_FOUND"
	ErrorCode_RATE_LIMITED            ErrorCode = "RATE_LIMITED"
	ErrorCode_STORAGE_FAILED          ErrorCode = "STORAGE_FAILED"
)

func (c ErrorCode) String() string {
	return string(c)
}

// AppError is the error type surfaced to HTTP clients. Raw is logged but
// never serialized.
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
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

// Unwrap exposes the underlying cause to errors.Is and errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// HasCode reports whether err is an AppError carrying code
func HasCode(err error, code ErrorCode) bool {
	var appErr AppError
	return stdErrors.As(err, &appErr) && appErr.Code == code
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

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid JSON payload.",
	}
}

// ErrConflict reports a uniqueness violation. The storage message is kept
// because it tells the caller which value collided.
func ErrConflict(storageMessage string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_CONFLICT,
		Message:  storageMessage,
	}
}

func ErrRateLimited() AppError {
	return AppError{
		HTTPCode: http.StatusTooManyRequests,
		Code:     ErrorCode_RATE_LIMITED,
		Message:  "Too many requests, please retry later.",
	}
}

// Meeting validation errors

func ErrMissingField(fields ...string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_MISSING_FIELD,
		Message:  fmt.Sprintf("Missing required field(s): %s.", strings.Join(fields, ", ")),
	}.WithDetail("fields", strings.Join(fields, ","))
}

func ErrInvalidEmail(addresses ...string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_EMAIL,
		Message:  fmt.Sprintf("Invalid email address(es): %s", strings.Join(addresses, ", ")),
	}
}

func ErrInvalidScheduleType(value string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_SCHEDULE_TYPE,
		Message:  "Schedule type must be 'one-time' or 'recurring'.",
	}.WithDetail("scheduleType", value)
}

func ErrMissingRecurrenceRule() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_MISSING_RECURRENCE_RULE,
		Message:  "Recurring meetings require recurrenceRule.",
	}
}

func ErrInvalidDateTime(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_DATE_TIME,
		Message:  message,
	}
}

// ErrEmailMisconfigured is a server-side fault: the request was fine but the
// mail transport cannot be used.
func ErrEmailMisconfigured(missing []string) AppError {
	return AppError{
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_EMAIL_MISCONFIGURED,
		Message:  fmt.Sprintf("Email is enabled but SMTP settings are missing: %s", strings.Join(missing, ", ")),
	}
}

// Response protocol errors

func ErrInvalidAction() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ACTION,
		Message:  "Invalid action. Use accept, decline, or tentative.",
	}
}

// ErrTokenNotFound deliberately says nothing about the meeting.
func ErrTokenNotFound() AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_TOKEN_NOT_FOUND,
		Message:  "Invalid or expired response link.",
	}
}

// ErrMeetingReferenceNotFound is reported when a write references a meeting
// that does not exist.
func ErrMeetingReferenceNotFound() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_MEETING_NOT_FOUND,
		Message:  "Meeting ID not found.",
	}
}

// Storage Errors
func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_STORAGE_FAILED,
		Message:  fmt.Sprintf("Storage operation failed: %s", operation),
	}
}
