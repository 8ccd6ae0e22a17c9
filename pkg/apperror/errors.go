package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Withdrawal Validation (VAL) ----

func ErrAmountTooLow() *AppError {
	return New("VAL_001", "Minimum withdrawal amount is 100", http.StatusBadRequest)
}

func ErrAmountTooHigh() *AppError {
	return New("VAL_002", "Maximum withdrawal amount is 1,000,000", http.StatusBadRequest)
}

func ErrMissingMethod() *AppError {
	return New("VAL_003", "Invalid withdrawal method. Supported methods: bank, mpesa", http.StatusBadRequest)
}

func ErrMissingBankDetails() *AppError {
	return New("VAL_004", "Account number and account name are required for bank withdrawals", http.StatusBadRequest)
}

func ErrInvalidPhoneNumber() *AppError {
	return New("VAL_005", "Please provide a valid 10-digit phone number", http.StatusBadRequest)
}

// Validation returns a generic request validation error.
func Validation(message string) *AppError {
	return New("VAL_000", message, http.StatusBadRequest)
}

// ---- Provider Failures (PRV) ----

// ProviderError wraps an upstream payment provider failure. The message is
// safe to return to the caller; the wrapped error keeps the raw detail for
// server-side logs only.
func ProviderError(message string, err error) *AppError {
	return Wrap("PRV_001", message, http.StatusBadRequest, err)
}

// ---- Notification Failures (NTF) ----

// NotificationError marks a real-time notification failure. It is never
// returned to clients; the orchestrator logs and discards it.
func NotificationError(err error) *AppError {
	return Wrap("NTF_001", "Notification delivery failed", http.StatusInternalServerError, err)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an unexpected error as a SYS_001 error with a generic
// client-facing message.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
