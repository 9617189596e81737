package models

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Error codes used across the API.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeConflict           = "CONFLICT"
	CodeNotFound           = "NOT_FOUND"
	CodeActivityFull       = "ACTIVITY_FULL"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	CodeInternal           = "INTERNAL_ERROR"
)

// ErrorResponse represents a standardized API error response.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Code    string   `json:"code,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Details string   `json:"details,omitempty"`
}

// AppError represents a custom application error.
type AppError struct {
	Code     string
	Message  string
	Messages []string // individual violations for aggregated validation errors
	Err      error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if len(e.Messages) > 0 {
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Messages, "; "))
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

// NewValidationErrors aggregates every violated constraint into one error,
// so clients can correct all fields in a single round trip.
func NewValidationErrors(messages []string) *AppError {
	return &AppError{
		Code:     CodeValidation,
		Message:  "Validation failed",
		Messages: messages,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
	}
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewNotFoundOrUnauthorizedError covers owner-gated mutations. Absence and
// foreign ownership share one message so callers cannot probe for the
// existence of records they do not own.
func NewNotFoundOrUnauthorizedError(resource string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found or unauthorized", resource),
	}
}

func NewActivityFullError() *AppError {
	return &AppError{
		Code:    CodeActivityFull,
		Message: "Activity is full",
	}
}

func NewStorageError(err error) *AppError {
	return &AppError{
		Code:    CodeStorageUnavailable,
		Message: "Storage unavailable",
		Err:     err,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// RespondWithError creates a standardized error response
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	if appErr, ok := err.(*AppError); ok {
		response = ErrorResponse{
			Error:  appErr.Message,
			Code:   appErr.Code,
			Errors: appErr.Messages,
		}
		if appErr.Err != nil {
			response.Details = appErr.Err.Error()
		}
	} else {
		response = ErrorResponse{
			Error: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}
