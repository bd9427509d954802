package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes used across the API surface.
const (
	CodeNotFound           = "NOT_FOUND"
	CodeValidation         = "VALIDATION_ERROR"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeTerminalState      = "TERMINAL_STATE_VIOLATION"
	CodeProvisioningFailed = "PROVISIONING_FAILED"
	CodeStoreError         = "STORE_ERROR"
	CodeInternal           = "INTERNAL_ERROR"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

// NewTerminalStateError signals an attempt to transition an inquiry that has
// already reached its terminal approved state. The record is never mutated.
func NewTerminalStateError(id interface{}) *AppError {
	return &AppError{
		Code:    CodeTerminalState,
		Message: fmt.Sprintf("Inquiry %v is already approved and cannot be changed", id),
	}
}

// NewProvisioningError signals that academy provisioning failed during an
// approval. The whole transition is aborted.
func NewProvisioningError(err error) *AppError {
	return &AppError{
		Code:    CodeProvisioningFailed,
		Message: "Academy provisioning failed",
		Err:     err,
	}
}

// NewStoreError wraps an underlying storage failure on read or write.
func NewStoreError(err error) *AppError {
	return &AppError{
		Code:    CodeStoreError,
		Message: "Storage operation failed",
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
			Error: appErr.Message,
			Code:  appErr.Code,
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
