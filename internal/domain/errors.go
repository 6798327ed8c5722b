package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Catalog errors
	CodeBundleNotFound    ErrorCode = "BUNDLE_NOT_FOUND"
	CodeBundleInactive    ErrorCode = "BUNDLE_INACTIVE"
	CodePricingMissing    ErrorCode = "PRICING_MISSING"
	CodeSyncInProgress    ErrorCode = "SYNC_IN_PROGRESS"
	CodeSourceUnavailable ErrorCode = "SOURCE_UNAVAILABLE"

	// Purchase errors
	CodePurchaseNotFound ErrorCode = "PURCHASE_NOT_FOUND"
	CodeInvalidState     ErrorCode = "INVALID_STATE"

	// Feedback errors
	CodeLLMServiceError ErrorCode = "LLM_SERVICE_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches on error code so sentinel values can be compared with errors.Is.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Context map[string]interface{} `json:"context,omitempty"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
		Context: e.Context,
	})
}

// WithContext attaches a key/value pair that is echoed in API error details.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Sentinels for errors.Is checks.
var (
	ErrSyncInProgress = NewError(CodeSyncInProgress, "a catalog sync is already running", nil)
	ErrPricingMissing = NewError(CodePricingMissing, "pricing table has no row for year level", nil)
	ErrInvalidState   = NewError(CodeInvalidState, "invalid purchase state transition", nil)
	ErrNotFound       = NewError(CodeNotFound, "resource not found", nil)
)

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

func NewForbiddenError(message string) *DomainError {
	return NewError(CodeForbidden, message, nil)
}

func NewBundleNotFoundError(bundleID string) *DomainError {
	return NewError(CodeBundleNotFound, fmt.Sprintf("Bundle not found with ID: %s", bundleID), nil).
		WithContext("bundle_id", bundleID)
}

func NewBundleInactiveError(bundleID string) *DomainError {
	return NewError(CodeBundleInactive, fmt.Sprintf("Bundle %s is not available for purchase", bundleID), nil).
		WithContext("bundle_id", bundleID)
}

func NewPurchaseNotFoundError(purchaseID string) *DomainError {
	return NewError(CodePurchaseNotFound, fmt.Sprintf("Purchase not found with ID: %s", purchaseID), nil).
		WithContext("purchase_id", purchaseID)
}

func NewInvalidStateError(from, to PurchaseStatus) *DomainError {
	return NewError(CodeInvalidState, fmt.Sprintf("cannot move purchase from %s to %s", from, to), nil).
		WithContext("from", string(from)).
		WithContext("to", string(to))
}

func NewPricingMissingError(yearLevel int) *DomainError {
	return NewError(CodePricingMissing, fmt.Sprintf("pricing table has no row for year %d", yearLevel), nil).
		WithContext("year_level", yearLevel)
}

func NewSourceUnavailableError(source string, cause error) *DomainError {
	return NewError(CodeSourceUnavailable, fmt.Sprintf("quiz source %s unavailable", source), cause).
		WithContext("source", source)
}

func NewLLMServiceError(cause error) *DomainError {
	return NewError(CodeLLMServiceError, "Failed to process with LLM service", cause)
}

// ValidationError describes one invalid request field.
type ValidationError struct {
	Field   string      `json:"field"`
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects field errors for a single request.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Code: CodeMissingField, Message: "field is required"}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{Field: field, Code: CodeInvalidFormat, Message: "field has an invalid format", Value: value}
}

func NewOutOfRangeError(field string, value interface{}, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf("value must be between %d and %d", min, max),
		Value:   value,
	}
}
