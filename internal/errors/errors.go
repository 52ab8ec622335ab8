// Package errors provides a lightweight structured error type (SiteSyncError)
// for category-based classification in the CLI and sync pipeline.
package errors

import (
	"fmt"
)

// Category represents the category of a sitesync error for classification
type Category string

const (
	// User-facing configuration and input errors
	CategoryConfig     Category = "config"
	CategoryValidation Category = "validation"

	// Page processing errors
	CategoryMarkup     Category = "markup"
	CategoryFileSystem Category = "filesystem"

	// Everything else
	CategoryInternal Category = "internal"
)

// Severity indicates how critical an error is
type Severity string

const (
	SeverityFatal   Severity = "fatal"   // Stops the run
	SeverityError   Severity = "error"   // Fails one page, run continues
	SeverityWarning Severity = "warning" // Continues with degraded output
)

// SiteSyncError is a structured error with category, severity, and context
type SiteSyncError struct {
	Category Category      `json:"category"`
	Severity Severity      `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for SiteSyncError
type ContextFields map[string]any

// Error implements the error interface
func (e *SiteSyncError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *SiteSyncError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *SiteSyncError) WithContext(key string, value any) *SiteSyncError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// WithCause attaches an underlying cause
func (e *SiteSyncError) WithCause(cause error) *SiteSyncError {
	e.Cause = cause
	return e
}

// New creates a new SiteSyncError
func New(category Category, severity Severity, message string) *SiteSyncError {
	return &SiteSyncError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// NewConfigError creates a fatal configuration error
func NewConfigError(message string, cause error) *SiteSyncError {
	return New(CategoryConfig, SeverityFatal, message).WithCause(cause)
}

// NewValidationError creates a fatal validation error for a named field
func NewValidationError(field, message string) *SiteSyncError {
	return New(CategoryValidation, SeverityFatal, message).WithContext("field", field)
}

// NewMarkupError creates a per-page markup error
func NewMarkupError(message string, cause error) *SiteSyncError {
	return New(CategoryMarkup, SeverityError, message).WithCause(cause)
}

// NewFileSystemError creates a per-page filesystem error
func NewFileSystemError(message string, cause error) *SiteSyncError {
	return New(CategoryFileSystem, SeverityError, message).WithCause(cause)
}

// IsCategory reports whether err is a SiteSyncError of the given category
func IsCategory(err error, category Category) bool {
	if err == nil {
		return false
	}
	if se, ok := err.(*SiteSyncError); ok {
		return se.Category == category
	}
	return false
}
