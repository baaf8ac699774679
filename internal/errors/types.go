package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeIntegrity  ErrorType = "integrity"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeInternal   ErrorType = "internal"
)

// Codes shared across packages.
const (
	CodeSlugConflict  = "SLUG_CONFLICT"
	CodeInvalidSlug   = "INVALID_SLUG"
	CodeInvalidStore  = "INVALID_STORE"
	CodeInvalidConfig = "INVALID_CONFIG"
	CodeCancelled     = "CANCELLED"
)

// Sentinels usable with errors.Is. Matching compares Type and Code only.
var (
	ErrSlugConflict = &StoreError{Type: ErrorTypeIntegrity, Code: CodeSlugConflict}
	ErrInvalidSlug  = &StoreError{Type: ErrorTypeIntegrity, Code: CodeInvalidSlug}
	ErrInvalidStore = &StoreError{Type: ErrorTypeValidation, Code: CodeInvalidStore}
)

// StoreError is a structured error type with context.
type StoreError struct {
	Type     ErrorType
	Code     string
	Message  string
	Cause    error
	Context  map[string]any
	FilePath string
	Field    string
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}

	if e.Field != "" {
		parts = append(parts, "field:"+e.Field)
	}

	if e.Message != "" {
		parts = append(parts, e.Message)
	}

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *StoreError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *StoreError) Is(target error) bool {
	var t *StoreError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *StoreError) WithContext(key string, value any) *StoreError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value

	return e
}

// WithFile records the file the error relates to.
func (e *StoreError) WithFile(path string) *StoreError {
	e.FilePath = path

	return e
}

// WithField records the offending field.
func (e *StoreError) WithField(field string) *StoreError {
	e.Field = field

	return e
}

// Fields flattens the error into key/value pairs for structured logging.
func (e *StoreError) Fields() []any {
	fields := []any{"error_type", string(e.Type), "error_code", e.Code}
	if e.FilePath != "" {
		fields = append(fields, "file", e.FilePath)
	}
	if e.Field != "" {
		fields = append(fields, "field", e.Field)
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, k, e.Context[k])
	}

	return fields
}

// Error creation functions

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *StoreError {
	return &StoreError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *StoreError {
	return &StoreError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
	}
}

// NewIntegrityError creates an error that must abort a build.
func NewIntegrityError(code, message string) *StoreError {
	return &StoreError{
		Type:    ErrorTypeIntegrity,
		Code:    code,
		Message: message,
	}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *StoreError {
	return &StoreError{
		Type:    ErrorTypeIO,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *StoreError {
	return &StoreError{
		Type:    ErrorTypeInternal,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewSlugConflictError reports pages that claim the same output path.
func NewSlugConflictError(slug string, pageIDs ...string) *StoreError {
	err := NewIntegrityError(CodeSlugConflict, fmt.Sprintf("slug %q is used more than once", slug))
	err.WithContext("slug", slug)
	if len(pageIDs) > 0 {
		err.WithContext("pages", strings.Join(pageIDs, ","))
	}

	return err
}

// Error inspection utilities

// IsIntegrity reports whether err aborts a build.
func IsIntegrity(err error) bool {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Type == ErrorTypeIntegrity
	}

	return false
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Type == ErrorTypeValidation
	}

	return false
}

// CodeOf returns the code of the first StoreError in the chain.
func CodeOf(err error) string {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Code
	}

	return ""
}

// Wrap wraps err with a message, preserving nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", message, err)
}
