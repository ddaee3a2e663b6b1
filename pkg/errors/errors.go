package errors

import (
	"fmt"
)

// ParseError represents a YAML manifest parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures manifest or layout definition validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NotInitializedError indicates a registry read before anything was registered.
type NotInitializedError struct {
	Registry string
}

// NewNotInitializedError constructs a NotInitializedError for the named registry.
func NewNotInitializedError(registry string) error {
	return &NotInitializedError{Registry: registry}
}

func (e *NotInitializedError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s registry is not initialized", e.Registry)
}

// RendererNotFoundError indicates a content block type with no registered renderer.
type RendererNotFoundError struct {
	Type string
}

// NewRendererNotFoundError constructs a RendererNotFoundError for the given block type.
func NewRendererNotFoundError(blockType string) error {
	return &RendererNotFoundError{Type: blockType}
}

func (e *RendererNotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("no renderer registered for block type %q", e.Type)
}

// DuplicateZoneError indicates a layout draft already declares a zone with the same name.
type DuplicateZoneError struct {
	Layout string
	Zone   string
}

// NewDuplicateZoneError constructs a DuplicateZoneError.
func NewDuplicateZoneError(layout, zone string) error {
	return &DuplicateZoneError{Layout: layout, Zone: zone}
}

func (e *DuplicateZoneError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("layout %q already declares a zone named %q", e.Layout, e.Zone)
}
