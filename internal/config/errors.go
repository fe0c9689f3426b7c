package config

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigError reports a settings document that could not be read or parsed,
// or a configuration whose fields are internally inconsistent (for example,
// both problem-size limiting policies selected at once).
type ConfigError struct {
	// Path is the settings file involved, when known.
	Path string

	// Message is a human-readable description.
	Message string

	// Err is the underlying cause, when any.
	Err error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("config: ")
	b.WriteString(e.Message)
	if e.Path != "" {
		fmt.Fprintf(&b, " (%s)", e.Path)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// MissingFieldError reports settings fields that were required at some point
// of use but were never supplied by the settings document. It always names
// every field found missing, not just the first.
type MissingFieldError struct {
	Fields []string
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("config: required settings field(s) not defined: %s",
		strings.Join(e.Fields, ", "))
}

// NewMissingFieldError builds a MissingFieldError for the given field names.
func NewMissingFieldError(fields ...string) *MissingFieldError {
	return &MissingFieldError{Fields: fields}
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsMissingField reports whether err is (or wraps) a MissingFieldError.
func IsMissingField(err error) bool {
	var me *MissingFieldError
	return errors.As(err, &me)
}
