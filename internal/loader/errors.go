package loader

import (
	"errors"
	"fmt"
)

// FileAccessError reports an input file that could not be opened or read.
type FileAccessError struct {
	// Path is the file the loader attempted to read.
	Path string

	// Err is the underlying operating-system error.
	Err error
}

// Error implements the error interface.
func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot read input file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error so fs.ErrNotExist checks still work.
func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// SchemaError reports a file that was readable but structurally invalid for
// its declared format.
type SchemaError struct {
	// Path is the offending file.
	Path string

	// Message names the violated format rule.
	Message string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// IsFileAccess returns true if the error is a FileAccessError.
// Uses errors.As to handle wrapped errors.
func IsFileAccess(err error) bool {
	var fe *FileAccessError
	return errors.As(err, &fe)
}

// IsSchema returns true if the error is a SchemaError.
// Uses errors.As to handle wrapped errors.
func IsSchema(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}
