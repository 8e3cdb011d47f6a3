package parser

import (
	"fmt"

	"github.com/coopex/escala-go/pkg/escala/models"
)

// MissingRequiredColumnError reports that a mandatory field matched no header.
type MissingRequiredColumnError struct {
	Field   models.Field
	Headers []string
}

func (e *MissingRequiredColumnError) Error() string {
	return fmt.Sprintf("required column %q not found; headers seen: %q", e.Field, e.Headers)
}

// SourceReadError reports that the workbook could not be opened or read.
type SourceReadError struct {
	Path string
	Op   string // "open", "read rows", "read style"
	Err  error
}

func (e *SourceReadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *SourceReadError) Unwrap() error {
	return e.Err
}

// NewSourceReadError creates a new SourceReadError.
func NewSourceReadError(path, op string, err error) *SourceReadError {
	return &SourceReadError{
		Path: path,
		Op:   op,
		Err:  err,
	}
}
