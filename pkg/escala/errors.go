package escala

import (
	"errors"

	"github.com/coopex/escala-go/pkg/escala/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input is not a supported workbook format.
var ErrUnsupportedFormat = errors.New("unsupported workbook format")

// MissingRequiredColumnError reports that no header matched the person name aliases.
type MissingRequiredColumnError = parser.MissingRequiredColumnError

// SourceReadError reports that the workbook could not be opened, parsed or read.
// ErrFileNotFound and ErrUnsupportedFormat are delivered wrapped in it.
type SourceReadError = parser.SourceReadError

// NewSourceReadError creates a new SourceReadError.
func NewSourceReadError(path, op string, err error) *SourceReadError {
	return parser.NewSourceReadError(path, op, err)
}
