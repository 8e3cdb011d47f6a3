// Package escala imports work schedule spreadsheets into normalized records.
package escala

import (
	"github.com/rs/zerolog"

	"github.com/coopex/escala-go/pkg/escala/parser"
)

// Options configures import behavior.
type Options struct {
	// IncludeColors specifies whether to read the fill color of name cells.
	// If nil, defaults to true. Formats without style data ignore it.
	IncludeColors *bool
	// Aliases overrides the header alias table.
	// If nil, parser.DefaultAliases is used.
	Aliases *parser.AliasTable
	// Logger receives import diagnostics. If nil, nothing is logged.
	Logger *zerolog.Logger
}

// DefaultOptions returns default import options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldIncludeColors returns whether to read name cell fill colors.
func (o Options) ShouldIncludeColors() bool {
	if o.IncludeColors != nil {
		return *o.IncludeColors
	}
	return true
}

func (o Options) aliasTable() parser.AliasTable {
	if o.Aliases != nil {
		return *o.Aliases
	}
	return parser.DefaultAliases()
}

func (o Options) logger() *zerolog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	nop := zerolog.Nop()
	return &nop
}
