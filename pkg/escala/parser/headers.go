// Package parser locates schedule columns and extracts normalized rows.
package parser

import (
	"fmt"

	"github.com/coopex/escala-go/pkg/escala/models"
)

// AliasTable holds the ordered literal header aliases accepted for each field.
// Matching is exact and case-sensitive; earlier aliases win.
type AliasTable struct {
	aliases map[models.Field][]string
}

// DefaultAliases returns the built-in alias table.
func DefaultAliases() AliasTable {
	return AliasTable{aliases: map[models.Field][]string{
		models.FieldDate:       {"data", "DATA", "Data"},
		models.FieldShift:      {"turno", "TURNO", "Turno"},
		models.FieldTime:       {"horario", "HORÁRIO", "horário", "HORA", "hora"},
		models.FieldContract:   {"contrato", "CONTRATO", "Contrato", "CONTRATANTE"},
		models.FieldPersonName: {"nome", "NOME", "Nome", "NOME DO COOPERADO", "Cooperado", "COOPERADO", "SÓCIO COOPERADOS"},
	}}
}

// Aliases returns a copy of the aliases for f, in priority order.
func (t AliasTable) Aliases(f models.Field) []string {
	return append([]string(nil), t.aliases[f]...)
}

// Extend returns a new table with extra aliases appended after the existing
// ones for f. Aliases already present are ignored.
func (t AliasTable) Extend(f models.Field, aliases ...string) (AliasTable, error) {
	if !f.Valid() {
		return t, fmt.Errorf("unknown field %q", f)
	}
	next := make(map[models.Field][]string, len(t.aliases)+1)
	for k, v := range t.aliases {
		next[k] = append([]string(nil), v...)
	}
	for _, alias := range aliases {
		if alias == "" || contains(next[f], alias) {
			continue
		}
		next[f] = append(next[f], alias)
	}
	return AliasTable{aliases: next}, nil
}

// ResolveHeaders maps each semantic field to the first header matching one of
// its aliases. It fails with MissingRequiredColumnError when no person name
// column is present.
func ResolveHeaders(headers []string, table AliasTable) (models.ColumnMap, error) {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}

	cols := make(map[models.Field]models.Column)
	for _, field := range models.Fields {
		for _, alias := range table.aliases[field] {
			if i, ok := index[alias]; ok {
				cols[field] = models.Column{Index: i, Header: alias}
				break
			}
		}
	}

	if _, ok := cols[models.FieldPersonName]; !ok {
		return models.ColumnMap{}, &MissingRequiredColumnError{
			Field:   models.FieldPersonName,
			Headers: append([]string(nil), headers...),
		}
	}
	return models.NewColumnMap(cols), nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
