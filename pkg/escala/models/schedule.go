package models

import "strings"

// Schedule is the result of importing one workbook.
type Schedule struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the sheet the records were read from.
	SheetName string `json:"sheet_name"`
	// UsedRange is the bounding range of non-empty cells, e.g. "A1:G40".
	UsedRange string `json:"used_range,omitempty"`
	// Columns maps each resolved field to the header text it matched.
	Columns map[Field]string `json:"columns"`
	// Records holds one entry per named data row, in sheet order.
	Records []ScheduleRecord `json:"records"`
	// SkippedRows counts data rows without a person name.
	SkippedRows int `json:"skipped_rows"`
}

// ForPerson returns the records whose person name contains name, ignoring case.
func (s *Schedule) ForPerson(name string) []ScheduleRecord {
	needle := strings.ToLower(strings.TrimSpace(name))
	out := []ScheduleRecord{}
	if needle == "" {
		return out
	}
	for _, r := range s.Records {
		if strings.Contains(strings.ToLower(r.PersonName), needle) {
			out = append(out, r)
		}
	}
	return out
}
