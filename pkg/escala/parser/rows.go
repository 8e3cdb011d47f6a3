package parser

import (
	"strings"

	"github.com/coopex/escala-go/pkg/escala/models"
)

// HeaderRow is the 1-based sheet row holding the column titles.
const HeaderRow = 1

// Rows is a forward-only iterator over sheet rows.
type Rows interface {
	Next() bool
	Columns() ([]string, error)
	Err() error
}

// ColorLookup returns the ARGB fill color of the cell at the 1-based sheet
// coordinates, or "" when the cell has no solid color fill.
type ColorLookup func(row, col int) (string, error)

// ExtractResult holds the records read from the data rows of a sheet.
type ExtractResult struct {
	Records  []models.ScheduleRecord
	DataRows int
	Skipped  int
}

// ReadHeader consumes the header row. It reports false when the sheet has no rows.
func ReadHeader(rows Rows) ([]string, bool, error) {
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, false, NewSourceReadError("", "read rows", err)
		}
		return nil, false, nil
	}
	headers, err := rows.Columns()
	if err != nil {
		return nil, false, NewSourceReadError("", "read rows", err)
	}
	return headers, true, nil
}

// ExtractRecords walks the data rows following the header and builds one
// record per row with a non-blank person name. lookup may be nil.
func ExtractRecords(rows Rows, cols models.ColumnMap, lookup ColorLookup) (ExtractResult, error) {
	result := ExtractResult{Records: []models.ScheduleRecord{}}

	nameCol, ok := cols.Column(models.FieldPersonName)
	if !ok {
		return result, &MissingRequiredColumnError{Field: models.FieldPersonName}
	}

	sheetRow := HeaderRow
	for rows.Next() {
		sheetRow++
		result.DataRows++

		cells, err := rows.Columns()
		if err != nil {
			return ExtractResult{}, NewSourceReadError("", "read rows", err)
		}

		name := cellAt(cells, nameCol.Index)
		if name == "" {
			result.Skipped++
			continue
		}

		record := models.ScheduleRecord{
			Date:       fieldValue(cells, cols, models.FieldDate),
			Shift:      fieldValue(cells, cols, models.FieldShift),
			Time:       fieldValue(cells, cols, models.FieldTime),
			Contract:   fieldValue(cells, cols, models.FieldContract),
			PersonName: name,
		}

		if lookup != nil {
			color, err := lookup(sheetRow, nameCol.Index+1)
			if err != nil {
				return ExtractResult{}, NewSourceReadError("", "read style", err)
			}
			record.NameCellColor = color
		}

		result.Records = append(result.Records, record)
	}
	if err := rows.Err(); err != nil {
		return ExtractResult{}, NewSourceReadError("", "read rows", err)
	}

	return result, nil
}

func fieldValue(cells []string, cols models.ColumnMap, f models.Field) string {
	col, ok := cols.Column(f)
	if !ok {
		return ""
	}
	return cellAt(cells, col.Index)
}

// cellAt returns the trimmed cell text; rows are ragged, missing cells are "".
func cellAt(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[idx])
}

// SliceRows iterates over rows already held in memory.
type SliceRows struct {
	rows [][]string
	cur  int
}

// NewSliceRows returns a Rows over rows, the first being sheet row 1.
func NewSliceRows(rows [][]string) *SliceRows {
	return &SliceRows{rows: rows}
}

func (r *SliceRows) Next() bool {
	if r.cur >= len(r.rows) {
		return false
	}
	r.cur++
	return true
}

func (r *SliceRows) Columns() ([]string, error) {
	if r.cur == 0 {
		return nil, nil
	}
	return r.rows[r.cur-1], nil
}

func (r *SliceRows) Err() error {
	return nil
}
