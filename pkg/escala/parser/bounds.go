package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Bounds tracks the bounding box of non-blank cells seen while iterating.
type Bounds struct {
	minRow, maxRow int
	minCol, maxCol int
	seen           bool
}

// Observe records the non-blank cells of the 1-based sheet row.
func (b *Bounds) Observe(row int, cells []string) {
	for colIdx, cell := range cells {
		if strings.TrimSpace(cell) == "" {
			continue
		}
		col := colIdx + 1
		if !b.seen {
			b.minRow, b.maxRow, b.minCol, b.maxCol = row, row, col, col
			b.seen = true
			continue
		}
		b.minRow = min(b.minRow, row)
		b.maxRow = max(b.maxRow, row)
		b.minCol = min(b.minCol, col)
		b.maxCol = max(b.maxCol, col)
	}
}

// Range returns the bounds in Excel range notation (e.g. "A1:G40"),
// or "" when no cell was seen.
func (b *Bounds) Range() string {
	if !b.seen {
		return ""
	}
	startCell, _ := excelize.CoordinatesToCellName(b.minCol, b.minRow)
	endCell, _ := excelize.CoordinatesToCellName(b.maxCol, b.maxRow)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// TrackBounds wraps rows so every row read is observed by b.
func TrackBounds(rows Rows, b *Bounds) Rows {
	return &trackedRows{Rows: rows, bounds: b}
}

type trackedRows struct {
	Rows
	bounds *Bounds
	row    int
}

func (t *trackedRows) Next() bool {
	if !t.Rows.Next() {
		return false
	}
	t.row++
	return true
}

func (t *trackedRows) Columns() ([]string, error) {
	cells, err := t.Rows.Columns()
	if err == nil {
		t.bounds.Observe(t.row, cells)
	}
	return cells, err
}
