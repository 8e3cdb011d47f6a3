package escala

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/extrame/xls"

	"github.com/coopex/escala-go/pkg/escala/parser"
)

// xlsSource holds the first sheet of a legacy .xls workbook. The reader
// exposes no cell styles, so colors are never available.
type xlsSource struct {
	sheet string
	grid  [][]string
}

func openXLS(path string) (src *xlsSource, err error) {
	// The reader panics on some malformed BIFF records.
	defer func() {
		if r := recover(); r != nil {
			src = nil
			err = NewSourceReadError(path, "open", fmt.Errorf("malformed xls workbook: %v", r))
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewSourceReadError(path, "open", err)
	}

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, NewSourceReadError(path, "open", err)
	}
	if wb == nil {
		return nil, NewSourceReadError(path, "open", errors.New("no workbook stream found"))
	}
	if wb.NumSheets() == 0 {
		return nil, NewSourceReadError(path, "open", errors.New("no worksheet found"))
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, NewSourceReadError(path, "open", errors.New("no worksheet found"))
	}

	return &xlsSource{sheet: sheet.Name, grid: readXLSSheet(sheet)}, nil
}

// xlsMaxColumns is the BIFF8 column limit.
const xlsMaxColumns = 256

func readXLSSheet(sheet *xls.WorkSheet) [][]string {
	var grid [][]string
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := xlsRow(sheet, i)
		if row == nil {
			grid = append(grid, nil)
			continue
		}
		// Rows built from cell records alone carry no ROW extent.
		width := row.LastCol()
		if width == 0 {
			width = xlsMaxColumns
		}
		cells := make([]string, width)
		for c := range cells {
			cells[c] = row.Col(c)
		}
		grid = append(grid, trimTrailingBlank(cells))
	}
	for len(grid) > 0 && len(grid[len(grid)-1]) == 0 {
		grid = grid[:len(grid)-1]
	}
	return grid
}

// xlsRow returns the i-th row, or nil when the sheet has no record for it.
// WorkSheet.Row dereferences the missing map entry.
func xlsRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}

func trimTrailingBlank(cells []string) []string {
	end := len(cells)
	for end > 0 && cells[end-1] == "" {
		end--
	}
	return cells[:end]
}

func (s *xlsSource) SheetName() string { return s.sheet }

func (s *xlsSource) Rows() (parser.Rows, error) {
	return parser.NewSliceRows(s.grid), nil
}

func (s *xlsSource) ColorLookup() parser.ColorLookup { return nil }

func (s *xlsSource) Close() error { return nil }
