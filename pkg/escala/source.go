package escala

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/coopex/escala-go/pkg/escala/parser"
)

// source is one opened sheet of a workbook.
type source interface {
	SheetName() string
	Rows() (parser.Rows, error)
	// ColorLookup returns nil when the format carries no style data.
	ColorLookup() parser.ColorLookup
	Close() error
}

func openSource(path string) (source, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewSourceReadError(path, "open", ErrFileNotFound)
		}
		return nil, NewSourceReadError(path, "open", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		src, err := openXLSX(path)
		if err != nil {
			return nil, err
		}
		return src, nil
	case ".xls":
		src, err := openXLS(path)
		if err != nil {
			return nil, err
		}
		return src, nil
	default:
		return nil, NewSourceReadError(path, "open", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext))
	}
}

type xlsxSource struct {
	f     *excelize.File
	sheet string
	rows  *excelize.Rows
}

func openXLSX(path string) (*xlsxSource, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewSourceReadError(path, "open", err)
	}

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			_ = f.Close()
			return nil, NewSourceReadError(path, "open", errors.New("no worksheet found"))
		}
		sheet = sheets[0]
	}

	return &xlsxSource{f: f, sheet: sheet}, nil
}

func (s *xlsxSource) SheetName() string { return s.sheet }

func (s *xlsxSource) Rows() (parser.Rows, error) {
	rows, err := s.f.Rows(s.sheet)
	if err != nil {
		return nil, err
	}
	s.rows = rows
	return xlsxRows{rows}, nil
}

func (s *xlsxSource) ColorLookup() parser.ColorLookup {
	return parser.FillColorLookup(s.f, s.sheet)
}

func (s *xlsxSource) Close() error {
	var rowsErr error
	if s.rows != nil {
		rowsErr = s.rows.Close()
	}
	return errors.Join(rowsErr, s.f.Close())
}

// xlsxRows adapts the excelize streaming iterator.
type xlsxRows struct {
	rows *excelize.Rows
}

func (r xlsxRows) Next() bool                 { return r.rows.Next() }
func (r xlsxRows) Columns() ([]string, error) { return r.rows.Columns() }
func (r xlsxRows) Err() error                 { return r.rows.Error() }
