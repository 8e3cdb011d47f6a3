package escala

import (
	"errors"
	"path/filepath"

	"github.com/coopex/escala-go/pkg/escala/models"
	"github.com/coopex/escala-go/pkg/escala/parser"
)

// Import reads the schedule sheet of the workbook at path and returns its
// normalized records. The workbook is closed before Import returns.
func Import(path string, opts Options) (schedule *models.Schedule, err error) {
	log := opts.logger().With().Str("book", filepath.Base(path)).Logger()

	src, err := openSource(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			schedule, err = nil, NewSourceReadError(path, "close", cerr)
		}
	}()

	rows, err := src.Rows()
	if err != nil {
		return nil, NewSourceReadError(path, "read rows", err)
	}
	var bounds parser.Bounds
	rows = parser.TrackBounds(rows, &bounds)

	schedule = &models.Schedule{
		BookName:  filepath.Base(path),
		SheetName: src.SheetName(),
		Columns:   map[models.Field]string{},
		Records:   []models.ScheduleRecord{},
	}

	headers, ok, err := parser.ReadHeader(rows)
	if err != nil {
		return nil, withPath(err, path)
	}
	if !ok {
		log.Info().Str("sheet", schedule.SheetName).Msg("sheet is empty")
		return schedule, nil
	}

	aliases := opts.aliasTable()
	cols, err := parser.ResolveHeaders(headers, aliases)
	if err != nil {
		log.Warn().
			Strs("headers", headers).
			Strs("expected", aliases.Aliases(models.FieldPersonName)).
			Msg("person name column not found")
		return nil, err
	}
	schedule.Columns = cols.Headers()
	log.Debug().Int("resolved", cols.Len()).Interface("columns", schedule.Columns).Msg("resolved columns")

	var lookup parser.ColorLookup
	if opts.ShouldIncludeColors() {
		lookup = src.ColorLookup()
		if lookup == nil {
			log.Debug().Msg("workbook format has no cell styles; colors omitted")
		}
	}

	res, err := parser.ExtractRecords(rows, cols, lookup)
	if err != nil {
		return nil, withPath(err, path)
	}

	schedule.Records = res.Records
	schedule.SkippedRows = res.Skipped
	schedule.UsedRange = bounds.Range()

	log.Info().
		Str("sheet", schedule.SheetName).
		Int("data_rows", res.DataRows).
		Int("records", len(res.Records)).
		Int("skipped", res.Skipped).
		Msg("schedule imported")

	return schedule, nil
}

// withPath fills in the workbook path on read errors raised below the source.
func withPath(err error, path string) error {
	var readErr *SourceReadError
	if errors.As(err, &readErr) && readErr.Path == "" {
		readErr.Path = path
	}
	return err
}
