// Package output serializes imported schedules.
package output

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/coopex/escala-go/pkg/escala/models"
)

// CSVHeader is the column order written by ToCSV.
var CSVHeader = []string{"date", "shift", "time", "contract", "person_name", "name_cell_color"}

// ToJSON serializes a schedule with its import metadata.
func ToJSON(s *models.Schedule, pretty bool) ([]byte, error) {
	return marshal(s, pretty)
}

// RecordsToJSON serializes records as a JSON array. A nil slice encodes as [].
func RecordsToJSON(records []models.ScheduleRecord, pretty bool) ([]byte, error) {
	if records == nil {
		records = []models.ScheduleRecord{}
	}
	return marshal(records, pretty)
}

// ColumnsToJSON serializes the field to header mapping of a sheet.
func ColumnsToJSON(columns map[models.Field]string, pretty bool) ([]byte, error) {
	if columns == nil {
		columns = map[models.Field]string{}
	}
	return marshal(columns, pretty)
}

// ToCSV writes records with a header line.
func ToCSV(w io.Writer, records []models.ScheduleRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write([]string{r.Date, r.Shift, r.Time, r.Contract, r.PersonName, r.NameCellColor}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
