package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coopex/escala-go/pkg/escala/models"
)

func TestRecordsToJSON(t *testing.T) {
	data, err := RecordsToJSON(nil, false)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	data, err = RecordsToJSON([]models.ScheduleRecord{
		{Date: "2024-01-05", Time: "08:00", Contract: "ACME", PersonName: "Ana Silva"},
		{PersonName: "Bruno", NameCellColor: "FFFF0000"},
	}, false)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"date":"2024-01-05","shift":"","time":"08:00","contract":"ACME","person_name":"Ana Silva"},
		{"date":"","shift":"","time":"","contract":"","person_name":"Bruno","name_cell_color":"FFFF0000"}
	]`, string(data))
}

func TestToJSONPretty(t *testing.T) {
	s := &models.Schedule{
		BookName:  "escala.xlsx",
		SheetName: "Sheet1",
		Columns:   map[models.Field]string{models.FieldPersonName: "NOME"},
		Records:   []models.ScheduleRecord{{PersonName: "Ana"}},
	}

	data, err := ToJSON(s, true)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"book_name\": \"escala.xlsx\"")
	assert.Contains(t, string(data), `"person_name": "NOME"`)
	assert.NotContains(t, string(data), "used_range")
}

func TestToCSV(t *testing.T) {
	var buf bytes.Buffer
	err := ToCSV(&buf, []models.ScheduleRecord{
		{Date: "2024-01-05", Shift: "Noite", Time: "19:00", Contract: "ACME, Ltda", PersonName: "Ana", NameCellColor: "FF00FF00"},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"date,shift,time,contract,person_name,name_cell_color\n"+
			"2024-01-05,Noite,19:00,\"ACME, Ltda\",Ana,FF00FF00\n",
		buf.String())
}

func TestColumnsToJSON(t *testing.T) {
	data, err := ColumnsToJSON(nil, false)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	data, err = ColumnsToJSON(map[models.Field]string{
		models.FieldPersonName: "NOME",
		models.FieldDate:       "DATA",
	}, false)
	require.NoError(t, err)
	assert.Equal(t, `{"date":"DATA","person_name":"NOME"}`, string(data))
}
