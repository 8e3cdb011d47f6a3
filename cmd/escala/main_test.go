package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/coopex/escala-go/pkg/escala/models"
)

func writeSchedule(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	path := filepath.Join(t.TempDir(), "escala.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func sampleSchedule(t *testing.T) string {
	return writeSchedule(t, [][]any{
		{"DATA", "TURNO", "HORÁRIO", "CONTRATO", "NOME DO COOPERADO"},
		{"2024-01-05", "Manhã", "08:00", "ACME", "Ana Silva"},
		{"2024-01-05", "Tarde", "14:00", "ACME", ""},
		{"2024-01-06", "Noite", "19:00", "Beta", "Bruno Costa"},
	})
}

func TestExecuteJSON(t *testing.T) {
	var out bytes.Buffer
	code := execute([]string{sampleSchedule(t)}, &out)
	require.Equal(t, 0, code)

	var records []models.ScheduleRecord
	require.NoError(t, json.Unmarshal(out.Bytes(), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "Ana Silva", records[0].PersonName)
	assert.Equal(t, "Manhã", records[0].Shift)
	assert.Equal(t, "Bruno Costa", records[1].PersonName)
}

func TestExecutePersonFilterCSV(t *testing.T) {
	var out bytes.Buffer
	code := execute([]string{"--format", "csv", "--person", "bruno", sampleSchedule(t)}, &out)
	require.Equal(t, 0, code)
	assert.Equal(t,
		"date,shift,time,contract,person_name,name_cell_color\n"+
			"2024-01-06,Noite,19:00,Beta,Bruno Costa,\n",
		out.String())
}

func TestExecuteColumns(t *testing.T) {
	var out bytes.Buffer
	code := execute([]string{"--columns", sampleSchedule(t)}, &out)
	require.Equal(t, 0, code)

	var cols map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &cols))
	assert.Equal(t, "NOME DO COOPERADO", cols["person_name"])
	assert.Len(t, cols, 5)
}

func TestExecuteOutputFile(t *testing.T) {
	var out bytes.Buffer
	dest := filepath.Join(t.TempDir(), "records.json")
	code := execute([]string{"-o", dest, "--pretty", sampleSchedule(t)}, &out)
	require.Equal(t, 0, code)
	assert.Empty(t, out.String())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  {\n")
}

func TestExecuteHeaderOnly(t *testing.T) {
	var out bytes.Buffer
	path := writeSchedule(t, [][]any{{"DATA", "NOME"}})
	code := execute([]string{"--config", writeConfig(t), path}, &out)
	require.Equal(t, 0, code)
	assert.Equal(t, "[]\n", out.String())
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "escala.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0644))
	return path
}

func TestExecuteExitCodes(t *testing.T) {
	var out bytes.Buffer

	noName := writeSchedule(t, [][]any{{"DATA", "HORÁRIO"}, {"2024-01-05", "08:00"}})
	assert.Equal(t, exitMissingColumn, execute([]string{noName}, &out))

	missing := filepath.Join(t.TempDir(), "missing.xlsx")
	assert.Equal(t, exitSourceRead, execute([]string{missing}, &out))

	assert.Equal(t, exitError, execute([]string{"--format", "xml", sampleSchedule(t)}, &out))
	assert.Equal(t, exitError, execute([]string{}, &out))
	assert.Empty(t, out.String())
}
