// Package models defines data structures for schedule imports.
package models

// ScheduleRecord represents one normalized row of an imported schedule.
type ScheduleRecord struct {
	// Date is kept as free text; upload formats are not consistent.
	Date string `json:"date"`
	// Shift is the turn label, empty when the column is missing or blank.
	Shift string `json:"shift"`
	// Time is the slot time as displayed in the sheet.
	Time string `json:"time"`
	// Contract names the contracting party.
	Contract string `json:"contract"`
	// PersonName is the trimmed cooperative member name. Never empty.
	PersonName string `json:"person_name"`
	// NameCellColor is the ARGB fill of the name cell (e.g. "FFFF0000"), empty if absent.
	NameCellColor string `json:"name_cell_color,omitempty"`
}
