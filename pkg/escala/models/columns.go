package models

// Field is a semantic schedule attribute located through header aliases.
type Field string

const (
	FieldDate       Field = "date"
	FieldShift      Field = "shift"
	FieldTime       Field = "time"
	FieldContract   Field = "contract"
	FieldPersonName Field = "person_name"
)

// Fields lists the semantic fields in resolution order.
var Fields = []Field{FieldDate, FieldShift, FieldTime, FieldContract, FieldPersonName}

// Valid reports whether f is one of the known semantic fields.
func (f Field) Valid() bool {
	for _, known := range Fields {
		if f == known {
			return true
		}
	}
	return false
}

// Column identifies a matched header column.
type Column struct {
	// Index is the 0-based column position in the header row.
	Index int `json:"index"`
	// Header is the literal header text that matched.
	Header string `json:"header"`
}

// ColumnMap maps semantic fields to the columns resolved for one sheet.
// It is immutable once built.
type ColumnMap struct {
	cols map[Field]Column
}

// NewColumnMap builds a ColumnMap from resolved columns.
func NewColumnMap(cols map[Field]Column) ColumnMap {
	copied := make(map[Field]Column, len(cols))
	for f, c := range cols {
		copied[f] = c
	}
	return ColumnMap{cols: copied}
}

// Column returns the column resolved for f, if any.
func (m ColumnMap) Column(f Field) (Column, bool) {
	c, ok := m.cols[f]
	return c, ok
}

// Headers returns field to header text for the resolved fields.
func (m ColumnMap) Headers() map[Field]string {
	out := make(map[Field]string, len(m.cols))
	for f, c := range m.cols {
		out[f] = c.Header
	}
	return out
}

// Len returns the number of resolved fields.
func (m ColumnMap) Len() int {
	return len(m.cols)
}
