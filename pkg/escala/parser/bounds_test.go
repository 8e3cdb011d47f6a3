package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundsRange(t *testing.T) {
	var b Bounds
	assert.Empty(t, b.Range())

	b.Observe(1, []string{"", "DATA", "NOME"})
	b.Observe(2, nil)
	b.Observe(5, []string{"", "", "", "x"})
	assert.Equal(t, "B1:D5", b.Range())
}

func TestBoundsIgnoresWhitespaceCells(t *testing.T) {
	var b Bounds
	b.Observe(1, []string{"DATA", "NOME"})
	b.Observe(2, []string{"2024-01-05", "Ana"})
	b.Observe(3, []string{"  ", "", "\t", " "})
	assert.Equal(t, "A1:B2", b.Range())

	var blank Bounds
	blank.Observe(1, []string{"   "})
	assert.Empty(t, blank.Range())
}

func TestTrackBounds(t *testing.T) {
	var b Bounds
	rows := TrackBounds(NewSliceRows([][]string{
		{"DATA", "", "NOME"},
		{},
		{"2024-01-05", "", "Ana"},
	}), &b)

	_, ok, err := ReadHeader(rows)
	require.NoError(t, err)
	require.True(t, ok)

	cols, err := ResolveHeaders([]string{"DATA", "", "NOME"}, DefaultAliases())
	require.NoError(t, err)

	res, err := ExtractRecords(rows, cols, nil)
	require.NoError(t, err)
	assert.Len(t, res.Records, 1)
	assert.Equal(t, "A1:C3", b.Range())
}
