package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// solidPattern is the excelize pattern index for a solid fill.
const solidPattern = 1

// FillColorLookup returns a ColorLookup reading cell styles from f.
// Styles are cached by ID for the lifetime of the lookup.
func FillColorLookup(f *excelize.File, sheetName string) ColorLookup {
	cache := make(map[int]string)
	return func(row, col int) (string, error) {
		cellName, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return "", err
		}
		styleID, err := f.GetCellStyle(sheetName, cellName)
		if err != nil {
			return "", err
		}
		if color, ok := cache[styleID]; ok {
			return color, nil
		}
		style, err := f.GetStyle(styleID)
		if err != nil {
			return "", err
		}
		color := solidFillColor(style.Fill)
		cache[styleID] = color
		return color, nil
	}
}

// solidFillColor returns the ARGB foreground of a solid pattern fill.
// Gradient and patterned fills have no single color and yield "".
func solidFillColor(fill excelize.Fill) string {
	if fill.Type != "pattern" || fill.Pattern != solidPattern || len(fill.Color) == 0 {
		return ""
	}
	return NormalizeARGB(fill.Color[0])
}

// NormalizeARGB converts "#RRGGBB", "RRGGBB" or "AARRGGBB" to upper-case
// 8-digit ARGB. Anything else yields "".
func NormalizeARGB(color string) string {
	color = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(color), "#"))
	switch len(color) {
	case 6:
		color = "FF" + color
	case 8:
	default:
		return ""
	}
	for _, c := range color {
		if !(c >= '0' && c <= '9' || c >= 'A' && c <= 'F') {
			return ""
		}
	}
	return color
}
