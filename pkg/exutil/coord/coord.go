// Package coord converts between Excel-style cell references ("BAA501")
// and 1-based (row, column) pairs.
package coord

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ukaji3/exutil-go/pkg/exutil/models"
	"github.com/xuri/excelize/v2"
)

// ErrInvalidCoordinate indicates a malformed cell reference or a
// non-positive row or column.
var ErrInvalidCoordinate = errors.New("invalid cell coordinate")

// cellName is letters followed by a row number without leading zeros.
var cellName = regexp.MustCompile(`^[A-Za-z]+[1-9][0-9]*$`)

// Decode converts a cell reference such as "AA10" to (10, 27).
// Letters are case-insensitive. Columns beyond XFD (16384) and rows beyond
// 1048576 are rejected even when the reference is well formed.
func Decode(text string) (row, col int, err error) {
	if text == "" {
		return 0, 0, fmt.Errorf("%w: empty reference", ErrInvalidCoordinate)
	}
	if !cellName.MatchString(text) {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidCoordinate, text)
	}
	col, row, err = excelize.CellNameToCoordinates(text)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %w", ErrInvalidCoordinate, text, err)
	}
	return row, col, nil
}

// Encode converts (row, col) to an uppercase cell reference. It accepts
// the same bounds as Decode: at most 16384 columns and 1048576 rows.
func Encode(row, col int) (string, error) {
	if row < 1 || col < 1 {
		return "", fmt.Errorf("%w: row %d, column %d", ErrInvalidCoordinate, row, col)
	}
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", fmt.Errorf("%w: row %d, column %d: %w", ErrInvalidCoordinate, row, col, err)
	}
	return name, nil
}

// Parse decodes a cell reference into a Coordinate.
func Parse(text string) (models.Coordinate, error) {
	row, col, err := Decode(text)
	if err != nil {
		return models.Coordinate{}, err
	}
	return models.Coordinate{Row: row, Col: col}, nil
}

// ParseRange parses a range reference such as "A1:D10", "$A$1:$D$10" or
// "'Sheet 1'!A1:D10". A single cell reference yields a one-cell range.
// The sheet name, if any, is returned unquoted.
func ParseRange(ref string) (string, models.Range, error) {
	ref = strings.TrimSpace(ref)

	var sheetName string
	// Split by ! to separate sheet name and range
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheetName = strings.Trim(ref[:idx], "'")
		ref = ref[idx+1:]
	}

	// Remove $ signs
	ref = strings.ReplaceAll(ref, "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) > 2 {
		return "", models.Range{}, fmt.Errorf("%w: range %q", ErrInvalidCoordinate, ref)
	}

	start, err := Parse(parts[0])
	if err != nil {
		return "", models.Range{}, err
	}
	end := start
	if len(parts) == 2 {
		if end, err = Parse(parts[1]); err != nil {
			return "", models.Range{}, err
		}
	}

	return sheetName, models.NewRange(start, end), nil
}
