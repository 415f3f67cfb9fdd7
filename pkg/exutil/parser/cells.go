package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/exutil-go/pkg/exutil/grid"
	"github.com/ukaji3/exutil-go/pkg/exutil/models"
	"github.com/xuri/excelize/v2"
)

// LoadSheet reads a sheet into an in-memory grid of typed values.
// Numeric cells formatted as dates or times become date, datetime or
// time-of-day values.
func LoadSheet(f *excelize.File, sheetName string) (*grid.Memory, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	date1904 := uses1904(f)
	formats := newFormatCache(f)

	values := make([][]models.Value, len(rows))
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		values[rowIdx] = make([]models.Value, len(row))

		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}
			v, err := readCell(f, sheetName, cellName, raw, date1904, formats)
			if err != nil {
				return nil, fmt.Errorf("cell %s: %w", cellName, err)
			}
			values[rowIdx][colIdx] = v
		}
	}

	return grid.NewMemory(values), nil
}

func readCell(f *excelize.File, sheetName, cellName, raw string, date1904 bool, formats *formatCache) (models.Value, error) {
	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return models.Value{}, err
	}

	switch cellType {
	case excelize.CellTypeBool:
		return models.Bool(raw == "1" || strings.EqualFold(raw, "TRUE")), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return models.String(raw), nil
	case excelize.CellTypeDate:
		return parseISODate(raw), nil
	}

	v := parseValue(raw)
	if v.Kind != models.KindNumber {
		return v, nil
	}

	kind, err := formats.kind(sheetName, cellName)
	if err != nil {
		return models.Value{}, err
	}
	if kind == models.KindNumber {
		return v, nil
	}

	t, err := excelize.ExcelDateToTime(v.Number, date1904)
	if err != nil {
		// Serials outside the supported calendar stay numeric.
		return v, nil
	}
	t = t.Round(time.Millisecond)
	switch kind {
	case models.KindDate:
		return models.DateOf(t), nil
	case models.KindTime:
		return models.TimeOf(t), nil
	}
	return models.DateTime(t), nil
}

// parseValue attempts to parse a string value as a number.
// Returns an integer or decimal number value, or the original string.
func parseValue(s string) models.Value {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.Int(i)
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return models.Number(f)
	}
	// Return as string
	return models.String(s)
}

// parseISODate parses the ISO 8601 text of a t="d" cell.
func parseISODate(s string) models.Value {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05", "2006-01-02"} {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if layout == "2006-01-02" {
			return models.DateOf(t)
		}
		return models.DateTime(t)
	}
	return models.String(s)
}

func uses1904(f *excelize.File) bool {
	props, err := f.GetWorkbookProps()
	if err != nil || props.Date1904 == nil {
		return false
	}
	return *props.Date1904
}
