// Package grid defines the cell grid accessor consumed by the search and
// extraction packages, with an in-memory implementation.
package grid

import (
	"fmt"
	"iter"
	"time"

	"github.com/ukaji3/exutil-go/pkg/exutil/models"
)

// Grid is a read-only 2-D table of cells.
type Grid interface {
	// All yields every cell in row-major order.
	All() iter.Seq[models.Cell]
	// Value returns the value at (row, col), 1-based. Cells outside the
	// populated area are empty.
	Value(row, col int) models.Value
}

// Memory is an immutable in-memory grid. It is safe for concurrent use.
type Memory struct {
	rows  [][]models.Value
	width int
}

// Ensure Memory implements Grid at compile time.
var _ Grid = (*Memory)(nil)

// NewMemory creates a grid from row-major values. rows[0][0] is A1.
// Rows may have different lengths. The input is copied.
func NewMemory(rows [][]models.Value) *Memory {
	m := &Memory{rows: make([][]models.Value, len(rows))}
	for i, row := range rows {
		m.rows[i] = append([]models.Value(nil), row...)
		m.width = max(m.width, len(row))
	}
	return m
}

// FromRows creates a grid from plain Go values: nil, string, integers,
// floats, bool, time.Time (a datetime) or models.Value.
func FromRows(rows [][]interface{}) (*Memory, error) {
	values := make([][]models.Value, len(rows))
	for i, row := range rows {
		values[i] = make([]models.Value, len(row))
		for j, v := range row {
			value, err := ValueOf(v)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: %w", i+1, j+1, err)
			}
			values[i][j] = value
		}
	}
	return NewMemory(values), nil
}

// ValueOf converts a plain Go value to a models.Value.
func ValueOf(v interface{}) (models.Value, error) {
	switch x := v.(type) {
	case nil:
		return models.Empty(), nil
	case models.Value:
		return x, nil
	case string:
		return models.String(x), nil
	case int:
		return models.Int(int64(x)), nil
	case int64:
		return models.Int(x), nil
	case int32:
		return models.Int(int64(x)), nil
	case float64:
		return models.Number(x), nil
	case float32:
		return models.Number(float64(x)), nil
	case bool:
		return models.Bool(x), nil
	case time.Time:
		return models.DateTime(x), nil
	}
	return models.Value{}, fmt.Errorf("%w: unsupported cell value %T", models.ErrTypeMismatch, v)
}

// All yields every cell, including empty ones, row by row.
func (m *Memory) All() iter.Seq[models.Cell] {
	return func(yield func(models.Cell) bool) {
		for i, row := range m.rows {
			for j, v := range row {
				cell := models.Cell{
					Coordinate: models.Coordinate{Row: i + 1, Col: j + 1},
					Value:      v,
				}
				if !yield(cell) {
					return
				}
			}
		}
	}
}

// Value returns the value at (row, col).
func (m *Memory) Value(row, col int) models.Value {
	if row < 1 || row > len(m.rows) {
		return models.Empty()
	}
	r := m.rows[row-1]
	if col < 1 || col > len(r) {
		return models.Empty()
	}
	return r[col-1]
}

// Bounds returns the range spanning every stored cell, and false for an
// empty grid.
func (m *Memory) Bounds() (models.Range, bool) {
	if len(m.rows) == 0 || m.width == 0 {
		return models.Range{}, false
	}
	return models.Range{R1: 1, C1: 1, R2: len(m.rows), C2: m.width}, true
}

// Rows returns the number of stored rows.
func (m *Memory) Rows() int { return len(m.rows) }

// Cols returns the length of the longest stored row.
func (m *Memory) Cols() int { return m.width }
