// Package extract copies rectangular blocks of values out of a grid.
package extract

import (
	"fmt"

	"github.com/ukaji3/exutil-go/pkg/exutil/coord"
	"github.com/ukaji3/exutil-go/pkg/exutil/grid"
	"github.com/ukaji3/exutil-go/pkg/exutil/models"
)

// Block is a rectangular copy of grid values.
type Block struct {
	// Area is the normalized, inclusive range the values were read from.
	Area models.Range
	// Rows holds Area.Rows() rows of Area.Cols() values each.
	Rows [][]models.Value
}

// IsVector reports whether the block collapses to a single row or column.
func (b Block) IsVector() bool {
	return b.Area.Rows() == 1 || b.Area.Cols() == 1
}

// Flat returns the values in row-major order.
func (b Block) Flat() []models.Value {
	out := make([]models.Value, 0, b.Area.Rows()*b.Area.Cols())
	for _, row := range b.Rows {
		out = append(out, row...)
	}
	return out
}

// Range extracts the values between two corners, both inclusive. Each
// corner is a cell reference string ("B2"), a models.Coordinate or a
// [2]int{row, col}. Corners may be given in any order.
func Range(g grid.Grid, start, end interface{}) (Block, error) {
	a, err := corner(start)
	if err != nil {
		return Block{}, fmt.Errorf("start corner: %w", err)
	}
	b, err := corner(end)
	if err != nil {
		return Block{}, fmt.Errorf("end corner: %w", err)
	}
	return Area(g, models.NewRange(a, b)), nil
}

// RangeString extracts a range given as a reference such as "A1:C3".
// A sheet prefix is ignored.
func RangeString(g grid.Grid, ref string) (Block, error) {
	_, area, err := coord.ParseRange(ref)
	if err != nil {
		return Block{}, err
	}
	return Area(g, area), nil
}

// Area extracts the values of an inclusive range.
func Area(g grid.Grid, area models.Range) Block {
	area = area.Normalize()
	rows := make([][]models.Value, 0, area.Rows())
	for r := area.R1; r <= area.R2; r++ {
		row := make([]models.Value, 0, area.Cols())
		for c := area.C1; c <= area.C2; c++ {
			row = append(row, g.Value(r, c))
		}
		rows = append(rows, row)
	}
	return Block{Area: area, Rows: rows}
}

func corner(v interface{}) (models.Coordinate, error) {
	var c models.Coordinate
	switch x := v.(type) {
	case string:
		return coord.Parse(x)
	case models.Coordinate:
		c = x
	case [2]int:
		c = models.Coordinate{Row: x[0], Col: x[1]}
	default:
		return models.Coordinate{}, fmt.Errorf("%w: expected a cell reference or (row, col) pair, got %T", models.ErrTypeMismatch, v)
	}
	if !c.Valid() {
		return models.Coordinate{}, fmt.Errorf("%w: row %d, column %d", coord.ErrInvalidCoordinate, c.Row, c.Col)
	}
	return c, nil
}
