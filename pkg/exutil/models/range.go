package models

import "fmt"

// Range represents inclusive cell coordinate bounds.
type Range struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// NewRange builds a normalized range from two corners given in any order.
func NewRange(a, b Coordinate) Range {
	return Range{R1: a.Row, C1: a.Col, R2: b.Row, C2: b.Col}.Normalize()
}

// Normalize swaps bounds so that R1 <= R2 and C1 <= C2.
func (r Range) Normalize() Range {
	if r.R1 > r.R2 {
		r.R1, r.R2 = r.R2, r.R1
	}
	if r.C1 > r.C2 {
		r.C1, r.C2 = r.C2, r.C1
	}
	return r
}

// Start returns the top-left corner.
func (r Range) Start() Coordinate { return Coordinate{Row: r.R1, Col: r.C1} }

// End returns the bottom-right corner.
func (r Range) End() Coordinate { return Coordinate{Row: r.R2, Col: r.C2} }

// Rows returns the number of rows covered.
func (r Range) Rows() int { return r.R2 - r.R1 + 1 }

// Cols returns the number of columns covered.
func (r Range) Cols() int { return r.C2 - r.C1 + 1 }

// Contains reports whether c lies within the range.
func (r Range) Contains(c Coordinate) bool {
	return c.Row >= r.R1 && c.Row <= r.R2 && c.Col >= r.C1 && c.Col <= r.C2
}

// String returns the range reference, e.g. "A1:D10".
func (r Range) String() string {
	return fmt.Sprintf("%s:%s", r.Start(), r.End())
}

// DefinedRange is a workbook defined name that refers to a cell range.
type DefinedRange struct {
	// Name is the defined name (e.g. "_xlnm.Print_Area").
	Name string `json:"name"`
	// SheetName is the sheet the range points into.
	SheetName string `json:"sheet_name"`
	// Area is the referenced range.
	Area Range `json:"area"`
}
