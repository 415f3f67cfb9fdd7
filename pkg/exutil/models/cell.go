// Package models defines the value, cell and result types shared by the
// search, extraction and output packages.
package models

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Coordinate identifies one grid cell.
type Coordinate struct {
	// Row is the row index (1-based).
	Row int `json:"r"`
	// Col is the column index (1-based).
	Col int `json:"c"`
}

// Valid reports whether both components are positive.
func (c Coordinate) Valid() bool {
	return c.Row >= 1 && c.Col >= 1
}

// String returns the cell reference, e.g. "B4".
func (c Coordinate) String() string {
	name, err := excelize.CoordinatesToCellName(c.Col, c.Row)
	if err != nil {
		return fmt.Sprintf("R%dC%d", c.Row, c.Col)
	}
	return name
}

// Cell is a value read from a grid together with its position.
type Cell struct {
	Coordinate
	Value Value
}
