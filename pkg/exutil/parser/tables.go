package parser

import (
	"github.com/ukaji3/exutil-go/pkg/exutil/grid"
	"github.com/ukaji3/exutil-go/pkg/exutil/models"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
	}
}

// DetectTables detects table-like regions in a grid.
// Returns the ranges (e.g. A1:D10) that likely represent tables.
func DetectTables(g grid.Grid, params TableDetectionParams) []models.Range {
	// Find the bounding box of non-empty cells
	bounds, nonEmptyCells, ok := findDataBounds(g)
	if !ok {
		return nil
	}

	if nonEmptyCells < params.MinNonemptyCells {
		return nil
	}

	// Calculate density
	totalCells := bounds.Rows() * bounds.Cols()
	density := float64(nonEmptyCells) / float64(totalCells)
	if density < params.DensityMin {
		return nil
	}

	return []models.Range{bounds}
}

// UsedRange returns the bounding box of non-empty cells.
func UsedRange(g grid.Grid) (models.Range, bool) {
	bounds, _, ok := findDataBounds(g)
	return bounds, ok
}

// findDataBounds finds the bounding box of non-empty cells and counts them.
func findDataBounds(g grid.Grid) (bounds models.Range, count int, ok bool) {
	for cell := range g.All() {
		if cell.Value.IsEmpty() {
			continue
		}
		count++
		if !ok {
			bounds = models.Range{R1: cell.Row, C1: cell.Col, R2: cell.Row, C2: cell.Col}
			ok = true
			continue
		}
		bounds.R1 = min(bounds.R1, cell.Row)
		bounds.R2 = max(bounds.R2, cell.Row)
		bounds.C1 = min(bounds.C1, cell.Col)
		bounds.C2 = max(bounds.C2, cell.Col)
	}
	return bounds, count, ok
}
