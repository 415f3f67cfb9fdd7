package models

// RangeView represents a slice of a sheet restricted to a range.
type RangeView struct {
	// BookName is the workbook name owning the range.
	BookName string `json:"book_name"`
	// SheetName is the sheet name owning the range.
	SheetName string `json:"sheet_name"`
	// Area is the range bounds.
	Area Range `json:"area"`
	// Ref is the range reference, e.g. "A1:D10".
	Ref string `json:"ref"`
	// Rows contains the values within the area, row-major.
	Rows [][]Value `json:"rows"`
}
