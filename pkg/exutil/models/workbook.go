package models

// WorkbookData represents workbook-level metadata.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists sheet names in workbook order.
	Sheets []string `json:"sheets"`
	// DefinedRanges lists defined names that refer to cell ranges.
	DefinedRanges []DefinedRange `json:"defined_ranges,omitempty"`
}

// SearchReport is the serialized outcome of a workbook search.
type SearchReport struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists the sheets that were scanned.
	Sheets []string `json:"sheets"`
	// Targets are the values searched for.
	Targets []Value `json:"targets"`
	// Threshold is the similarity threshold used for text targets.
	Threshold float64 `json:"threshold"`
	// Result is the merged search result.
	Result Result `json:"result"`
}
