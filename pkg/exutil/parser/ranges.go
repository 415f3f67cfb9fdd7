package parser

import (
	"strings"

	"github.com/ukaji3/exutil-go/pkg/exutil/coord"
	"github.com/ukaji3/exutil-go/pkg/exutil/models"
	"github.com/xuri/excelize/v2"
)

// PrintAreaName is the reserved defined name of a sheet's print area.
const PrintAreaName = "_xlnm.Print_Area"

// DefinedRanges lists the workbook's defined names that refer to cell
// ranges. Names referring to constants or formulas are skipped, and a name
// covering several areas yields one entry per area.
func DefinedRanges(f *excelize.File) []models.DefinedRange {
	var result []models.DefinedRange

	for _, dn := range f.GetDefinedName() {
		for _, part := range splitReference(dn.RefersTo) {
			sheetName, area, err := coord.ParseRange(part)
			if err != nil {
				continue
			}
			if sheetName == "" && dn.Scope != "Workbook" {
				sheetName = dn.Scope
			}
			result = append(result, models.DefinedRange{
				Name:      dn.Name,
				SheetName: sheetName,
				Area:      area,
			})
		}
	}

	return result
}

// ExtractPrintAreas extracts print areas from a workbook.
// Returns a map of sheet name to list of print areas.
func ExtractPrintAreas(f *excelize.File) map[string][]models.Range {
	result := make(map[string][]models.Range)
	for _, dr := range DefinedRanges(f) {
		if strings.EqualFold(dr.Name, PrintAreaName) {
			result[dr.SheetName] = append(result[dr.SheetName], dr.Area)
		}
	}
	return result
}

// splitReference splits a reference such as 'Sheet1'!$A$1:$B$2,'Sheet1'!$D$1
// into its areas.
func splitReference(ref string) []string {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "=")

	var parts []string
	// Split by comma for multiple areas
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		parts = append(parts, part)
	}
	return parts
}
