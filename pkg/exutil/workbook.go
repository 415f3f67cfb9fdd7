package exutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/ukaji3/exutil-go/pkg/exutil/coord"
	"github.com/ukaji3/exutil-go/pkg/exutil/extract"
	"github.com/ukaji3/exutil-go/pkg/exutil/grid"
	"github.com/ukaji3/exutil-go/pkg/exutil/models"
	"github.com/ukaji3/exutil-go/pkg/exutil/parser"
	"github.com/ukaji3/exutil-go/pkg/exutil/search"
	"github.com/xuri/excelize/v2"
)

// Workbook gives typed, read-only access to the sheets of an Excel file.
// Sheets are loaded on first use and cached. It is safe for concurrent use.
type Workbook struct {
	f        *excelize.File
	bookName string

	mu    sync.Mutex
	grids map[string]*grid.Memory
}

// Open opens an Excel file.
func Open(path string) (*Workbook, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFormat, path, err)
	}
	return NewWorkbook(f, filepath.Base(path)), nil
}

// NewWorkbook wraps an already opened excelize file.
func NewWorkbook(f *excelize.File, bookName string) *Workbook {
	return &Workbook{
		f:        f,
		bookName: bookName,
		grids:    make(map[string]*grid.Memory),
	}
}

// Close closes the underlying file.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// Name returns the workbook file name.
func (w *Workbook) Name() string {
	return w.bookName
}

// SheetList returns the sheet names in workbook order.
func (w *Workbook) SheetList() []string {
	return w.f.GetSheetList()
}

// Info returns the workbook's sheets and defined ranges.
func (w *Workbook) Info() models.WorkbookData {
	return models.WorkbookData{
		BookName:      w.bookName,
		Sheets:        w.SheetList(),
		DefinedRanges: parser.DefinedRanges(w.f),
	}
}

// Sheet returns the grid of a sheet.
func (w *Workbook) Sheet(sheetName string) (*grid.Memory, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if g, ok := w.grids[sheetName]; ok {
		return g, nil
	}
	if !slices.Contains(w.f.GetSheetList(), sheetName) {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	g, err := parser.LoadSheet(w.f, sheetName)
	if err != nil {
		return nil, NewExtractionError(sheetName, "cells", err)
	}
	w.grids[sheetName] = g
	return g, nil
}

// Search scans the selected sheets for the targets.
func (w *Workbook) Search(ctx context.Context, targets []models.Value, opts Options) (models.SearchReport, error) {
	sheetNames := opts.Sheets
	if len(sheetNames) == 0 {
		sheetNames = w.SheetList()
	}

	sheets := make([]search.Sheet, 0, len(sheetNames))
	for _, name := range sheetNames {
		g, err := w.Sheet(name)
		if err != nil {
			return models.SearchReport{}, err
		}
		sheets = append(sheets, search.Sheet{Name: name, Grid: g})
	}

	result, err := search.SearchSheets(ctx, sheets, targets, opts.searchOptions()...)
	if err != nil {
		return models.SearchReport{}, err
	}

	return models.SearchReport{
		BookName:  w.bookName,
		Sheets:    sheetNames,
		Targets:   targets,
		Threshold: opts.Threshold,
		Result:    result,
	}, nil
}

// Range extracts the values between two corners of a sheet. Corners take
// the forms extract.Range accepts.
func (w *Workbook) Range(sheetName string, start, end interface{}) (models.RangeView, error) {
	g, err := w.Sheet(sheetName)
	if err != nil {
		return models.RangeView{}, err
	}
	block, err := extract.Range(g, start, end)
	if err != nil {
		return models.RangeView{}, NewExtractionError(sheetName, "range", err)
	}
	return w.view(sheetName, block), nil
}

// RangeRef extracts a range given as "A1:C3" or "Sheet1!A1:C3". Without a
// sheet prefix the range is read from defaultSheet.
func (w *Workbook) RangeRef(ref, defaultSheet string) (models.RangeView, error) {
	sheetName, area, err := coord.ParseRange(ref)
	if err != nil {
		return models.RangeView{}, err
	}
	if sheetName == "" {
		sheetName = defaultSheet
	}
	return w.area(sheetName, area)
}

// NamedRange extracts the first area of a defined name. Sheet-scoped names
// such as print areas can be qualified as "Sheet1!_xlnm.Print_Area".
func (w *Workbook) NamedRange(name string) (models.RangeView, error) {
	scope := ""
	if idx := strings.LastIndex(name, "!"); idx >= 0 {
		scope, name = strings.Trim(name[:idx], "'"), name[idx+1:]
	}
	for _, dr := range parser.DefinedRanges(w.f) {
		if !strings.EqualFold(dr.Name, name) || (scope != "" && dr.SheetName != scope) {
			continue
		}
		return w.area(dr.SheetName, dr.Area)
	}
	return models.RangeView{}, fmt.Errorf("%w: %q", ErrNameNotFound, name)
}

// PrintAreas extracts every print area defined for a sheet, in definition
// order.
func (w *Workbook) PrintAreas(sheetName string) ([]models.RangeView, error) {
	if _, err := w.Sheet(sheetName); err != nil {
		return nil, err
	}
	var views []models.RangeView
	for _, area := range parser.ExtractPrintAreas(w.f)[sheetName] {
		view, err := w.area(sheetName, area)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// UsedRange extracts the dense table region of a sheet, or an empty view
// when the sheet has no table-like data.
func (w *Workbook) UsedRange(sheetName string) (models.RangeView, error) {
	g, err := w.Sheet(sheetName)
	if err != nil {
		return models.RangeView{}, err
	}
	tables := parser.DetectTables(g, parser.DefaultTableParams())
	if len(tables) == 0 {
		return models.RangeView{BookName: w.bookName, SheetName: sheetName}, nil
	}
	return w.view(sheetName, extract.Area(g, tables[0])), nil
}

func (w *Workbook) area(sheetName string, area models.Range) (models.RangeView, error) {
	g, err := w.Sheet(sheetName)
	if err != nil {
		return models.RangeView{}, err
	}
	return w.view(sheetName, extract.Area(g, area)), nil
}

func (w *Workbook) view(sheetName string, block extract.Block) models.RangeView {
	return models.RangeView{
		BookName:  w.bookName,
		SheetName: sheetName,
		Area:      block.Area,
		Ref:       block.Area.String(),
		Rows:      block.Rows,
	}
}
