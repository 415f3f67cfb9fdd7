package exutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/exutil-go/pkg/exutil"
	"github.com/ukaji3/exutil-go/pkg/exutil/models"
	"github.com/xuri/excelize/v2"
)

// writeBook saves a two-sheet workbook and returns its path.
//
//	Sheet1: A1 apple  B1 banana
//	        A2 3.14   B2 10
//	Sheet2: A1 appel  C3 apple
func writeBook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet("Sheet2")
	require.NoError(t, err)

	require.NoError(t, f.SetCellValue("Sheet1", "A1", "apple"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "banana"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", 3.14))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", 10))
	require.NoError(t, f.SetCellValue("Sheet2", "A1", "appel"))
	require.NoError(t, f.SetCellValue("Sheet2", "C3", "apple"))

	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     "Fruits",
		RefersTo: "Sheet1!$A$1:$B$1",
	}))
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet1!$A$1:$B$2",
		Scope:    "Sheet1",
	}))

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func openBook(t *testing.T) *exutil.Workbook {
	t.Helper()

	wb, err := exutil.Open(writeBook(t))
	require.NoError(t, err)
	t.Cleanup(func() { wb.Close() })
	return wb
}

func refs(hits []models.Hit) []string {
	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.SheetName+"!"+h.Ref)
	}
	return out
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := exutil.Open(filepath.Join(t.TempDir(), "missing.xlsx"))
		assert.ErrorIs(t, err, exutil.ErrFileNotFound)
	})

	t.Run("not a workbook", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "notes.xlsx")
		require.NoError(t, os.WriteFile(path, []byte("plain text"), 0644))

		_, err := exutil.Open(path)
		assert.ErrorIs(t, err, exutil.ErrInvalidFormat)
	})

	t.Run("info", func(t *testing.T) {
		t.Parallel()

		wb := openBook(t)
		info := wb.Info()
		assert.Equal(t, "book.xlsx", info.BookName)
		assert.Equal(t, []string{"Sheet1", "Sheet2"}, info.Sheets)
		assert.Contains(t, info.DefinedRanges, models.DefinedRange{
			Name:      "Fruits",
			SheetName: "Sheet1",
			Area:      models.Range{R1: 1, C1: 1, R2: 1, C2: 2},
		})
	})
}

func TestWorkbookSearch(t *testing.T) {
	t.Parallel()

	wb := openBook(t)
	ctx := context.Background()

	t.Run("first hit", func(t *testing.T) {
		report, err := wb.Search(ctx, []models.Value{models.String("apple")}, exutil.DefaultOptions())
		require.NoError(t, err)

		require.Equal(t, models.ResultFirstHit, report.Result.Kind)
		assert.Equal(t, "Sheet1", report.Result.First.SheetName)
		assert.Equal(t, "A1", report.Result.First.Ref)
		assert.Equal(t, []string{"Sheet1", "Sheet2"}, report.Sheets)
	})

	t.Run("all values across sheets", func(t *testing.T) {
		firstHit := false
		opts := exutil.DefaultOptions()
		opts.FirstHit = &firstHit
		opts.AllValues = true
		opts.Threshold = 0.75

		report, err := wb.Search(ctx, []models.Value{models.String("apple")}, opts)
		require.NoError(t, err)

		require.Equal(t, models.ResultBucketed, report.Result.Kind)
		assert.Equal(t, []string{"Sheet1!A1", "Sheet2!C3"}, refs(report.Result.Equal))
		assert.Equal(t, []string{"Sheet1!A1", "Sheet2!A1", "Sheet2!C3"}, refs(report.Result.Similar))
	})

	t.Run("restricted to one sheet", func(t *testing.T) {
		opts := exutil.DefaultOptions()
		opts.Sheets = []string{"Sheet2"}

		report, err := wb.Search(ctx, []models.Value{models.String("apple")}, opts)
		require.NoError(t, err)
		require.Equal(t, models.ResultFirstHit, report.Result.Kind)
		assert.Equal(t, "Sheet2!C3", refs([]models.Hit{*report.Result.First})[0])
	})

	t.Run("number with literal precision", func(t *testing.T) {
		target, err := models.NumberLiteral("3.1")
		require.NoError(t, err)

		report, err := wb.Search(ctx, []models.Value{target}, exutil.DefaultOptions())
		require.NoError(t, err)
		require.Equal(t, models.ResultFirstHit, report.Result.Kind)
		assert.Equal(t, "A2", report.Result.First.Ref)
	})

	t.Run("no hit", func(t *testing.T) {
		report, err := wb.Search(ctx, []models.Value{models.String("cherry")}, exutil.DefaultOptions())
		require.NoError(t, err)
		assert.False(t, report.Result.Found())
	})

	t.Run("errors", func(t *testing.T) {
		opts := exutil.DefaultOptions()
		opts.Sheets = []string{"Nope"}
		_, err := wb.Search(ctx, []models.Value{models.String("apple")}, opts)
		assert.ErrorIs(t, err, exutil.ErrSheetNotFound)

		_, err = wb.Search(ctx, nil, exutil.DefaultOptions())
		assert.ErrorIs(t, err, exutil.ErrNoTargets)

		_, err = wb.Search(ctx, []models.Value{models.String("a"), models.Int(1)}, exutil.DefaultOptions())
		assert.ErrorIs(t, err, exutil.ErrTypeMismatch)
	})
}

func TestWorkbookRange(t *testing.T) {
	t.Parallel()

	wb := openBook(t)

	t.Run("reversed corners", func(t *testing.T) {
		view, err := wb.Range("Sheet1", "B2", "A1")
		require.NoError(t, err)

		assert.Equal(t, "A1:B2", view.Ref)
		assert.Equal(t, [][]models.Value{
			{models.String("apple"), models.String("banana")},
			{models.Number(3.14), models.Int(10)},
		}, view.Rows)
	})

	t.Run("reference with sheet prefix", func(t *testing.T) {
		view, err := wb.RangeRef("Sheet2!A1:C1", "Sheet1")
		require.NoError(t, err)

		assert.Equal(t, "Sheet2", view.SheetName)
		assert.Equal(t, [][]models.Value{{models.String("appel"), models.Empty(), models.Empty()}}, view.Rows)
	})

	t.Run("defined name", func(t *testing.T) {
		view, err := wb.NamedRange("Fruits")
		require.NoError(t, err)
		assert.Equal(t, "A1:B1", view.Ref)

		_, err = wb.NamedRange("Vegetables")
		assert.ErrorIs(t, err, exutil.ErrNameNotFound)
	})

	t.Run("print areas", func(t *testing.T) {
		views, err := wb.PrintAreas("Sheet1")
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "A1:B2", views[0].Ref)

		views, err = wb.PrintAreas("Sheet2")
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("used range", func(t *testing.T) {
		view, err := wb.UsedRange("Sheet2")
		require.NoError(t, err)
		assert.Empty(t, view.Ref, "two cells are below the table minimum")

		view, err = wb.UsedRange("Sheet1")
		require.NoError(t, err)
		assert.Equal(t, "A1:B2", view.Ref)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := wb.Range("Nope", "A1", "B2")
		assert.ErrorIs(t, err, exutil.ErrSheetNotFound)

		_, err = wb.Range("Sheet1", "1A", "B2")
		assert.ErrorIs(t, err, exutil.ErrInvalidCoordinate)

		var extErr *exutil.ExtractionError
		_, err = wb.Range("Sheet1", 1.5, "B2")
		require.ErrorAs(t, err, &extErr)
		assert.Equal(t, "range", extErr.Component)
		assert.ErrorIs(t, err, exutil.ErrTypeMismatch)
	})
}
