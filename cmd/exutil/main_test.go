package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/exutil-go/pkg/exutil"
	"github.com/ukaji3/exutil-go/pkg/exutil/models"
	"github.com/xuri/excelize/v2"
)

func writeBook(t *testing.T, dir string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetCellValue("Sheet1", "A1", "apple"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "appel"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", 3.14))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", 2.5))

	// Dates!A1 is the serial of 2024-01-15 shown with a date format,
	// Dates!B1 the serial of 18:00 shown with a time format.
	_, err := f.NewSheet("Dates")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Dates", "A1", 45306))
	require.NoError(t, f.SetCellValue("Dates", "B1", 0.75))
	dateStyle, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	require.NoError(t, err)
	timeStyle, err := f.NewStyle(&excelize.Style{NumFmt: 21})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle("Dates", "A1", "A1", dateStyle))
	require.NoError(t, f.SetCellStyle("Dates", "B1", "B1", timeStyle))

	path := filepath.Join(dir, "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// execute runs the root command and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func decode(t *testing.T, out string) map[string]interface{} {
	t.Helper()

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	return m
}

func TestSearchCmd(t *testing.T) {
	book := writeBook(t, t.TempDir())

	t.Run("first hit", func(t *testing.T) {
		out, err := execute(t, "search", book, "--target", "apple")
		require.NoError(t, err)

		result := decode(t, out)["result"].(map[string]interface{})
		assert.Equal(t, "first_hit", result["kind"])
		first := result["first"].(map[string]interface{})
		assert.Equal(t, "A1", first["ref"])
		assert.Equal(t, "Sheet1", first["sheet_name"])
	})

	t.Run("all values", func(t *testing.T) {
		out, err := execute(t, "search", book, "-t", "apple", "--all")
		require.NoError(t, err)

		result := decode(t, out)["result"].(map[string]interface{})
		assert.Equal(t, "bucketed", result["kind"])
		assert.Len(t, result["equal"], 1)
		assert.Len(t, result["similar"], 2)
	})

	t.Run("inferred number", func(t *testing.T) {
		out, err := execute(t, "search", book, "-t", "2.5")
		require.NoError(t, err)

		first := decode(t, out)["result"].(map[string]interface{})["first"].(map[string]interface{})
		assert.Equal(t, "B2", first["ref"])
		assert.Equal(t, 2.5, first["value"])
	})

	t.Run("inferred date", func(t *testing.T) {
		out, err := execute(t, "search", book, "-t", "2024-01-15")
		require.NoError(t, err)

		first := decode(t, out)["result"].(map[string]interface{})["first"].(map[string]interface{})
		assert.Equal(t, "Dates", first["sheet_name"])
		assert.Equal(t, "A1", first["ref"])
		assert.Equal(t, "2024-01-15", first["value"])
	})

	t.Run("inferred time", func(t *testing.T) {
		out, err := execute(t, "search", book, "-t", "18:00")
		require.NoError(t, err)

		first := decode(t, out)["result"].(map[string]interface{})["first"].(map[string]interface{})
		assert.Equal(t, "B1", first["ref"])
		assert.Equal(t, "18:00:00", first["value"])
	})

	t.Run("explicit datetime kind misses a date cell", func(t *testing.T) {
		out, err := execute(t, "search", book, "-t", "2024-01-15 00:00", "--kind", "datetime")
		require.NoError(t, err)
		assert.Equal(t, "empty", decode(t, out)["result"].(map[string]interface{})["kind"])
	})

	t.Run("bad literal for kind", func(t *testing.T) {
		_, err := execute(t, "search", book, "-t", "2024-13-01", "--kind", "date")
		assert.ErrorIs(t, err, models.ErrInvalidLiteral)
	})

	t.Run("explicit kind", func(t *testing.T) {
		out, err := execute(t, "search", book, "-t", "3.14", "--kind", "string")
		require.NoError(t, err)
		assert.Equal(t, "empty", decode(t, out)["result"].(map[string]interface{})["kind"])
	})

	t.Run("threshold from environment", func(t *testing.T) {
		t.Setenv("EXUTIL_THRESHOLD", "1")

		out, err := execute(t, "search", book, "-t", "apple", "--all")
		require.NoError(t, err)

		result := decode(t, out)["result"].(map[string]interface{})
		assert.Equal(t, 1.0, decode(t, out)["threshold"])
		assert.Len(t, result["similar"], 1)
	})

	t.Run("mixed targets", func(t *testing.T) {
		_, err := execute(t, "search", book, "-t", "apple", "-t", "1")
		assert.ErrorIs(t, err, exutil.ErrTypeMismatch)
	})

	t.Run("no targets", func(t *testing.T) {
		_, err := execute(t, "search", book)
		assert.ErrorIs(t, err, exutil.ErrNoTargets)
	})

	t.Run("missing book", func(t *testing.T) {
		_, err := execute(t, "search", filepath.Join(t.TempDir(), "none.xlsx"), "-t", "x")
		assert.ErrorIs(t, err, exutil.ErrFileNotFound)
	})
}

func TestRangeCmd(t *testing.T) {
	book := writeBook(t, t.TempDir())

	t.Run("corners", func(t *testing.T) {
		out, err := execute(t, "range", book, "B2", "A1")
		require.NoError(t, err)

		view := decode(t, out)
		assert.Equal(t, "A1:B2", view["ref"])
		assert.Equal(t, []interface{}{
			[]interface{}{"apple", "appel"},
			[]interface{}{3.14, 2.5},
		}, view["rows"])
	})

	t.Run("ref", func(t *testing.T) {
		out, err := execute(t, "range", book, "--ref", "Sheet1!A2:B2")
		require.NoError(t, err)
		assert.Equal(t, []interface{}{[]interface{}{3.14, 2.5}}, decode(t, out)["rows"])
	})

	t.Run("used range", func(t *testing.T) {
		out, err := execute(t, "range", book)
		require.NoError(t, err)
		assert.Equal(t, "A1:B2", decode(t, out)["ref"])
	})

	t.Run("one corner", func(t *testing.T) {
		_, err := execute(t, "range", book, "A1")
		assert.Error(t, err)
	})

	t.Run("unknown sheet", func(t *testing.T) {
		_, err := execute(t, "range", book, "A1", "B2", "--sheet", "Nope")
		assert.ErrorIs(t, err, exutil.ErrSheetNotFound)
	})
}

func TestFilesCmd(t *testing.T) {
	dir := t.TempDir()
	book := writeBook(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))

	out, err := execute(t, "files", dir)
	require.NoError(t, err)
	var paths []string
	require.NoError(t, json.Unmarshal([]byte(out), &paths))
	assert.Equal(t, []string{book}, paths)

	out, err = execute(t, "files", dir, "--exclude")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &paths))
	assert.Equal(t, []string{filepath.Join(dir, "notes.txt")}, paths)

	_, err = execute(t, "files", dir, "--pattern", "[")
	assert.ErrorIs(t, err, exutil.ErrBadPattern)
}

func TestOutputFileAndConfig(t *testing.T) {
	dir := t.TempDir()
	book := writeBook(t, dir)
	outPath := filepath.Join(dir, "info.json")
	configPath := filepath.Join(dir, "exutil.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("pretty: true\n"), 0644))

	stdout, err := execute(t, "info", book, "--output", outPath, "--config", configPath)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"book_name\": \"book.xlsx\"")
}
