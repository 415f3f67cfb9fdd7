package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/exutil-go/pkg/exutil"
)

func (a *app) newRangeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "range BOOK.xlsx [START END]",
		Short: "Extract the values of a cell range",
		Long: `Range extracts a rectangle of typed cell values, both corners included.

The rectangle is chosen by, in order: --name (a defined name), --print-area,
--ref ("A1:C3" or "Sheet1!A1:C3"), the START and END corners, or else the
used range of the sheet.`,
		Args: cobra.MatchAll(cobra.MaximumNArgs(3), func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				return fmt.Errorf("range needs both START and END corners")
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		}),
		RunE: a.runRange,
	}

	f := cmd.Flags()
	f.String("sheet", "", "Sheet to read (default: first sheet)")
	f.String("ref", "", "Range reference, e.g. A1:C3 or Sheet1!A1:C3")
	f.String("name", "", "Defined name to extract")
	f.Bool("print-area", false, "Extract the print areas of the sheet")

	return cmd
}

func (a *app) runRange(cmd *cobra.Command, args []string) error {
	wb, err := exutil.Open(args[0])
	if err != nil {
		return err
	}
	defer wb.Close()

	sheet := a.v.GetString("sheet")
	if sheet == "" {
		sheets := wb.SheetList()
		if len(sheets) == 0 {
			return fmt.Errorf("%w: workbook has no sheets", exutil.ErrSheetNotFound)
		}
		sheet = sheets[0]
	}

	switch {
	case a.v.GetString("name") != "":
		view, err := wb.NamedRange(a.v.GetString("name"))
		if err != nil {
			return err
		}
		return a.write(cmd, view)
	case a.v.GetBool("print-area"):
		views, err := wb.PrintAreas(sheet)
		if err != nil {
			return err
		}
		return a.write(cmd, views)
	case a.v.GetString("ref") != "":
		view, err := wb.RangeRef(a.v.GetString("ref"), sheet)
		if err != nil {
			return err
		}
		return a.write(cmd, view)
	case len(args) == 3:
		view, err := wb.Range(sheet, args[1], args[2])
		if err != nil {
			return err
		}
		return a.write(cmd, view)
	}

	view, err := wb.UsedRange(sheet)
	if err != nil {
		return err
	}
	return a.write(cmd, view)
}
