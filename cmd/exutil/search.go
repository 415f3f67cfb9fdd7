package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/exutil-go/pkg/exutil"
	"github.com/ukaji3/exutil-go/pkg/exutil/models"
	"github.com/ukaji3/exutil-go/pkg/exutil/similarity"
)

func (a *app) newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search BOOK.xlsx --target VALUE [--target VALUE...]",
		Short: "Find cells equal or similar to target values",
		Long: `Search scans the sheets of a workbook for the targets.

Without --kind each target's kind is inferred (number, date, datetime,
time, then text). All targets must share one kind; dates and datetimes
may be mixed. Numbers match at the precision of the literal, so 3.1
matches 3.14. Text targets also report cells whose similarity ratio
reaches --threshold when --all is given.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runSearch,
	}

	f := cmd.Flags()
	f.StringArrayP("target", "t", nil, "Value to search for (repeatable)")
	f.String("kind", "", "Target kind: string, number, date, datetime, time (default: inferred)")
	f.StringSlice("sheet", nil, "Sheets to search (default: all)")
	f.Float64("threshold", similarity.DefaultThreshold, "Minimum similarity ratio for text targets")
	f.Bool("first-hit", true, "Stop at the first exact hit")
	f.Bool("all", false, "Return equal and similar hits (implies --first-hit=false unless set)")
	f.Int("concurrency", 0, "Sheets scanned at once (default: GOMAXPROCS)")

	return cmd
}

func (a *app) runSearch(cmd *cobra.Command, args []string) error {
	targets, err := parseTargets(a.v.GetStringSlice("target"), a.v.GetString("kind"))
	if err != nil {
		return err
	}

	firstHit := a.v.GetBool("first-hit")
	allValues := a.v.GetBool("all")
	if allValues && !a.v.IsSet("first-hit") {
		firstHit = false
	}

	opts := exutil.DefaultOptions()
	opts.Sheets = a.v.GetStringSlice("sheet")
	opts.Threshold = a.v.GetFloat64("threshold")
	opts.FirstHit = &firstHit
	opts.AllValues = allValues
	opts.Concurrency = a.v.GetInt("concurrency")
	opts.Logger = a.logger

	wb, err := exutil.Open(args[0])
	if err != nil {
		return err
	}
	defer wb.Close()

	report, err := wb.Search(cmd.Context(), targets, opts)
	if err != nil {
		return fmt.Errorf("search %s: %w", wb.Name(), err)
	}
	return a.write(cmd, report)
}

// parseTargets reads the target literals as kind, or infers each kind when
// kind is empty.
func parseTargets(literals []string, kind string) ([]models.Value, error) {
	if len(literals) == 0 {
		return nil, fmt.Errorf("%w: use --target", exutil.ErrNoTargets)
	}

	targets := make([]models.Value, 0, len(literals))
	if kind == "" {
		for _, s := range literals {
			targets = append(targets, models.Infer(s))
		}
		return targets, nil
	}

	k, err := models.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	for _, s := range literals {
		v, err := models.Parse(k, s)
		if err != nil {
			return nil, err
		}
		targets = append(targets, v)
	}
	return targets, nil
}
