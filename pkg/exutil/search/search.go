// Package search scans a grid for cells equal or similar to a set of
// target values.
//
// Targets must share one value kind (dates and datetimes may be mixed).
// Text targets are compared with text cells by exact equality and by
// similarity ratio. Numeric targets are compared with numeric cells after
// rounding both to the decimal places the target literal expresses, so
// "3.14" matches 3.141 but not 3.1. Date, datetime and time targets are
// compared by exact equality. For non-text targets every comparable cell
// that is not equal lands in the similar bucket.
package search

import (
	"context"
	"time"

	"github.com/ukaji3/exutil-go/pkg/exutil/grid"
	"github.com/ukaji3/exutil-go/pkg/exutil/models"
	"golang.org/x/sync/errgroup"
)

// cancelCheckInterval is how many cells are scanned between context checks.
const cancelCheckInterval = 4096

// Search scans g for every target in order.
//
// In first-hit mode the first exact hit ends the scan and is returned as a
// models.ResultFirstHit. Otherwise, or when no exact hit exists, the equal
// bucket is returned as a models.ResultBucketed (followed by the similar
// bucket when AllValues is set), or models.ResultEmpty when there is
// nothing to return.
//
// The target set is validated before the grid is read.
func Search(g grid.Grid, targets []models.Value, opts ...Option) (models.Result, error) {
	o := buildOptions(opts)
	matchers, err := compile(targets, o)
	if err != nil {
		return models.Result{}, err
	}
	return scan(context.Background(), g, matchers, o, targets[0].Kind)
}

func scan(ctx context.Context, g grid.Grid, matchers []matcher, o Options, kind models.Kind) (models.Result, error) {
	begin := time.Now()
	var equal, similar []models.Hit
	cells := 0

	for _, m := range matchers {
		for cell := range g.All() {
			cells++
			if cells%cancelCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					return models.Result{}, err
				}
			}
			if !m.accepts(cell.Value) {
				continue
			}

			isEqual := m.equal(cell.Value)
			if isEqual {
				hit := models.NewHit(cell)
				if o.FirstHit {
					o.Logger.Debug("search",
						"kind", kind.String(),
						"targets", len(matchers),
						"cells", cells,
						"first_hit", hit.Ref,
						"duration", time.Since(begin),
					)
					return models.Result{Kind: models.ResultFirstHit, First: &hit}, nil
				}
				equal = append(equal, hit)
			}
			// The similar bucket is only returned with AllValues.
			if o.AllValues && m.similar(cell.Value, isEqual) {
				similar = append(similar, models.NewHit(cell))
			}
		}
	}

	o.Logger.Debug("search",
		"kind", kind.String(),
		"targets", len(matchers),
		"cells", cells,
		"equal", len(equal),
		"similar", len(similar),
		"duration", time.Since(begin),
	)
	return shape(equal, similar, o), nil
}

func shape(equal, similar []models.Hit, o Options) models.Result {
	if o.AllValues && len(equal)+len(similar) > 0 {
		return models.Result{Kind: models.ResultBucketed, Equal: equal, Similar: similar}
	}
	if len(equal) > 0 {
		return models.Result{Kind: models.ResultBucketed, Equal: equal}
	}
	return models.Result{Kind: models.ResultEmpty}
}

// Sheet is a named grid, one sheet of a workbook.
type Sheet struct {
	Name string
	Grid grid.Grid
}

// SearchSheets runs Search over several sheets concurrently and merges the
// results in sheet order. In first-hit mode the hit from the earliest sheet
// that has one wins. Otherwise equal buckets are concatenated in sheet
// order, then similar buckets. Hits carry their sheet name.
func SearchSheets(ctx context.Context, sheets []Sheet, targets []models.Value, opts ...Option) (models.Result, error) {
	o := buildOptions(opts)
	matchers, err := compile(targets, o)
	if err != nil {
		return models.Result{}, err
	}

	results := make([]models.Result, len(sheets))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Concurrency)
	for i, sheet := range sheets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := scan(ctx, sheet.Grid, matchers, o, targets[0].Kind)
			if err != nil {
				return &SheetError{SheetName: sheet.Name, Err: err}
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.Result{}, err
	}

	return merge(sheets, results, o), nil
}

func merge(sheets []Sheet, results []models.Result, o Options) models.Result {
	for i, res := range results {
		if res.Kind == models.ResultFirstHit {
			hit := *res.First
			hit.SheetName = sheets[i].Name
			return models.Result{Kind: models.ResultFirstHit, First: &hit}
		}
	}

	var equal, similar []models.Hit
	for i, res := range results {
		equal = appendSheet(equal, res.Equal, sheets[i].Name)
		similar = appendSheet(similar, res.Similar, sheets[i].Name)
	}
	return shape(equal, similar, o)
}

func appendSheet(dst, hits []models.Hit, sheetName string) []models.Hit {
	for _, h := range hits {
		h.SheetName = sheetName
		dst = append(dst, h)
	}
	return dst
}
