package search

import (
	"fmt"
	"math"

	"github.com/ukaji3/exutil-go/pkg/exutil/models"
	"github.com/ukaji3/exutil-go/pkg/exutil/sigfig"
	"github.com/ukaji3/exutil-go/pkg/exutil/similarity"
)

// matcher classifies cells against one target.
type matcher interface {
	// accepts reports whether the cell kind is comparable with the target.
	accepts(v models.Value) bool
	// equal reports an exact (or tolerance-equal) hit.
	equal(v models.Value) bool
	// similar reports an approximate hit; isEqual is the result of equal.
	similar(v models.Value, isEqual bool) bool
}

// compile validates the target set and builds one matcher per target.
// It never touches the grid.
func compile(targets []models.Value, opts Options) ([]matcher, error) {
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}
	if math.IsNaN(opts.Threshold) || opts.Threshold < 0 || opts.Threshold > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidThreshold, opts.Threshold)
	}

	family := targets[0].Kind.Family()
	for i, t := range targets[1:] {
		if t.Kind.Family() != family {
			return nil, NewTargetError(i+1, t,
				fmt.Errorf("%w: expected %s, got %s", models.ErrTypeMismatch, targets[0].Kind, t.Kind))
		}
	}

	matchers := make([]matcher, 0, len(targets))
	for i, t := range targets {
		var m matcher
		switch family {
		case models.KindString:
			m = textMatcher{target: t.Text, threshold: opts.Threshold}
		case models.KindNumber:
			n, err := newNumberMatcher(t)
			if err != nil {
				return nil, NewTargetError(i, t, err)
			}
			m = n
		case models.KindDate:
			m = dateMatcher{target: t}
		case models.KindTime:
			m = timeMatcher{target: t}
		default:
			return nil, NewTargetError(i, t,
				fmt.Errorf("%w: %s (expected string, number, date, datetime or time)", models.ErrUnsupportedValueKind, t.Kind))
		}
		matchers = append(matchers, m)
	}
	return matchers, nil
}

// textMatcher compares text cells only; every other kind, dates included,
// is skipped.
type textMatcher struct {
	target    string
	threshold float64
}

func (m textMatcher) accepts(v models.Value) bool { return v.Kind == models.KindString }

func (m textMatcher) equal(v models.Value) bool { return v.Text == m.target }

func (m textMatcher) similar(v models.Value, _ bool) bool {
	return similarity.IsSimilar(m.target, v.Text, m.threshold)
}

// numberMatcher rounds both sides to the decimal places the target literal
// expresses before comparing.
type numberMatcher struct {
	places  int
	rounded float64
}

func newNumberMatcher(t models.Value) (numberMatcher, error) {
	lit := t.Literal
	if lit == "" {
		lit = sigfig.Format(t.Number)
	}
	places, err := sigfig.Decimals(lit)
	if err != nil {
		return numberMatcher{}, err
	}
	return numberMatcher{places: places, rounded: sigfig.Round(t.Number, places)}, nil
}

func (m numberMatcher) accepts(v models.Value) bool { return v.Kind == models.KindNumber }

func (m numberMatcher) equal(v models.Value) bool {
	return sigfig.Round(v.Number, m.places) == m.rounded
}

func (m numberMatcher) similar(_ models.Value, isEqual bool) bool { return !isEqual }

// dateMatcher compares date and datetime cells. A date never equals a
// datetime, even at midnight.
type dateMatcher struct {
	target models.Value
}

func (m dateMatcher) accepts(v models.Value) bool {
	return v.Kind == models.KindDate || v.Kind == models.KindDateTime
}

func (m dateMatcher) equal(v models.Value) bool {
	return v.Kind == m.target.Kind && v.Time.Equal(m.target.Time)
}

func (m dateMatcher) similar(_ models.Value, isEqual bool) bool { return !isEqual }

// timeMatcher compares time-of-day cells by clock time.
type timeMatcher struct {
	target models.Value
}

func (m timeMatcher) accepts(v models.Value) bool { return v.Kind == models.KindTime }

func (m timeMatcher) equal(v models.Value) bool {
	a, b := v.Time, m.target.Time
	return a.Hour() == b.Hour() && a.Minute() == b.Minute() &&
		a.Second() == b.Second() && a.Nanosecond() == b.Nanosecond()
}

func (m timeMatcher) similar(_ models.Value, isEqual bool) bool { return !isEqual }
