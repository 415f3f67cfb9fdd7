// Package similarity scores how alike two strings are using the
// longest-matching-blocks ratio of a difflib SequenceMatcher.
package similarity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/ukaji3/exutil-go/pkg/exutil/models"
)

// DefaultThreshold is the ratio at or above which two strings are similar.
const DefaultThreshold = 0.8

// Ratio returns 2*M/T where M is the number of runes in matching blocks and
// T the total number of runes in a and b. Identical strings score 1.
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(runes(a), runes(b)).Ratio()
}

// runes splits s into one element per rune so the matcher works on characters.
func runes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// IsSimilar reports whether the trimmed strings score at least threshold.
func IsSimilar(target, test string, threshold float64) bool {
	return Ratio(strings.TrimSpace(target), strings.TrimSpace(test)) >= threshold
}

// AnySimilar reports whether any candidate is similar to target.
func AnySimilar(target string, candidates []string, threshold float64) bool {
	target = strings.TrimSpace(target)
	for _, c := range candidates {
		if Ratio(target, strings.TrimSpace(c)) >= threshold {
			return true
		}
	}
	return false
}

// Scored returns every candidate similar to target together with its score,
// in the order given. Both slices are nil when nothing qualifies.
func Scored(target string, candidates []string, threshold float64) ([]string, []float64) {
	target = strings.TrimSpace(target)
	var matches []string
	var scores []float64
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if score := Ratio(target, c); score >= threshold {
			matches = append(matches, c)
			scores = append(scores, score)
		}
	}
	return matches, scores
}

// Best returns the highest scoring candidate that reaches threshold.
// Earlier candidates win ties.
func Best(target string, candidates []string, threshold float64) (string, float64, bool) {
	matches, scores := Scored(target, candidates, threshold)
	if len(matches) == 0 {
		return "", 0, false
	}
	best := 0
	for i := range scores {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return matches[best], scores[best], true
}

// Match is IsSimilar/AnySimilar over loosely typed arguments. target must
// have a string form; test may be a single string or number, or a slice of
// them.
func Match(target, test interface{}, threshold float64) (bool, error) {
	t, candidates, err := coerce(target, test)
	if err != nil {
		return false, err
	}
	return AnySimilar(t, candidates, threshold), nil
}

// MatchScored is Scored over loosely typed arguments, see Match.
func MatchScored(target, test interface{}, threshold float64) ([]string, []float64, error) {
	t, candidates, err := coerce(target, test)
	if err != nil {
		return nil, nil, err
	}
	matches, scores := Scored(t, candidates, threshold)
	return matches, scores, nil
}

func coerce(target, test interface{}) (string, []string, error) {
	t, ok := Text(target)
	if !ok {
		return "", nil, fmt.Errorf("%w: target must be convertible to string, got %T", models.ErrTypeMismatch, target)
	}

	if s, ok := Text(test); ok {
		return t, []string{s}, nil
	}

	var candidates []string
	switch v := test.(type) {
	case []string:
		candidates = v
	case []models.Value:
		for _, c := range v {
			candidates = append(candidates, c.String())
		}
	case []interface{}:
		for _, c := range v {
			s, ok := Text(c)
			if !ok {
				return "", nil, fmt.Errorf("%w: test element must be string or number, got %T", models.ErrTypeMismatch, c)
			}
			candidates = append(candidates, s)
		}
	case []float64:
		for _, c := range v {
			candidates = append(candidates, strconv.FormatFloat(c, 'f', -1, 64))
		}
	case []int:
		for _, c := range v {
			candidates = append(candidates, strconv.Itoa(c))
		}
	default:
		return "", nil, fmt.Errorf("%w: test value must be string, number, or a slice of them, got %T", models.ErrTypeMismatch, test)
	}
	return t, candidates, nil
}

// Text returns the canonical string form of a string, number or
// fmt.Stringer.
func Text(v interface{}) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case fmt.Stringer:
		return x.String(), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case uint:
		return strconv.FormatUint(uint64(x), 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true
	}
	return "", false
}
