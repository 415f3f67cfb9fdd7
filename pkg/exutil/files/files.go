// Package files filters file paths with Unix shell-style wildcard patterns.
//
// Patterns use the shell wildcard tokens:
//
//	"*"       any sequence of characters, path separators included
//	"?"       any single character
//	"[seq]"   any character in seq, ranges such as a-z allowed
//	"[!seq]"  any character not in seq
//
// Every other character matches itself. Matching is case-sensitive.
package files

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

// ErrBadPattern indicates a malformed wildcard pattern.
var ErrBadPattern = errors.New("bad file pattern")

// Filter walks root recursively and returns the files whose base name
// matches pattern, or does not match it when match is false. The result is
// sorted.
func Filter(root, pattern string, match bool) ([]string, error) {
	re, err := Compile(pattern)
	if err != nil {
		return nil, err
	}

	var results []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if re.MatchString(d.Name()) == match {
			results = append(results, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	slices.Sort(results)
	return results, nil
}

// FilterPaths returns the paths that match pattern, or do not match it when
// match is false, sorted. Each path is matched as a whole, so "*.xlsx"
// keeps "data/q1.xlsx".
func FilterPaths(paths []string, pattern string, match bool) ([]string, error) {
	re, err := Compile(pattern)
	if err != nil {
		return nil, err
	}

	var results []string
	for _, p := range paths {
		if re.MatchString(p) == match {
			results = append(results, p)
		}
	}

	slices.Sort(results)
	return results, nil
}

// Compile translates a wildcard pattern into an anchored regular expression.
// An unclosed "[" or an inverted range such as "[z-a]" fails with
// ErrBadPattern.
func Compile(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString(`^(?s:`)

	rs := []rune(pattern)
	for i := 0; i < len(rs); i++ {
		switch c := rs[i]; c {
		case '*':
			// Runs of stars are one star.
			for i+1 < len(rs) && rs[i+1] == '*' {
				i++
			}
			b.WriteString(`.*`)
		case '?':
			b.WriteString(`.`)
		case '[':
			end := classEnd(rs, i)
			if end < 0 {
				return nil, fmt.Errorf("%w: %q: unclosed [", ErrBadPattern, pattern)
			}
			writeClass(&b, rs[i+1:end])
			i = end
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	b.WriteString(`)$`)
	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrBadPattern, pattern, err)
	}
	return re, nil
}

// classEnd returns the index of the "]" closing the class opened at start,
// or -1. A "]" right after "[" or "[!" is a member, not the end.
func classEnd(rs []rune, start int) int {
	j := start + 1
	if j < len(rs) && rs[j] == '!' {
		j++
	}
	if j < len(rs) && rs[j] == ']' {
		j++
	}
	for ; j < len(rs); j++ {
		if rs[j] == ']' {
			return j
		}
	}
	return -1
}

func writeClass(b *strings.Builder, body []rune) {
	b.WriteByte('[')
	if len(body) > 0 && body[0] == '!' {
		b.WriteByte('^')
		body = body[1:]
	}
	for _, r := range body {
		switch r {
		case '\\', '[', ']', '^':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte(']')
}
