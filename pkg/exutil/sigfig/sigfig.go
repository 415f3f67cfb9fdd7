// Package sigfig counts significant digits in decimal literals and derives
// the rounding precision a literal expresses.
package sigfig

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrParseFailure indicates the input is not a finite decimal number.
var ErrParseFailure = errors.New("not a numeric string")

// literal is a decimal literal split into its parts.
type literal struct {
	// digits are the mantissa digits without sign, point and leading zeros.
	digits string
	// frac is the number of mantissa digits written after the point.
	frac int
	// exp is the exponent written after e/E.
	exp int
}

func parse(s string) (literal, error) {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || strings.ContainsAny(s, "xXpP_") {
		return literal{}, fmt.Errorf("%w: %q", ErrParseFailure, s)
	}

	s = strings.TrimLeft(s, "+-")
	var lit literal
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		if lit.exp, err = strconv.Atoi(s[i+1:]); err != nil {
			return literal{}, fmt.Errorf("%w: exponent of %q", ErrParseFailure, s)
		}
		s = s[:i]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	lit.frac = len(fracPart)
	lit.digits = strings.TrimLeft(intPart+fracPart, "0")
	return lit, nil
}

// Count returns the number of significant digits in a decimal literal.
// Leading zeros and the sign are not significant; explicitly written
// trailing zeros are ("1.230" has 4, "100" has 3). Zero has one.
func Count(s string) (int, error) {
	lit, err := parse(s)
	if err != nil {
		return 0, err
	}
	if lit.digits == "" {
		return 1, nil
	}
	return len(lit.digits), nil
}

// CountFloat counts the significant digits of the shortest decimal form of f.
func CountFloat(f float64) (int, error) {
	return Count(Format(f))
}

// Decimals returns the number of decimal places a literal expresses:
// "3.14" gives 2, "100" gives 0, "1.2e5" gives -4 (rounding to 10^4).
func Decimals(s string) (int, error) {
	lit, err := parse(s)
	if err != nil {
		return 0, err
	}
	return lit.frac - lit.exp, nil
}

// Format returns the shortest decimal literal for f without an exponent.
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Round rounds x half-to-even at the given number of decimal places.
// Negative places round to tens, hundreds and so on.
func Round(x float64, places int) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) || places > 308 || places < -308 {
		return x
	}
	if places < 0 {
		p := math.Pow(10, float64(-places))
		return math.RoundToEven(x/p) * p
	}
	p := math.Pow(10, float64(places))
	if math.IsInf(x*p, 0) {
		return x
	}
	return math.RoundToEven(x*p) / p
}
