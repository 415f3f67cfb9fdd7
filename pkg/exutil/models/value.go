package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidLiteral indicates a literal could not be parsed as the requested kind.
var ErrInvalidLiteral = errors.New("invalid value literal")

// Kind identifies the type of a cell value.
type Kind int

const (
	// KindEmpty is an absent cell value.
	KindEmpty Kind = iota
	// KindString is a text value.
	KindString
	// KindNumber is an integer or floating-point value.
	KindNumber
	// KindBool is a boolean value.
	KindBool
	// KindDate is a calendar date without a clock time.
	KindDate
	// KindDateTime is a calendar date with a clock time.
	KindDateTime
	// KindTime is a time of day without a date.
	KindTime
)

var kindNames = map[Kind]string{
	KindEmpty:    "empty",
	KindString:   "string",
	KindNumber:   "number",
	KindBool:     "bool",
	KindDate:     "date",
	KindDateTime: "datetime",
	KindTime:     "time",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind returns the Kind named by s (e.g. "number", "datetime").
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}
	return KindEmpty, fmt.Errorf("unknown value kind %q", s)
}

// Family groups kinds that compare against the same cells.
// Dates and datetimes share a family.
func (k Kind) Family() Kind {
	if k == KindDateTime {
		return KindDate
	}
	return k
}

// Layouts used to render temporal values.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05"
	TimeLayout     = "15:04:05"
)

// Value is a single typed cell value.
// Only the field matching Kind is meaningful.
type Value struct {
	Kind Kind
	// Text holds KindString values.
	Text string
	// Number holds KindNumber values.
	Number float64
	// Literal is the decimal literal a KindNumber value was written as,
	// when known. It preserves explicit trailing zeros ("1.230").
	Literal string
	// Bool holds KindBool values.
	Bool bool
	// Time holds KindDate, KindDateTime and KindTime values. Dates are
	// midnight UTC; times of day sit on the zero date.
	Time time.Time
}

// Empty returns an absent value.
func Empty() Value { return Value{} }

// String returns a text value.
func String(s string) Value { return Value{Kind: KindString, Text: s} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{Kind: KindNumber, Number: f} }

// Int returns a numeric value for an integer.
func Int(i int64) Value {
	return Value{Kind: KindNumber, Number: float64(i), Literal: strconv.FormatInt(i, 10)}
}

// NumberLiteral parses a decimal literal and keeps it for precision-aware comparison.
func NumberLiteral(s string) (Value, error) {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return Value{}, fmt.Errorf("%w: number %q", ErrInvalidLiteral, s)
	}
	return Value{Kind: KindNumber, Number: f, Literal: s}, nil
}

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Date returns a calendar date value.
func Date(year int, month time.Month, day int) Value {
	return Value{Kind: KindDate, Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date of t.
func DateOf(t time.Time) Value {
	return Date(t.Year(), t.Month(), t.Day())
}

// DateTime returns a date and time value.
func DateTime(t time.Time) Value { return Value{Kind: KindDateTime, Time: t} }

// TimeOfDay returns a time of day value.
func TimeOfDay(hour, min, sec, nsec int) Value {
	return Value{Kind: KindTime, Time: time.Date(0, 1, 1, hour, min, sec, nsec, time.UTC)}
}

// TimeOf returns the clock time of t.
func TimeOf(t time.Time) Value {
	return TimeOfDay(t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
}

// IsEmpty reports whether the value is absent.
func (v Value) IsEmpty() bool { return v.Kind == KindEmpty }

// String returns the canonical string form of the value.
func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return v.Text
	case KindNumber:
		if v.Literal != "" {
			return v.Literal
		}
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case KindBool:
		if v.Bool {
			return "TRUE"
		}
		return "FALSE"
	case KindDate:
		return v.Time.Format(DateLayout)
	case KindDateTime:
		return v.Time.Format(DateTimeLayout)
	case KindTime:
		return v.Time.Format(TimeLayout)
	}
	return ""
}

// Interface returns the value as a plain Go value (nil, string, float64,
// bool or time.Time).
func (v Value) Interface() interface{} {
	switch v.Kind {
	case KindString:
		return v.Text
	case KindNumber:
		return v.Number
	case KindBool:
		return v.Bool
	case KindDate, KindDateTime, KindTime:
		return v.Time
	}
	return nil
}

// MarshalJSON renders numbers and booleans natively, temporal values as
// strings and empty values as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindEmpty:
		return []byte("null"), nil
	case KindNumber:
		return json.Marshal(v.Number)
	case KindBool:
		return json.Marshal(v.Bool)
	}
	return json.Marshal(v.String())
}

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	DateTimeLayout,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

var timeLayouts = []string{
	"15:04:05.999999999",
	"15:04",
}

// Parse reads a literal as a value of the given kind.
func Parse(kind Kind, s string) (Value, error) {
	switch kind {
	case KindString:
		return String(s), nil
	case KindNumber:
		return NumberLiteral(s)
	case KindBool:
		b, err := strconv.ParseBool(strings.TrimSpace(s))
		if err != nil {
			return Value{}, fmt.Errorf("%w: bool %q", ErrInvalidLiteral, s)
		}
		return Bool(b), nil
	case KindDate:
		t, err := time.Parse(DateLayout, strings.TrimSpace(s))
		if err != nil {
			return Value{}, fmt.Errorf("%w: date %q", ErrInvalidLiteral, s)
		}
		return DateOf(t), nil
	case KindDateTime:
		for _, layout := range dateTimeLayouts {
			if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
				return DateTime(t), nil
			}
		}
		return Value{}, fmt.Errorf("%w: datetime %q", ErrInvalidLiteral, s)
	case KindTime:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
				return TimeOf(t), nil
			}
		}
		return Value{}, fmt.Errorf("%w: time %q", ErrInvalidLiteral, s)
	}
	return Value{}, fmt.Errorf("%w: cannot parse %s literals", ErrInvalidLiteral, kind)
}

// Infer guesses the kind of a literal: numbers first, then dates, datetimes
// and times of day, falling back to text.
func Infer(s string) Value {
	for _, kind := range []Kind{KindNumber, KindDate, KindDateTime, KindTime} {
		if v, err := Parse(kind, s); err == nil {
			return v
		}
	}
	return String(s)
}
