package search

import (
	"errors"
	"fmt"

	"github.com/ukaji3/exutil-go/pkg/exutil/models"
)

// ErrNoTargets indicates an empty target set.
var ErrNoTargets = errors.New("no search targets")

// ErrInvalidThreshold indicates a similarity threshold outside [0, 1].
var ErrInvalidThreshold = errors.New("similarity threshold out of range")

// TargetError reports a search target that was rejected before scanning.
type TargetError struct {
	Index  int
	Target models.Value
	Err    error
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("search target %d (%s %q): %v", e.Index, e.Target.Kind, e.Target.String(), e.Err)
}

func (e *TargetError) Unwrap() error {
	return e.Err
}

// NewTargetError creates a new TargetError.
func NewTargetError(index int, target models.Value, err error) *TargetError {
	return &TargetError{
		Index:  index,
		Target: target,
		Err:    err,
	}
}

// SheetError reports a failure while searching one sheet of a workbook.
type SheetError struct {
	SheetName string
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("search error in sheet %q: %v", e.SheetName, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
