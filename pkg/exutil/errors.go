package exutil

import (
	"errors"
	"fmt"

	"github.com/ukaji3/exutil-go/pkg/exutil/coord"
	"github.com/ukaji3/exutil-go/pkg/exutil/files"
	"github.com/ukaji3/exutil-go/pkg/exutil/models"
	"github.com/ukaji3/exutil-go/pkg/exutil/search"
	"github.com/ukaji3/exutil-go/pkg/exutil/sigfig"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the workbook has no sheet of the given name.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrNameNotFound indicates the workbook has no defined range of the given name.
var ErrNameNotFound = errors.New("defined name not found")

// Errors raised by the subpackages, re-exported for errors.Is checks.
var (
	ErrInvalidCoordinate    = coord.ErrInvalidCoordinate
	ErrTypeMismatch         = models.ErrTypeMismatch
	ErrUnsupportedValueKind = models.ErrUnsupportedValueKind
	ErrParseFailure         = sigfig.ErrParseFailure
	ErrNoTargets            = search.ErrNoTargets
	ErrInvalidThreshold     = search.ErrInvalidThreshold
	ErrBadPattern           = files.ErrBadPattern
)

// ExtractionError represents an error while reading a sheet.
type ExtractionError struct {
	SheetName string
	Component string // "cells", "range", "search"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
