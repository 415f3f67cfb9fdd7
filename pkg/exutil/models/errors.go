package models

import "errors"

// ErrTypeMismatch indicates an argument of the wrong type or a target set
// mixing value kinds.
var ErrTypeMismatch = errors.New("type mismatch")

// ErrUnsupportedValueKind indicates a value kind that cannot be searched for.
var ErrUnsupportedValueKind = errors.New("unsupported value kind")
