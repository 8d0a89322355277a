package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNoActiveRow indicates a quick-add was attempted with no row selected.
var ErrNoActiveRow = errors.New("no active row selected")

// ErrEmptySheet indicates an export was requested for a sheet with no rows.
var ErrEmptySheet = errors.New("tally sheet is empty")
