// Package apperr defines sentinel errors shared across service layers.
package apperr

import "errors"

// ErrNotFound reports that a requested document does not exist.
var ErrNotFound = errors.New("not found")
