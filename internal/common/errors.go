// Package common contains shared sentinel errors and small utilities used
// across the bankcli layers. Callers should match sentinels with errors.Is.
package common

import "errors"

var (
	// ErrValidation marks input rejected client-side, before any request
	// is dispatched. Wrap it with detail: fmt.Errorf("%w: ...", ErrValidation).
	ErrValidation = errors.New("validation error")

	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("not found")
)
