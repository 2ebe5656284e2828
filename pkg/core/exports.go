package core

import "github.com/groth-sahai/gs-ppe/internal/common"

// Sentinel errors re-exported from the gs-ppe library's internal error
// taxonomy, so callers of core never need to import internal/common
// themselves.
var (
	// ErrDimensionMismatch is returned when a caller-supplied matrix,
	// witness slice, or commitment slice does not match the dimensions an
	// equation requires.
	ErrDimensionMismatch = common.ErrDimensionMismatch

	// ErrInvalidParameter is returned for nil or out-of-range arguments
	// that are not dimension related.
	ErrInvalidParameter = common.ErrInvalidParameter

	// ErrEmptyInput is returned when an operation that requires at least
	// one element is given a zero-length slice where that is not a valid
	// edge case.
	ErrEmptyInput = common.ErrEmptyInput
)
