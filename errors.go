// errors.go: structured error handling for minsketch operations
//
// This file provides structured error types using the go-errors library,
// enabling rich error context, categorization, and standardized error codes
// for all sketch operations.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package minsketch

import (
	goerrors "errors"

	"github.com/agilira/go-errors"
)

// Error codes for minsketch operations.
const (
	// Sizing/configuration errors
	ErrCodeInvalidDelta       errors.ErrorCode = "MINSKETCH_INVALID_DELTA"
	ErrCodeInvalidEpsilon     errors.ErrorCode = "MINSKETCH_INVALID_EPSILON"
	ErrCodeInvalidCounterBits errors.ErrorCode = "MINSKETCH_INVALID_COUNTER_BITS"
	ErrCodeSizingError        errors.ErrorCode = "MINSKETCH_SIZING_ERROR"

	// Operation errors
	ErrCodeOverflow          errors.ErrorCode = "MINSKETCH_OVERFLOW"
	ErrCodeInvalidArgument   errors.ErrorCode = "MINSKETCH_INVALID_ARGUMENT"
	ErrCodeDimensionMismatch errors.ErrorCode = "MINSKETCH_DIMENSION_MISMATCH"
)

// Common error messages.
const (
	msgInvalidDelta       = "invalid delta: must be in (0, 1]"
	msgInvalidEpsilon     = "invalid epsilon: must be in (0, 1]"
	msgInvalidCounterBits = "invalid counter width: must be one of 8, 16, 32, 64"
	msgSizingError        = "double-hashing strategy requires a prime width"
	msgOverflow           = "counter write would overflow the configured bit width"
	msgInvalidArgument    = "conservative update does not support negative counts"
	msgDimensionMismatch  = "sketches must share depth and width to combine"
)

// =============================================================================
// SIZING / CONFIGURATION ERRORS
// =============================================================================

// NewErrInvalidDelta creates an error for an out-of-range delta parameter.
func NewErrInvalidDelta(delta float64) error {
	return errors.NewWithContext(ErrCodeInvalidDelta, msgInvalidDelta, map[string]interface{}{
		"provided_delta": delta,
		"valid_range":    "0 < delta <= 1",
	})
}

// NewErrInvalidEpsilon creates an error for an out-of-range epsilon parameter.
func NewErrInvalidEpsilon(epsilon float64) error {
	return errors.NewWithContext(ErrCodeInvalidEpsilon, msgInvalidEpsilon, map[string]interface{}{
		"provided_epsilon": epsilon,
		"valid_range":      "0 < epsilon <= 1",
	})
}

// NewErrInvalidCounterBits creates an error for an unsupported counter width.
func NewErrInvalidCounterBits(bits int) error {
	return errors.NewWithContext(ErrCodeInvalidCounterBits, msgInvalidCounterBits, map[string]interface{}{
		"provided_bits": bits,
		"valid_values":  []int{8, 16, 32, 64},
	})
}

// NewErrSizingError creates an error for a double-hashing width that is not prime.
func NewErrSizingError(width uint64) error {
	return errors.NewWithField(ErrCodeSizingError, msgSizingError, "width", width)
}

// =============================================================================
// OPERATION ERRORS
// =============================================================================

// NewErrOverflow creates an error when a counter write would exceed its bit width.
func NewErrOverflow(row, col int, value, limit uint64) error {
	return errors.NewWithContext(ErrCodeOverflow, msgOverflow, map[string]interface{}{
		"row":   row,
		"col":   col,
		"value": value,
		"limit": limit,
	})
}

// NewErrInvalidArgument creates an error when conservative update receives a negative delta.
func NewErrInvalidArgument(delta int64) error {
	return errors.NewWithField(ErrCodeInvalidArgument, msgInvalidArgument, "delta", delta)
}

// NewErrDimensionMismatch creates an error when two sketches with different
// shapes are combined (inner product, merge).
func NewErrDimensionMismatch(depthA, widthA, depthB, widthB int) error {
	return errors.NewWithContext(ErrCodeDimensionMismatch, msgDimensionMismatch, map[string]interface{}{
		"depth_a": depthA,
		"width_a": widthA,
		"depth_b": depthB,
		"width_b": widthB,
	})
}

// =============================================================================
// ERROR CHECKING HELPERS
// =============================================================================

// IsOverflow reports whether err is a counter-overflow error.
func IsOverflow(err error) bool {
	return errors.HasCode(err, ErrCodeOverflow)
}

// IsInvalidArgument reports whether err is an invalid-argument error.
func IsInvalidArgument(err error) bool {
	return errors.HasCode(err, ErrCodeInvalidArgument)
}

// IsSizingError reports whether err is a sizing error.
func IsSizingError(err error) bool {
	return errors.HasCode(err, ErrCodeSizingError)
}

// IsDimensionMismatch reports whether err is a shape-mismatch error.
func IsDimensionMismatch(err error) bool {
	return errors.HasCode(err, ErrCodeDimensionMismatch)
}

// IsConfigError reports whether err is a configuration/sizing error.
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		code := coder.ErrorCode()
		return code == ErrCodeInvalidDelta || code == ErrCodeInvalidEpsilon ||
			code == ErrCodeInvalidCounterBits || code == ErrCodeSizingError
	}
	return false
}

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}

// GetErrorContext extracts context from an error.
func GetErrorContext(err error) map[string]interface{} {
	if err == nil {
		return nil
	}
	var msErr *errors.Error
	if goerrors.As(err, &msErr) {
		return msErr.Context
	}
	return nil
}
