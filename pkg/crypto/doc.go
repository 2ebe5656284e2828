// Package crypto provides multi-scalar multiplication helpers built on
// gnark-crypto's BLS12-381 implementation.
//
// This package is used internally by the gs package but can also be used
// directly by callers that need raw MSM access, e.g. to batch several
// equations' worth of commitment columns before pairing.
//
// Example usage:
//
//	result, err := crypto.MultiScalarMulG1(points, scalars)
package crypto
