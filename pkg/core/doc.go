// Package core provides a simplified entry point to gs-ppe's Groth-Sahai
// proof system, for callers that would rather not import gs directly.
//
// It includes CRS setup, proof-system construction, verification, proof
// re-randomization, and homomorphic composition. This package is the main
// entry point for applications using the gs-ppe library.
//
// Basic usage:
//
//	// Set up a binding CRS with freshly sampled generators.
//	crs, _, err := core.SetupCRS(core.ModeBinding, nil)
//
//	// Build a proof system for a single pairing product equation.
//	ps, err := core.BuildProofSystem(nil, crs, ay, xb, gamma)
//
//	// Verify it.
//	ok, err := core.Verify(ps, crs)
//
// The core package leverages gs internally but presents a narrower surface
// for the common setup/prove/verify/randomize/compose workflow.
package core
