package gs

import bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

// ComG1 is a two-element commitment (c1, c2) in G1. It is hiding and either
// binding or witness-indistinguishable depending on how the CRS that
// produced it was set up; the commitment itself carries no indication of
// which.
type ComG1 struct {
	C1, C2 bls12381.G1Affine
}

// ComG2 is the G2 counterpart of ComG1.
type ComG2 struct {
	C1, C2 bls12381.G2Affine
}
