package core

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/groth-sahai/gs-ppe/gs"
)

// Type aliases onto gs's exported types, so callers can depend on core
// alone for the common workflow without a second import of gs.
type (
	CRS             = gs.CRS
	Matrix          = gs.Matrix
	VariableG1      = gs.VariableG1
	VariableG2      = gs.VariableG2
	ComG1           = gs.ComG1
	ComG2           = gs.ComG2
	Equation        = gs.Equation
	Proof           = gs.Proof
	ProofSystem     = gs.ProofSystem
	AY              = gs.AY
	XB              = gs.XB
	ExtractionKey   = gs.ExtractionKey
	CommitmentKeyG1 = gs.CommitmentKeyG1
	CommitmentKeyG2 = gs.CommitmentKeyG2
)

// CRSMode selects which of the three Groth-Sahai commitment-key setups
// SetupCRS builds.
type CRSMode int

const (
	// ModeBinding produces a perfectly binding CRS; commitments can be
	// opened to exactly one value.
	ModeBinding CRSMode = iota
	// ModeExtraction produces a binding CRS and also returns the
	// extraction trapdoor.
	ModeExtraction
	// ModeWI produces a perfectly hiding, witness-indistinguishable CRS.
	ModeWI
)

// G1 and G2 are the concrete curve point types gs-ppe's equations are
// built from, re-exported so callers never need to import gnark-crypto's
// bls12381 package directly for simple usage.
type (
	G1 = bls12381.G1Affine
	G2 = bls12381.G2Affine
)
