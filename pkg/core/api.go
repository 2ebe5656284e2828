package core

import (
	"fmt"
	"io"

	"github.com/groth-sahai/gs-ppe/gs"
)

// SetupCRS builds a Common Reference String under the requested mode, with
// freshly sampled generators drawn from rng (crypto/rand.Reader if rng is
// nil). The returned ExtractionKey is the zero value unless mode is
// ModeExtraction.
func SetupCRS(mode CRSMode, rng io.Reader) (CRS, ExtractionKey, error) {
	switch mode {
	case ModeBinding:
		crs, err := gs.SetupBindingRand(rng)
		return crs, ExtractionKey{}, err
	case ModeExtraction:
		return gs.SetupExRand(rng)
	case ModeWI:
		crs, err := gs.SetupWIRand(rng)
		return crs, ExtractionKey{}, err
	default:
		return CRS{}, ExtractionKey{}, fmt.Errorf("core: %w: unknown CRS mode %d", ErrInvalidParameter, mode)
	}
}

// NewWitnessG1 samples commitment randomness for a G1 witness value, drawn
// from rng (crypto/rand.Reader if rng is nil).
func NewWitnessG1(rng io.Reader, value G1) (VariableG1, error) {
	return gs.NewVariableG1(rng, value)
}

// NewWitnessG2 samples commitment randomness for a G2 witness value, drawn
// from rng (crypto/rand.Reader if rng is nil).
func NewWitnessG2(rng io.Reader, value G2) (VariableG2, error) {
	return gs.NewVariableG2(rng, value)
}

// BuildProofSystem constructs a ProofSystem for the pairing product
// equation described by ay, xb, and gamma: it derives the equation's
// target, commits every witness under crs, and proves the equation holds.
// rng drives every sampling step (crypto/rand.Reader if nil).
func BuildProofSystem(rng io.Reader, crs CRS, ay []AY, xb []XB, gamma Matrix) (ProofSystem, error) {
	return gs.Setup(rng, crs, ay, xb, gamma)
}

// Verify checks that ps's proof witnesses its equation under crs.
func Verify(ps ProofSystem, crs CRS) (bool, error) {
	return ps.Verify(crs)
}

// Randomize re-randomizes every commitment in ps and the proof that binds
// them, mutating ps in place. The result verifies under the same CRS but is
// statistically independent of the input.
func Randomize(rng io.Reader, ps *ProofSystem, crs CRS) error {
	return ps.Randomize(rng, crs)
}

// Compose combines two proof systems into the proof system for their
// conjunction: both equations must hold simultaneously.
func Compose(a, b ProofSystem) (ProofSystem, error) {
	return a.Add(b)
}

// Extract1 recovers the G1 witness value committed in c, using the
// trapdoor ek. It only returns a meaningful value for commitments made
// under a CRS built with ModeExtraction.
func Extract1(ek ExtractionKey, c ComG1) G1 {
	return ek.Extract1(c)
}

// Extract2 is the G2 counterpart of Extract1.
func Extract2(ek ExtractionKey, c ComG2) G2 {
	return ek.Extract2(c)
}

