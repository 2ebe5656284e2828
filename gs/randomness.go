package gs

import (
	"io"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/groth-sahai/gs-ppe/pkg/utils"
)

// RandomnessG1 is the pair of field elements (r1, r2) used to commit a G1
// variable. It is tagged by source group only through its type name (not a
// generic parameter, see DESIGN.md) so that G1 randomness can never be
// passed where G2 randomness is expected.
type RandomnessG1 struct {
	R1, R2 fr.Element
}

// RandomnessG2 is the G2 counterpart of RandomnessG1.
type RandomnessG2 struct {
	R1, R2 fr.Element
}

// ZeroRandomnessG1 returns the additive identity, used for deterministic
// (unblinded) commitments.
func ZeroRandomnessG1() RandomnessG1 { return RandomnessG1{} }

// ZeroRandomnessG2 returns the additive identity.
func ZeroRandomnessG2() RandomnessG2 { return RandomnessG2{} }

// RandRandomnessG1 samples (r1, r2) uniformly from the scalar field, drawn
// from rng (crypto/rand.Reader if rng is nil).
func RandRandomnessG1(rng io.Reader) (RandomnessG1, error) {
	r1, err := utils.RandomFieldElement(rng)
	if err != nil {
		return RandomnessG1{}, err
	}
	r2, err := utils.RandomFieldElement(rng)
	if err != nil {
		return RandomnessG1{}, err
	}
	return RandomnessG1{R1: r1, R2: r2}, nil
}

// RandRandomnessG2 samples (r1, r2) uniformly from the scalar field, drawn
// from rng (crypto/rand.Reader if rng is nil).
func RandRandomnessG2(rng io.Reader) (RandomnessG2, error) {
	r1, err := utils.RandomFieldElement(rng)
	if err != nil {
		return RandomnessG2{}, err
	}
	r2, err := utils.RandomFieldElement(rng)
	if err != nil {
		return RandomnessG2{}, err
	}
	return RandomnessG2{R1: r1, R2: r2}, nil
}

// Add returns the componentwise sum.
func (r RandomnessG1) Add(other RandomnessG1) RandomnessG1 {
	var out RandomnessG1
	out.R1.Add(&r.R1, &other.R1)
	out.R2.Add(&r.R2, &other.R2)
	return out
}

// Neg returns the componentwise negation.
func (r RandomnessG1) Neg() RandomnessG1 {
	var out RandomnessG1
	out.R1.Neg(&r.R1)
	out.R2.Neg(&r.R2)
	return out
}

// Add returns the componentwise sum.
func (r RandomnessG2) Add(other RandomnessG2) RandomnessG2 {
	var out RandomnessG2
	out.R1.Add(&r.R1, &other.R1)
	out.R2.Add(&r.R2, &other.R2)
	return out
}

// Neg returns the componentwise negation.
func (r RandomnessG2) Neg() RandomnessG2 {
	var out RandomnessG2
	out.R1.Neg(&r.R1)
	out.R2.Neg(&r.R2)
	return out
}
