package gs

import (
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// VariableG1 bundles a secret G1 witness element with the commitment
// randomness that will hide it. It is immutable after construction; the
// prover copies it into its own input, it never mutates the caller's copy.
type VariableG1 struct {
	Value bls12381.G1Affine
	Rand  RandomnessG1
}

// VariableG2 is the G2 counterpart of VariableG1.
type VariableG2 struct {
	Value bls12381.G2Affine
	Rand  RandomnessG2
}

// NewVariableG1 samples fresh commitment randomness for value, drawn from
// rng (crypto/rand.Reader if rng is nil).
func NewVariableG1(rng io.Reader, value bls12381.G1Affine) (VariableG1, error) {
	r, err := RandRandomnessG1(rng)
	if err != nil {
		return VariableG1{}, err
	}
	return VariableG1{Value: value, Rand: r}, nil
}

// NewVariableG1WithRandomness builds a variable from caller-supplied
// randomness, e.g. randomness recovered from RdProof bookkeeping.
func NewVariableG1WithRandomness(value bls12381.G1Affine, r RandomnessG1) VariableG1 {
	return VariableG1{Value: value, Rand: r}
}

// NewVariableG1WithZeroRandomness is a convenience constructor for
// deterministic (unblinded) commitments, useful in tests.
func NewVariableG1WithZeroRandomness(value bls12381.G1Affine) VariableG1 {
	return VariableG1{Value: value, Rand: ZeroRandomnessG1()}
}

// NewVariableG2 samples fresh commitment randomness for value, drawn from
// rng (crypto/rand.Reader if rng is nil).
func NewVariableG2(rng io.Reader, value bls12381.G2Affine) (VariableG2, error) {
	r, err := RandRandomnessG2(rng)
	if err != nil {
		return VariableG2{}, err
	}
	return VariableG2{Value: value, Rand: r}, nil
}

// NewVariableG2WithRandomness builds a variable from caller-supplied
// randomness.
func NewVariableG2WithRandomness(value bls12381.G2Affine, r RandomnessG2) VariableG2 {
	return VariableG2{Value: value, Rand: r}
}

// NewVariableG2WithZeroRandomness is a convenience constructor for
// deterministic (unblinded) commitments, useful in tests.
func NewVariableG2WithZeroRandomness(value bls12381.G2Affine) VariableG2 {
	return VariableG2{Value: value, Rand: ZeroRandomnessG2()}
}
