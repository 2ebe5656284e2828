package gs

import (
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

func TestNewEquationDimensionMismatch(t *testing.T) {
	rng := seededRNG(400)
	a := []bls12381.G1Affine{randG1(rng), randG1(rng)}
	b := []bls12381.G2Affine{randG2(rng)}
	gamma := ZeroMatrix(1, 1) // shape is 1x1, but b has len 1 and a has len 2: mismatch on cols
	if _, err := NewEquation(a, b, gamma, gtZero()); err == nil {
		t.Fatal("expected dimension mismatch error")
	}
}

func TestEquationComposeDimensions(t *testing.T) {
	rng := seededRNG(401)
	ps1, _ := setupRandomShape(t, rng, 1, 2)
	ps2, _ := setupRandomShape(t, rng, 2, 1)

	composed, err := ps1.Equation.Compose(ps2.Equation)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if composed.N() != ps1.Equation.N()+ps2.Equation.N() {
		t.Errorf("N() = %d, want %d", composed.N(), ps1.Equation.N()+ps2.Equation.N())
	}
	if composed.M() != ps1.Equation.M()+ps2.Equation.M() {
		t.Errorf("M() = %d, want %d", composed.M(), ps1.Equation.M()+ps2.Equation.M())
	}
}

func TestEquationVerifyRejectsWrongCommitmentCount(t *testing.T) {
	rng := seededRNG(402)
	ps, crs := setupRandomShape(t, rng, 2, 2)

	if _, err := ps.Equation.Verify(crs.U, crs.V, ps.C[:1], ps.D, ps.Proof); err == nil {
		t.Fatal("expected a dimension error for a short C slice")
	}
}
