package gs

import "testing"

func TestProveWitnessCountMismatchPanics(t *testing.T) {
	rng := seededRNG(500)
	ps, crs := setupRandomShape(t, rng, 1, 1)

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected Prove to panic on a witness/equation shape mismatch")
		}
	}()

	x, err := NewVariableG1(rng, randG1(rng))
	if err != nil {
		t.Fatalf("NewVariableG1: %v", err)
	}
	// ps.Equation.N() == 1; passing 2 X witnesses should trip MustDim.
	_, _ = Prove(rng, crs, ps.Equation, []VariableG1{x, x}, nil)
}

func TestRdProofCommitmentCountMismatchPanics(t *testing.T) {
	rng := seededRNG(501)
	ps, crs := setupRandomShape(t, rng, 1, 1)

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected RdProof to panic on a commitment/equation shape mismatch")
		}
	}()

	_ = ps.Proof.RdProof(rng, crs, ps.Equation, nil, nil)
}
