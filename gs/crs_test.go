package gs

import "testing"

func TestSetupBindingCommitIsBlinded(t *testing.T) {
	rng := seededRNG(10)
	crs, err := SetupBindingRand(rng)
	if err != nil {
		t.Fatalf("SetupBindingRand: %v", err)
	}
	x := randG1(rng)
	zero := NewVariableG1WithZeroRandomness(x)
	blinded, err := NewVariableG1(rng, x)
	if err != nil {
		t.Fatalf("NewVariableG1: %v", err)
	}
	cZero := crs.U.Commit(zero)
	cBlinded := crs.U.Commit(blinded)
	if cZero == cBlinded {
		t.Fatalf("expected blinded commitment to differ from unblinded one")
	}
}

func TestSetupExExtraction(t *testing.T) {
	rng := seededRNG(11)
	crs, ek, err := SetupExRand(rng)
	if err != nil {
		t.Fatalf("SetupExRand: %v", err)
	}
	x := randG1(rng)
	v, err := NewVariableG1(rng, x)
	if err != nil {
		t.Fatalf("NewVariableG1: %v", err)
	}
	c := crs.U.Commit(v)
	got := ek.Extract1(c)
	if got != x {
		t.Fatalf("Extract1 = %v, want %v", got, x)
	}

	y := randG2(rng)
	w, err := NewVariableG2(rng, y)
	if err != nil {
		t.Fatalf("NewVariableG2: %v", err)
	}
	d := crs.V.Commit(w)
	gotY := ek.Extract2(d)
	if gotY != y {
		t.Fatalf("Extract2 = %v, want %v", gotY, y)
	}
}

func TestSetupWIProducesDistinctCRSFromBinding(t *testing.T) {
	rng := seededRNG(12)
	g1, g2, err := randomGenerators(rng)
	if err != nil {
		t.Fatalf("randomGenerators: %v", err)
	}
	binding, err := SetupBinding(rng, g1, g2)
	if err != nil {
		t.Fatalf("SetupBinding: %v", err)
	}
	wi, err := SetupWI(rng, g1, g2)
	if err != nil {
		t.Fatalf("SetupWI: %v", err)
	}
	if binding.U.U22 == wi.U.U22 {
		t.Fatalf("expected binding and WI commitment keys to differ")
	}
}

func TestCommitmentKeyMarshalRoundTrip(t *testing.T) {
	rng := seededRNG(13)
	crs, err := SetupBindingRand(rng)
	if err != nil {
		t.Fatalf("SetupBindingRand: %v", err)
	}
	data, err := crs.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	var out CRS
	if err := out.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if out.U.U11 != crs.U.U11 || out.V.U22 != crs.V.U22 {
		t.Fatalf("CRS round trip mismatch")
	}
}
