package gs

import (
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

func TestOneByOne(t *testing.T) {
	rng := seededRNG(100)
	crs, err := SetupBindingRand(rng)
	if err != nil {
		t.Fatalf("SetupBindingRand: %v", err)
	}

	a := randG1(rng)
	b := randG2(rng)
	xv, err := NewVariableG1(rng, randG1(rng))
	if err != nil {
		t.Fatalf("NewVariableG1: %v", err)
	}
	yv, err := NewVariableG2(rng, randG2(rng))
	if err != nil {
		t.Fatalf("NewVariableG2: %v", err)
	}
	gamma, err := RandMatrix(rng, 1, 1)
	if err != nil {
		t.Fatalf("RandMatrix: %v", err)
	}

	ps, err := Setup(rng, crs, []AY{{A: a, Y: yv}}, []XB{{X: xv, B: b}}, gamma)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	ok, err := ps.Verify(crs)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("expected verification to succeed before randomization")
	}

	if err := ps.Randomize(rng, crs); err != nil {
		t.Fatalf("Randomize: %v", err)
	}
	ok, err = ps.Verify(crs)
	if err != nil {
		t.Fatalf("Verify after randomize: %v", err)
	}
	if !ok {
		t.Fatal("expected verification to succeed after randomization")
	}
}

func TestTwoByThree(t *testing.T) {
	rng := seededRNG(101)
	ps, crs := setupRandomShape(t, rng, 2, 3)
	ok, err := ps.Verify(crs)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("expected verification to succeed")
	}
	if err := ps.Randomize(rng, crs); err != nil {
		t.Fatalf("Randomize: %v", err)
	}
	ok, err = ps.Verify(crs)
	if err != nil {
		t.Fatalf("Verify after randomize: %v", err)
	}
	if !ok {
		t.Fatal("expected verification to succeed after randomization")
	}
}

func TestZeroXWitnesses(t *testing.T) {
	rng := seededRNG(102)
	ps, crs := setupRandomShape(t, rng, 1, 0)
	ok, err := ps.Verify(crs)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("expected verification to succeed with zero X witnesses")
	}
}

func TestZeroYWitnesses(t *testing.T) {
	rng := seededRNG(103)
	ps, crs := setupRandomShape(t, rng, 0, 1)
	ok, err := ps.Verify(crs)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("expected verification to succeed with zero Y witnesses")
	}
}

func TestHomomorphicComposition(t *testing.T) {
	rng := seededRNG(104)
	ps1, crs := setupRandomShape(t, rng, 1, 1)
	ps2 := setupRandomShapeUnder(t, rng, crs, 1, 1)

	combined, err := ps1.Add(ps2)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	ok, err := combined.Verify(crs)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("expected composed proof system to verify")
	}
}

func TestTamperDetection(t *testing.T) {
	rng := seededRNG(105)
	ps, crs := setupRandomShape(t, rng, 1, 1)

	_, _, _, g2 := bls12381.Generators()
	ps.Proof.Phi[0][0] = addG2(ps.Proof.Phi[0][0], g2)

	ok, err := ps.Verify(crs)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Fatal("expected verification to fail for a tampered proof")
	}
}

func TestExtractionExact(t *testing.T) {
	rng := seededRNG(106)
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
}

func TestShapeSweep(t *testing.T) {
	shapes := [][2]int{{1, 1}, {2, 2}, {3, 1}, {1, 3}, {4, 4}}
	for i, shape := range shapes {
		m, n := shape[0], shape[1]
		rng := seededRNG(int64(200 + i))
		ps, crs := setupRandomShape(t, rng, m, n)
		ok, err := ps.Verify(crs)
		if err != nil {
			t.Fatalf("shape %dx%d: Verify: %v", m, n, err)
		}
		if !ok {
			t.Fatalf("shape %dx%d: expected verification to succeed", m, n)
		}
	}
}
