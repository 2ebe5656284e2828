package core

import (
	"math/rand"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/groth-sahai/gs-ppe/gs"
)

func TestSetupCRSAllModes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, mode := range []CRSMode{ModeBinding, ModeExtraction, ModeWI} {
		if _, _, err := SetupCRS(mode, rng); err != nil {
			t.Fatalf("SetupCRS(%d): %v", mode, err)
		}
	}
}

func TestSetupCRSUnknownMode(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	if _, _, err := SetupCRS(CRSMode(99), rng); err == nil {
		t.Fatal("expected an error for an unknown CRS mode")
	}
}

func TestBuildVerifyRandomizeCompose(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	crs, _, err := SetupCRS(ModeBinding, rng)
	if err != nil {
		t.Fatalf("SetupCRS: %v", err)
	}

	_, _, g1, g2 := bls12381.Generators()
	x, err := NewWitnessG1(rng, g1)
	if err != nil {
		t.Fatalf("NewWitnessG1: %v", err)
	}
	y, err := NewWitnessG2(rng, g2)
	if err != nil {
		t.Fatalf("NewWitnessG2: %v", err)
	}
	gamma, err := gs.RandMatrix(rng, 1, 1)
	if err != nil {
		t.Fatalf("RandMatrix: %v", err)
	}

	ps, err := BuildProofSystem(rng, crs, []AY{{A: g1, Y: y}}, []XB{{X: x, B: g2}}, gamma)
	if err != nil {
		t.Fatalf("BuildProofSystem: %v", err)
	}

	ok, err := Verify(ps, crs)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("expected verification to succeed")
	}

	if err := Randomize(rng, &ps, crs); err != nil {
		t.Fatalf("Randomize: %v", err)
	}
	ok, err = Verify(ps, crs)
	if err != nil {
		t.Fatalf("Verify after randomize: %v", err)
	}
	if !ok {
		t.Fatal("expected verification to succeed after randomization")
	}

	ps2, err := BuildProofSystem(rng, crs, []AY{{A: g1, Y: y}}, []XB{{X: x, B: g2}}, gamma)
	if err != nil {
		t.Fatalf("BuildProofSystem (second system): %v", err)
	}
	combined, err := Compose(ps, ps2)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	ok, err = Verify(combined, crs)
	if err != nil {
		t.Fatalf("Verify composed: %v", err)
	}
	if !ok {
		t.Fatal("expected composed proof system to verify")
	}
}
