package gs

import "testing"

func TestProofMarshalRoundTrip(t *testing.T) {
	rng := seededRNG(300)
	ps, _ := setupRandomShape(t, rng, 2, 2)

	data, err := ps.Proof.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	var out Proof
	if err := out.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if out != ps.Proof {
		t.Fatal("proof round trip mismatch")
	}
}

func TestComMarshalRoundTrip(t *testing.T) {
	rng := seededRNG(301)
	ps, _ := setupRandomShape(t, rng, 1, 1)

	cData, err := ps.C[0].MarshalBinary()
	if err != nil {
		t.Fatalf("ComG1.MarshalBinary: %v", err)
	}
	var cOut ComG1
	if err := cOut.UnmarshalBinary(cData); err != nil {
		t.Fatalf("ComG1.UnmarshalBinary: %v", err)
	}
	if cOut != ps.C[0] {
		t.Fatal("ComG1 round trip mismatch")
	}

	dData, err := ps.D[0].MarshalBinary()
	if err != nil {
		t.Fatalf("ComG2.MarshalBinary: %v", err)
	}
	var dOut ComG2
	if err := dOut.UnmarshalBinary(dData); err != nil {
		t.Fatalf("ComG2.UnmarshalBinary: %v", err)
	}
	if dOut != ps.D[0] {
		t.Fatal("ComG2 round trip mismatch")
	}
}

func TestProofSystemMarshalRoundTrip(t *testing.T) {
	rng := seededRNG(302)
	ps, crs := setupRandomShape(t, rng, 2, 1)

	data, err := ps.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	var out ProofSystem
	if err := out.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	ok, err := out.Verify(crs)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("expected decoded ProofSystem to still verify")
	}
}
