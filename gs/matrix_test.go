package gs

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

func TestMatrixAddNeg(t *testing.T) {
	rng := seededRNG(1)
	a, err := RandMatrix(rng, 2, 3)
	if err != nil {
		t.Fatalf("RandMatrix: %v", err)
	}
	b, err := RandMatrix(rng, 2, 3)
	if err != nil {
		t.Fatalf("RandMatrix: %v", err)
	}

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	back, err := sum.Add(b.Neg())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			got := back.At(i, j)
			want := a.At(i, j)
			if !got.Equal(&want) {
				t.Errorf("(%d,%d): got %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestMatrixAddDimensionMismatch(t *testing.T) {
	a := ZeroMatrix(2, 2)
	b := ZeroMatrix(3, 2)
	if _, err := a.Add(b); err == nil {
		t.Fatal("expected dimension mismatch error")
	}
}

func TestBlockDiag(t *testing.T) {
	rng := seededRNG(2)
	top, err := RandMatrix(rng, 2, 3)
	if err != nil {
		t.Fatalf("RandMatrix: %v", err)
	}
	bottom, err := RandMatrix(rng, 1, 2)
	if err != nil {
		t.Fatalf("RandMatrix: %v", err)
	}
	out, err := BlockDiag(top, bottom)
	if err != nil {
		t.Fatalf("BlockDiag: %v", err)
	}
	rows, cols := out.Dim()
	if rows != 3 || cols != 5 {
		t.Fatalf("got %dx%d, want 3x5", rows, cols)
	}
	var zero fr.Element
	for i := 0; i < 2; i++ {
		for j := 3; j < 5; j++ {
			got := out.At(i, j)
			if !got.Equal(&zero) {
				t.Errorf("off-block (%d,%d) not zero", i, j)
			}
		}
	}
	for i := 2; i < 3; i++ {
		for j := 0; j < 3; j++ {
			got := out.At(i, j)
			if !got.Equal(&zero) {
				t.Errorf("off-block (%d,%d) not zero", i, j)
			}
		}
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			got := out.At(i, j)
			want := top.At(i, j)
			if !got.Equal(&want) {
				t.Errorf("top block (%d,%d) mismatch", i, j)
			}
		}
	}
	for i := 0; i < 1; i++ {
		for j := 0; j < 2; j++ {
			got := out.At(i+2, j+3)
			want := bottom.At(i, j)
			if !got.Equal(&want) {
				t.Errorf("bottom block (%d,%d) mismatch", i, j)
			}
		}
	}
}

func TestMatrixMarshalRoundTrip(t *testing.T) {
	rng := seededRNG(3)
	m, err := RandMatrix(rng, 3, 4)
	if err != nil {
		t.Fatalf("RandMatrix: %v", err)
	}
	data, err := m.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	var out Matrix
	if err := out.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	rows, cols := out.Dim()
	if rows != 3 || cols != 4 {
		t.Fatalf("got %dx%d, want 3x4", rows, cols)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			got, want := out.At(i, j), m.At(i, j)
			if !got.Equal(&want) {
				t.Errorf("(%d,%d) mismatch after round trip", i, j)
			}
		}
	}
}

func TestZeroColumnIsAxis0ConcatIdentity(t *testing.T) {
	rng := seededRNG(4)
	m, err := RandMatrix(rng, 2, 3)
	if err != nil {
		t.Fatalf("RandMatrix: %v", err)
	}
	out, err := Axis0Concat(ZeroColumn(3), m)
	if err != nil {
		t.Fatalf("Axis0Concat: %v", err)
	}
	rows, cols := out.Dim()
	if rows != 2 || cols != 3 {
		t.Fatalf("got %dx%d, want 2x3", rows, cols)
	}
}
