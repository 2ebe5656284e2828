package gs

import (
	"math/rand"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/groth-sahai/gs-ppe/pkg/utils"
)

// seededRNG returns a deterministic io.Reader for reproducible test fixtures.
func seededRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func randG1(rng *rand.Rand) bls12381.G1Affine {
	_, _, base, _ := bls12381.Generators()
	e, err := utils.RandomFieldElement(rng)
	if err != nil {
		panic(err)
	}
	var jac bls12381.G1Jac
	jac.FromAffine(&base)
	jac.ScalarMultiplication(&jac, fieldToBigInt(e))
	return g1JacToAffine(jac)
}

func randG2(rng *rand.Rand) bls12381.G2Affine {
	_, _, _, base := bls12381.Generators()
	e, err := utils.RandomFieldElement(rng)
	if err != nil {
		panic(err)
	}
	var jac bls12381.G2Jac
	jac.FromAffine(&base)
	jac.ScalarMultiplication(&jac, fieldToBigInt(e))
	return g2JacToAffine(jac)
}

// setupRandomShape builds a satisfiable m x n ProofSystem (m AY pairs, n XB
// pairs) under a fresh binding CRS, computing the target so the equation is
// guaranteed to hold.
func setupRandomShape(t *testing.T, rng *rand.Rand, m, n int) (ProofSystem, CRS) {
	t.Helper()
	crs, err := SetupBindingRand(rng)
	if err != nil {
		t.Fatalf("SetupBindingRand: %v", err)
	}
	return setupRandomShapeUnder(t, rng, crs, m, n), crs
}

// setupRandomShapeUnder is setupRandomShape under a caller-supplied CRS, for
// tests that need several proof systems sharing one CRS.
func setupRandomShapeUnder(t *testing.T, rng *rand.Rand, crs CRS, m, n int) ProofSystem {
	t.Helper()
	ay := make([]AY, m)
	for j := 0; j < m; j++ {
		yv, err := NewVariableG2(rng, randG2(rng))
		if err != nil {
			t.Fatalf("NewVariableG2: %v", err)
		}
		ay[j] = AY{A: randG1(rng), Y: yv}
	}
	xb := make([]XB, n)
	for i := 0; i < n; i++ {
		xv, err := NewVariableG1(rng, randG1(rng))
		if err != nil {
			t.Fatalf("NewVariableG1: %v", err)
		}
		xb[i] = XB{X: xv, B: randG2(rng)}
	}
	gamma, err := RandMatrix(rng, n, m)
	if err != nil {
		t.Fatalf("RandMatrix: %v", err)
	}

	ps, err := Setup(rng, crs, ay, xb, gamma)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	return ps
}
