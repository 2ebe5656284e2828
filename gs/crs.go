package gs

import (
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/groth-sahai/gs-ppe/pkg/utils"
)

// CRS is the Common Reference String: a pair of commitment keys, one per
// source group, plus the generators they were built from. It is produced by
// exactly one of SetupBinding, SetupEx, or SetupWI and is immutable and
// shareable across every prover/verifier call that follows. A CRS never
// reveals which of the three modes produced it.
type CRS struct {
	G1 bls12381.G1Affine
	G2 bls12381.G2Affine
	U  CommitmentKeyG1
	V  CommitmentKeyG2
}

// SetupBinding builds a binding CRS (u2 = t1*u1, v2 = t2*v1) from the given
// generators. Commitments made under this CRS are perfectly binding; no
// extraction trapdoor is returned. Use SetupEx if you need one.
func SetupBinding(rng io.Reader, g1 bls12381.G1Affine, g2 bls12381.G2Affine) (CRS, error) {
	crs, _, err := buildCRS(rng, g1, g2, false)
	return crs, err
}

// SetupEx builds a binding CRS exactly as SetupBinding does, and additionally
// returns the extraction trapdoor (alpha1, alpha2) used in security
// reductions to recover witnesses from commitments.
func SetupEx(rng io.Reader, g1 bls12381.G1Affine, g2 bls12381.G2Affine) (CRS, ExtractionKey, error) {
	return buildCRS(rng, g1, g2, false)
}

// SetupWI builds a witness-indistinguishable CRS (u2 = t1*u1 - (0,g1), and
// symmetrically for v) from the given generators. Commitments made under
// this CRS are perfectly hiding; no extraction trapdoor exists, and none is
// returned.
func SetupWI(rng io.Reader, g1 bls12381.G1Affine, g2 bls12381.G2Affine) (CRS, error) {
	crs, _, err := buildCRS(rng, g1, g2, true)
	return crs, err
}

// SetupBindingRand is SetupBinding with freshly sampled generators, for
// callers that don't need to pin g1/g2 to a specific value (mirrors
// CommitmentKeys::rand in the original gs-ppe implementation).
func SetupBindingRand(rng io.Reader) (CRS, error) {
	g1, g2, err := randomGenerators(rng)
	if err != nil {
		return CRS{}, err
	}
	return SetupBinding(rng, g1, g2)
}

// SetupExRand is SetupEx with freshly sampled generators.
func SetupExRand(rng io.Reader) (CRS, ExtractionKey, error) {
	g1, g2, err := randomGenerators(rng)
	if err != nil {
		return CRS{}, ExtractionKey{}, err
	}
	return SetupEx(rng, g1, g2)
}

// SetupWIRand is SetupWI with freshly sampled generators.
func SetupWIRand(rng io.Reader) (CRS, error) {
	g1, g2, err := randomGenerators(rng)
	if err != nil {
		return CRS{}, err
	}
	return SetupWI(rng, g1, g2)
}

func buildCRS(rng io.Reader, g1 bls12381.G1Affine, g2 bls12381.G2Affine, wi bool) (CRS, ExtractionKey, error) {
	var a1, a2, t1, t2 fr.Element
	for _, e := range []*fr.Element{&a1, &a2, &t1, &t2} {
		sampled, err := utils.RandomFieldElement(rng)
		if err != nil {
			return CRS{}, ExtractionKey{}, err
		}
		*e = sampled
	}

	var g1Jac bls12381.G1Jac
	g1Jac.FromAffine(&g1)
	var g2Jac bls12381.G2Jac
	g2Jac.FromAffine(&g2)

	// u1 = (g1, a1*g1)
	var u1Second bls12381.G1Jac
	u1Second.ScalarMultiplication(&g1Jac, fieldToBigInt(a1))
	u1SecondAffine := g1JacToAffine(u1Second)

	// u2 = (t1*g1, t1*a1*g1), or (t1*g1, (t1*a1-1)*g1) in WI mode.
	var u2First bls12381.G1Jac
	u2First.ScalarMultiplication(&g1Jac, fieldToBigInt(t1))

	var t1a1 fr.Element
	t1a1.Mul(&t1, &a1)
	if wi {
		var one fr.Element
		one.SetOne()
		t1a1.Sub(&t1a1, &one)
	}
	var u2Second bls12381.G1Jac
	u2Second.ScalarMultiplication(&g1Jac, fieldToBigInt(t1a1))

	// v1 = (g2, a2*g2)
	var v1Second bls12381.G2Jac
	v1Second.ScalarMultiplication(&g2Jac, fieldToBigInt(a2))
	v1SecondAffine := g2JacToAffine(v1Second)

	// v2 = (t2*g2, t2*a2*g2), or (t2*g2, (t2*a2-1)*g2) in WI mode.
	var v2First bls12381.G2Jac
	v2First.ScalarMultiplication(&g2Jac, fieldToBigInt(t2))

	var t2a2 fr.Element
	t2a2.Mul(&t2, &a2)
	if wi {
		var one fr.Element
		one.SetOne()
		t2a2.Sub(&t2a2, &one)
	}
	var v2Second bls12381.G2Jac
	v2Second.ScalarMultiplication(&g2Jac, fieldToBigInt(t2a2))

	crs := CRS{
		G1: g1,
		G2: g2,
		U: CommitmentKeyG1{
			U11: g1,
			U12: u1SecondAffine,
			U21: g1JacToAffine(u2First),
			U22: g1JacToAffine(u2Second),
		},
		V: CommitmentKeyG2{
			U11: g2,
			U12: v1SecondAffine,
			U21: g2JacToAffine(v2First),
			U22: g2JacToAffine(v2Second),
		},
	}
	return crs, ExtractionKey{Alpha1: a1, Alpha2: a2}, nil
}

func randomGenerators(rng io.Reader) (bls12381.G1Affine, bls12381.G2Affine, error) {
	_, _, baseG1, baseG2 := bls12381.Generators()

	s1, err := utils.RandomFieldElement(rng)
	if err != nil {
		return bls12381.G1Affine{}, bls12381.G2Affine{}, err
	}
	s2, err := utils.RandomFieldElement(rng)
	if err != nil {
		return bls12381.G1Affine{}, bls12381.G2Affine{}, err
	}

	var g1Jac bls12381.G1Jac
	g1Jac.FromAffine(&baseG1)
	g1Jac.ScalarMultiplication(&g1Jac, fieldToBigInt(s1))

	var g2Jac bls12381.G2Jac
	g2Jac.FromAffine(&baseG2)
	g2Jac.ScalarMultiplication(&g2Jac, fieldToBigInt(s2))

	return g1JacToAffine(g1Jac), g2JacToAffine(g2Jac), nil
}
