package gs

import (
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// CommitmentKeyG1 is the four-element commitment key ((u11,u12),(u21,u22))
// living in G1. It is immutable once constructed; nothing in this package
// writes to its fields.
type CommitmentKeyG1 struct {
	U11, U12, U21, U22 bls12381.G1Affine
}

// CommitmentKeyG2 is the G2 counterpart of CommitmentKeyG1.
type CommitmentKeyG2 struct {
	U11, U12, U21, U22 bls12381.G2Affine
}

// Commit computes c = (r1*U11 + r2*U21, value + r1*U12 + r2*U22).
func (ck CommitmentKeyG1) Commit(x VariableG1) ComG1 {
	c1, c2 := ck.blind(x.Rand)
	var affine2 bls12381.G1Jac
	affine2.FromAffine(&x.Value)
	affine2.AddAssign(&c2)
	return ComG1{C1: g1JacToAffine(c1), C2: g1JacToAffine(affine2)}
}

// Randomize samples fresh randomness and adds Commit(0, r') to com in place,
// returning the pre-update commitment and the fresh randomness so RdProof
// can consume both (RdProof matches randomness to commitment positionally).
func (ck CommitmentKeyG1) Randomize(rng io.Reader, com *ComG1) (ComG1, RandomnessG1, error) {
	pre := *com
	r, err := RandRandomnessG1(rng)
	if err != nil {
		return ComG1{}, RandomnessG1{}, err
	}
	c1, c2 := ck.blind(r)
	var newC1, newC2 bls12381.G1Jac
	newC1.FromAffine(&com.C1)
	newC1.AddAssign(&c1)
	newC2.FromAffine(&com.C2)
	newC2.AddAssign(&c2)
	com.C1 = g1JacToAffine(newC1)
	com.C2 = g1JacToAffine(newC2)
	return pre, r, nil
}

func (ck CommitmentKeyG1) blind(r RandomnessG1) (bls12381.G1Jac, bls12381.G1Jac) {
	var u11, u21, u12, u22 bls12381.G1Jac
	u11.FromAffine(&ck.U11)
	u21.FromAffine(&ck.U21)
	u12.FromAffine(&ck.U12)
	u22.FromAffine(&ck.U22)

	r1Big, r2Big := fieldToBigInt(r.R1), fieldToBigInt(r.R2)
	u11.ScalarMultiplication(&u11, r1Big)
	u21.ScalarMultiplication(&u21, r2Big)
	u12.ScalarMultiplication(&u12, r1Big)
	u22.ScalarMultiplication(&u22, r2Big)

	u11.AddAssign(&u21)
	u12.AddAssign(&u22)
	return u11, u12
}

// Commit computes d = (s1*U11 + s2*U21, value + s1*U12 + s2*U22).
func (ck CommitmentKeyG2) Commit(y VariableG2) ComG2 {
	c1, c2 := ck.blind(y.Rand)
	var affine2 bls12381.G2Jac
	affine2.FromAffine(&y.Value)
	affine2.AddAssign(&c2)
	return ComG2{C1: g2JacToAffine(c1), C2: g2JacToAffine(affine2)}
}

// Randomize samples fresh randomness and adds Commit(0, s') to com in place.
func (ck CommitmentKeyG2) Randomize(rng io.Reader, com *ComG2) (ComG2, RandomnessG2, error) {
	pre := *com
	s, err := RandRandomnessG2(rng)
	if err != nil {
		return ComG2{}, RandomnessG2{}, err
	}
	c1, c2 := ck.blind(s)
	var newC1, newC2 bls12381.G2Jac
	newC1.FromAffine(&com.C1)
	newC1.AddAssign(&c1)
	newC2.FromAffine(&com.C2)
	newC2.AddAssign(&c2)
	com.C1 = g2JacToAffine(newC1)
	com.C2 = g2JacToAffine(newC2)
	return pre, s, nil
}

func (ck CommitmentKeyG2) blind(s RandomnessG2) (bls12381.G2Jac, bls12381.G2Jac) {
	var u11, u21, u12, u22 bls12381.G2Jac
	u11.FromAffine(&ck.U11)
	u21.FromAffine(&ck.U21)
	u12.FromAffine(&ck.U12)
	u22.FromAffine(&ck.U22)

	r1Big, r2Big := fieldToBigInt(s.R1), fieldToBigInt(s.R2)
	u11.ScalarMultiplication(&u11, r1Big)
	u21.ScalarMultiplication(&u21, r2Big)
	u12.ScalarMultiplication(&u12, r1Big)
	u22.ScalarMultiplication(&u22, r2Big)

	u11.AddAssign(&u21)
	u12.AddAssign(&u22)
	return u11, u12
}

