package gs

import (
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/groth-sahai/gs-ppe/internal/common"
	"github.com/groth-sahai/gs-ppe/pkg/crypto"
)

// Proof is a Groth-Sahai proof for a single Equation: a 2x2 matrix of G2
// elements (Phi) and a 2x2 matrix of G1 elements (Theta). Both are fixed
// 2x2 shapes by construction (the commitment keys are always 2x2), so they
// are plain arrays rather than the general Matrix type.
type Proof struct {
	Phi   [2][2]bls12381.G2Affine
	Theta [2][2]bls12381.G1Affine
}

// CommitmentUpdateG1 bundles the pre-randomization commitment and the fresh
// randomness CommitmentKeyG1.Randomize produced for it. RdProof needs both:
// the old commitment to recompute cross terms, the fresh randomness to
// update Theta/Phi in place.
type CommitmentUpdateG1 struct {
	Pre ComG1
	R   RandomnessG1
}

// CommitmentUpdateG2 is the G2 counterpart of CommitmentUpdateG1.
type CommitmentUpdateG2 struct {
	Pre ComG2
	S   RandomnessG2
}

// Prove builds a fresh proof that x and y, committed under crs.U and crs.V,
// satisfy equ. len(x) must equal equ.N() and len(y) must equal equ.M(); a
// mismatch is a caller bug and panics rather than returning an error (see
// common.MustDim).
func Prove(rng io.Reader, crs CRS, equ Equation, x []VariableG1, y []VariableG2) (Proof, error) {
	common.MustDim("prove: witness count", len(x), equ.N())
	common.MustDim("prove: witness count", len(y), equ.M())

	z, err := RandMatrix(rng, 2, 2)
	if err != nil {
		return Proof{}, err
	}
	zU := zU(crs.U, z)
	zV := zV(crs.V, z)

	r := make([]RandomnessG1, len(x))
	for i, xi := range x {
		r[i] = xi.Rand
	}
	s := make([]RandomnessG2, len(y))
	for j, yj := range y {
		s[j] = yj.Rand
	}
	t11, t12, t21, t22 := crossTerms(equ.Gamma, r, s)

	phi11 := twoTermG2(crs.V.U11, t11, crs.V.U21, t12)
	byVTerm, err := phi1j(equ.B, x, y, equ.Gamma, func(rr RandomnessG1) fr.Element { return rr.R1 })
	if err != nil {
		return Proof{}, err
	}
	phi12 := addG2(byVTerm, twoTermG2(crs.V.U12, t11, crs.V.U22, t12))

	phi21 := twoTermG2(crs.V.U11, t21, crs.V.U21, t22)
	byVTerm2, err := phi1j(equ.B, x, y, equ.Gamma, func(rr RandomnessG1) fr.Element { return rr.R2 })
	if err != nil {
		return Proof{}, err
	}
	phi22 := addG2(byVTerm2, twoTermG2(crs.V.U12, t21, crs.V.U22, t22))

	phi := [2][2]bls12381.G2Affine{
		{addG2(phi11, zV[0][0]), addG2(phi12, zV[0][1])},
		{addG2(phi21, zV[1][0]), addG2(phi22, zV[1][1])},
	}

	theta12, err := theta1j(equ.A, y, x, equ.Gamma, func(ss RandomnessG2) fr.Element { return ss.R1 })
	if err != nil {
		return Proof{}, err
	}
	theta22, err := theta1j(equ.A, y, x, equ.Gamma, func(ss RandomnessG2) fr.Element { return ss.R2 })
	if err != nil {
		return Proof{}, err
	}

	theta := [2][2]bls12381.G1Affine{
		{zU[0][0], addG1(theta12, zU[0][1])},
		{zU[1][0], addG1(theta22, zU[1][1])},
	}

	return Proof{Phi: phi, Theta: theta}, nil
}

// RdProof re-randomizes p in place to match the already-randomized
// commitments described by cr and ds (the output of CommitmentKeyG1/G2's
// Randomize calls for each witness). len(cr) must equal equ.N() and
// len(ds) must equal equ.M().
func (p *Proof) RdProof(rng io.Reader, crs CRS, equ Equation, cr []CommitmentUpdateG1, ds []CommitmentUpdateG2) error {
	common.MustDim("randomize proof: commitment count", len(cr), equ.N())
	common.MustDim("randomize proof: commitment count", len(ds), equ.M())

	z, err := RandMatrix(rng, 2, 2)
	if err != nil {
		return err
	}
	zU := zU(crs.U, z)
	zV := zV(crs.V, z)

	cC1 := make([]bls12381.G1Affine, len(cr))
	cC2 := make([]bls12381.G1Affine, len(cr))
	r := make([]RandomnessG1, len(cr))
	for i, u := range cr {
		cC1[i] = u.Pre.C1
		cC2[i] = u.Pre.C2
		r[i] = u.R
	}
	dC1 := make([]bls12381.G2Affine, len(ds))
	dC2 := make([]bls12381.G2Affine, len(ds))
	s := make([]RandomnessG2, len(ds))
	for j, u := range ds {
		dC1[j] = u.Pre.C1
		dC2[j] = u.Pre.C2
		s[j] = u.S
	}
	t11, t12, t21, t22 := crossTerms(equ.Gamma, r, s)

	// expR1[j], expR2[j] = sum_i Gamma[i,j] * r_i.{R1,R2}.
	colWeights := func(comp func(RandomnessG1) fr.Element) []fr.Element {
		out := make([]fr.Element, len(dC1))
		for j := range out {
			var exp fr.Element
			for i := range r {
				gij := equ.Gamma.At(i, j)
				c := comp(r[i])
				var term fr.Element
				term.Mul(&gij, &c)
				exp.Add(&exp, &term)
			}
			out[j] = exp
		}
		return out
	}
	expR1 := colWeights(func(rr RandomnessG1) fr.Element { return rr.R1 })
	expR2 := colWeights(func(rr RandomnessG1) fr.Element { return rr.R2 })

	dC1R1, err := crypto.MultiScalarMulG2(dC1, expR1)
	if err != nil {
		return err
	}
	dC2R1, err := crypto.MultiScalarMulG2(dC2, expR1)
	if err != nil {
		return err
	}
	dC1R2, err := crypto.MultiScalarMulG2(dC1, expR2)
	if err != nil {
		return err
	}
	dC2R2, err := crypto.MultiScalarMulG2(dC2, expR2)
	if err != nil {
		return err
	}

	bProductR1 := weightedSumG2ByRandomnessG1(equ.B, r, func(rr RandomnessG1) fr.Element { return rr.R1 })
	bProductR2 := weightedSumG2ByRandomnessG1(equ.B, r, func(rr RandomnessG1) fr.Element { return rr.R2 })

	phi11 := addG2(dC1R1, twoTermG2(crs.V.U11, t11, crs.V.U21, t12))
	phi12 := addG2(addG2(bProductR1, dC2R1), twoTermG2(crs.V.U12, t11, crs.V.U22, t12))
	phi21 := addG2(dC1R2, twoTermG2(crs.V.U11, t21, crs.V.U21, t22))
	phi22 := addG2(addG2(bProductR2, dC2R2), twoTermG2(crs.V.U12, t21, crs.V.U22, t22))

	newPhi := [2][2]bls12381.G2Affine{
		{addG2(addG2(p.Phi[0][0], phi11), zV[0][0]), addG2(addG2(p.Phi[0][1], phi12), zV[0][1])},
		{addG2(addG2(p.Phi[1][0], phi21), zV[1][0]), addG2(addG2(p.Phi[1][1], phi22), zV[1][1])},
	}

	// expS1[i], expS2[i] = sum_j Gamma[i,j] * s_j.{R1,R2}.
	rowWeights := func(comp func(RandomnessG2) fr.Element) []fr.Element {
		out := make([]fr.Element, len(cC1))
		for i := range out {
			var exp fr.Element
			for j := range s {
				gij := equ.Gamma.At(i, j)
				c := comp(s[j])
				var term fr.Element
				term.Mul(&gij, &c)
				exp.Add(&exp, &term)
			}
			out[i] = exp
		}
		return out
	}
	expS1 := rowWeights(func(ss RandomnessG2) fr.Element { return ss.R1 })
	expS2 := rowWeights(func(ss RandomnessG2) fr.Element { return ss.R2 })

	cC1S1, err := crypto.MultiScalarMulG1(cC1, expS1)
	if err != nil {
		return err
	}
	cC2S1, err := crypto.MultiScalarMulG1(cC2, expS1)
	if err != nil {
		return err
	}
	cC1S2, err := crypto.MultiScalarMulG1(cC1, expS2)
	if err != nil {
		return err
	}
	cC2S2, err := crypto.MultiScalarMulG1(cC2, expS2)
	if err != nil {
		return err
	}

	aProductS1 := weightedSumG1ByRandomnessG2(equ.A, s, func(ss RandomnessG2) fr.Element { return ss.R1 })
	aProductS2 := weightedSumG1ByRandomnessG2(equ.A, s, func(ss RandomnessG2) fr.Element { return ss.R2 })

	theta11 := cC1S1
	theta12 := addG1(aProductS1, cC2S1)
	theta21 := cC1S2
	theta22 := addG1(aProductS2, cC2S2)

	newTheta := [2][2]bls12381.G1Affine{
		{addG1(addG1(p.Theta[0][0], theta11), zU[0][0]), addG1(addG1(p.Theta[0][1], theta12), zU[0][1])},
		{addG1(addG1(p.Theta[1][0], theta21), zU[1][0]), addG1(addG1(p.Theta[1][1], theta22), zU[1][1])},
	}

	p.Phi = newPhi
	p.Theta = newTheta
	return nil
}

func zU(u CommitmentKeyG1, z Matrix) [2][2]bls12381.G1Affine {
	z00, z01, z10, z11 := z.At(0, 0), z.At(0, 1), z.At(1, 0), z.At(1, 1)
	return [2][2]bls12381.G1Affine{
		{twoTermG1(u.U11, z00, u.U21, z01), twoTermG1(u.U12, z00, u.U22, z01)},
		{twoTermG1(u.U11, z10, u.U21, z11), twoTermG1(u.U12, z10, u.U22, z11)},
	}
}

func zV(v CommitmentKeyG2, z Matrix) [2][2]bls12381.G2Affine {
	z00, z01, z10, z11 := z.At(0, 0), z.At(0, 1), z.At(1, 0), z.At(1, 1)
	var nz00, nz01, nz10, nz11 fr.Element
	nz00.Neg(&z00)
	nz01.Neg(&z01)
	nz10.Neg(&z10)
	nz11.Neg(&z11)
	return [2][2]bls12381.G2Affine{
		{twoTermG2(v.U11, nz00, v.U21, nz10), twoTermG2(v.U12, nz00, v.U22, nz10)},
		{twoTermG2(v.U11, nz01, v.U21, nz11), twoTermG2(v.U12, nz01, v.U22, nz11)},
	}
}

// crossTerms computes t_pq = sum_i sum_j Gamma[i,j] * r_i.p * s_j.q for
// p,q in {1,2}, the scalar cross terms folded into Phi and Theta.
func crossTerms(gamma Matrix, r []RandomnessG1, s []RandomnessG2) (t11, t12, t21, t22 fr.Element) {
	for i := range r {
		for j := range s {
			gij := gamma.At(i, j)
			var term fr.Element

			term.Mul(&gij, &r[i].R1)
			term.Mul(&term, &s[j].R1)
			t11.Add(&t11, &term)

			term.Mul(&gij, &r[i].R1)
			term.Mul(&term, &s[j].R2)
			t12.Add(&t12, &term)

			term.Mul(&gij, &r[i].R2)
			term.Mul(&term, &s[j].R1)
			t21.Add(&t21, &term)

			term.Mul(&gij, &r[i].R2)
			term.Mul(&term, &s[j].R2)
			t22.Add(&t22, &term)
		}
	}
	return
}

// phi1j computes the bProduct+yProduct half of phi12/phi22: sum_i B[i]*comp(x_i.Rand)
// plus sum_j y_j.Value * (sum_i Gamma[i,j]*comp(x_i.Rand)).
func phi1j(b []bls12381.G2Affine, x []VariableG1, y []VariableG2, gamma Matrix, comp func(RandomnessG1) fr.Element) (bls12381.G2Affine, error) {
	bScalars := make([]fr.Element, len(x))
	for i, xi := range x {
		bScalars[i] = comp(xi.Rand)
	}
	bProduct, err := crypto.MultiScalarMulG2(b, bScalars)
	if err != nil {
		return bls12381.G2Affine{}, err
	}

	yValues := make([]bls12381.G2Affine, len(y))
	yScalars := make([]fr.Element, len(y))
	for j, yj := range y {
		yValues[j] = yj.Value
		var exp fr.Element
		for i, xi := range x {
			gij := gamma.At(i, j)
			var term fr.Element
			c := comp(xi.Rand)
			term.Mul(&gij, &c)
			exp.Add(&exp, &term)
		}
		yScalars[j] = exp
	}
	yProduct, err := crypto.MultiScalarMulG2(yValues, yScalars)
	if err != nil {
		return bls12381.G2Affine{}, err
	}
	return addG2(bProduct, yProduct), nil
}

// theta1j computes the aProduct+xProduct half of theta12/theta22: sum_j A[j]*comp(y_j.Rand)
// plus sum_i x_i.Value * (sum_j Gamma[i,j]*comp(y_j.Rand)).
func theta1j(a []bls12381.G1Affine, y []VariableG2, x []VariableG1, gamma Matrix, comp func(RandomnessG2) fr.Element) (bls12381.G1Affine, error) {
	aScalars := make([]fr.Element, len(y))
	for j, yj := range y {
		aScalars[j] = comp(yj.Rand)
	}
	aProduct, err := crypto.MultiScalarMulG1(a, aScalars)
	if err != nil {
		return bls12381.G1Affine{}, err
	}

	xValues := make([]bls12381.G1Affine, len(x))
	xScalars := make([]fr.Element, len(x))
	for i, xi := range x {
		xValues[i] = xi.Value
		var exp fr.Element
		for j, yj := range y {
			gij := gamma.At(i, j)
			var term fr.Element
			c := comp(yj.Rand)
			term.Mul(&gij, &c)
			exp.Add(&exp, &term)
		}
		xScalars[i] = exp
	}
	xProduct, err := crypto.MultiScalarMulG1(xValues, xScalars)
	if err != nil {
		return bls12381.G1Affine{}, err
	}
	return addG1(aProduct, xProduct), nil
}

func weightedSumG2ByRandomnessG1(b []bls12381.G2Affine, r []RandomnessG1, comp func(RandomnessG1) fr.Element) bls12381.G2Affine {
	scalars := make([]fr.Element, len(r))
	for i := range r {
		scalars[i] = comp(r[i])
	}
	p, err := crypto.MultiScalarMulG2(b, scalars)
	if err != nil {
		return bls12381.G2Affine{}
	}
	return p
}

func weightedSumG1ByRandomnessG2(a []bls12381.G1Affine, s []RandomnessG2, comp func(RandomnessG2) fr.Element) bls12381.G1Affine {
	scalars := make([]fr.Element, len(s))
	for j := range s {
		scalars[j] = comp(s[j])
	}
	p, err := crypto.MultiScalarMulG1(a, scalars)
	if err != nil {
		return bls12381.G1Affine{}
	}
	return p
}

func twoTermG1(p1 bls12381.G1Affine, s1 fr.Element, p2 bls12381.G1Affine, s2 fr.Element) bls12381.G1Affine {
	return addG1(scalarMulG1(p1, s1), scalarMulG1(p2, s2))
}

func twoTermG2(p1 bls12381.G2Affine, s1 fr.Element, p2 bls12381.G2Affine, s2 fr.Element) bls12381.G2Affine {
	return addG2(scalarMulG2(p1, s1), scalarMulG2(p2, s2))
}

