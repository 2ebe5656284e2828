package gs

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/groth-sahai/gs-ppe/internal/common"
	"github.com/groth-sahai/gs-ppe/pkg/crypto"
)

// Equation is a single pairing product equation
//
//	prod_j e(A[j], Y[j]) * prod_i e(X[i], B[i]) * prod_i,j e(X[i], Y[j])^Gamma[i,j] = Target
//
// over n G1 witnesses X (committed as C) and m G2 witnesses Y (committed as
// D). A has length m, B has length n, and Gamma is n x m: Gamma[i][j] is the
// coefficient of the cross term between X[i] and Y[j].
type Equation struct {
	A      []bls12381.G1Affine
	B      []bls12381.G2Affine
	Gamma  Matrix
	Target GT
}

// NewEquation validates that Gamma's shape matches len(b) x len(a) before
// returning the equation; everything downstream assumes this holds.
func NewEquation(a []bls12381.G1Affine, b []bls12381.G2Affine, gamma Matrix, target GT) (Equation, error) {
	rows, cols := gamma.Dim()
	if rows != len(b) || cols != len(a) {
		return Equation{}, fmt.Errorf("gs-ppe: %w: gamma is %dx%d, want %dx%d", common.ErrDimensionMismatch, rows, cols, len(b), len(a))
	}
	return Equation{A: a, B: b, Gamma: gamma, Target: target}, nil
}

// N is the number of G1 witnesses (and required commitments C) the equation
// takes.
func (e Equation) N() int { return len(e.B) }

// M is the number of G2 witnesses (and required commitments D) the equation
// takes.
func (e Equation) M() int { return len(e.A) }

// Compose builds the equation that both e and other are simultaneously
// satisfied by: witnesses concatenate, Gamma becomes block-diagonal, and the
// targets multiply. This is what ProofSystem.Add uses to fold two proof
// obligations into a single proof.
func (e Equation) Compose(other Equation) (Equation, error) {
	gamma, err := BlockDiag(e.Gamma, other.Gamma)
	if err != nil {
		return Equation{}, err
	}
	a := append(append([]bls12381.G1Affine{}, e.A...), other.A...)
	b := append(append([]bls12381.G2Affine{}, e.B...), other.B...)
	return Equation{A: a, B: b, Gamma: gamma, Target: gtAdd(e.Target, other.Target)}, nil
}

// Verify checks proof against c (commitments to the n G1 witnesses) and d
// (commitments to the m G2 witnesses) under commitment keys u, v, by
// evaluating the four Groth-Sahai verification identities. It reports a
// dimension error rather than a verification failure when c or d don't match
// the equation's shape; a caller that sees (false, nil) has a genuinely
// unsatisfied equation or tampered proof, not a shape mismatch.
func (e Equation) Verify(u CommitmentKeyG1, v CommitmentKeyG2, c []ComG1, d []ComG2, proof Proof) (bool, error) {
	n, m := e.N(), e.M()
	if len(c) != n {
		return false, fmt.Errorf("gs-ppe: %w: got %d C commitments, want %d", common.ErrDimensionMismatch, len(c), n)
	}
	if len(d) != m {
		return false, fmt.Errorf("gs-ppe: %w: got %d D commitments, want %d", common.ErrDimensionMismatch, len(d), m)
	}

	dC1 := make([]bls12381.G2Affine, m)
	dC2 := make([]bls12381.G2Affine, m)
	for j := 0; j < m; j++ {
		dC1[j] = d[j].C1
		dC2[j] = d[j].C2
	}
	cC1 := make([]bls12381.G1Affine, n)
	cC2 := make([]bls12381.G1Affine, n)
	for i := 0; i < n; i++ {
		cC1[i] = c[i].C1
		cC2[i] = c[i].C2
	}

	// D1[i] = sum_j Gamma[i,j] * d[j].C1, D2[i] = sum_j Gamma[i,j] * d[j].C2.
	// D2 is computed once here and reused by equation 4.
	d1 := make([]bls12381.G2Affine, n)
	d2 := make([]bls12381.G2Affine, n)
	for i := 0; i < n; i++ {
		row := gammaRow(e.Gamma, i)
		p, err := crypto.MultiScalarMulG2(dC1, row)
		if err != nil {
			return false, err
		}
		d1[i] = p
		p, err = crypto.MultiScalarMulG2(dC2, row)
		if err != nil {
			return false, err
		}
		d2[i] = p
		defaultPool.PutScalarSlice(row)
	}

	// C2col[j] = sum_i Gamma[i,j] * c[i].C2, used by equation 3.
	c2col := make([]bls12381.G1Affine, m)
	for j := 0; j < m; j++ {
		col := gammaCol(e.Gamma, j)
		p, err := crypto.MultiScalarMulG1(cC2, col)
		if err != nil {
			return false, err
		}
		c2col[j] = p
		defaultPool.PutScalarSlice(col)
	}

	// Equation 1: sum_i e(c_i.C1, D1[i]) == e(u.U11,phi00)+e(u.U21,phi10)+e(theta00,v.U11)+e(theta10,v.U21)
	lhs1, err := pairProduct(cC1, d1)
	if err != nil {
		return false, err
	}
	rhs1, err := pairProduct(
		[]bls12381.G1Affine{u.U11, u.U21, proof.Theta[0][0], proof.Theta[1][0]},
		[]bls12381.G2Affine{proof.Phi[0][0], proof.Phi[1][0], v.U11, v.U21},
	)
	if err != nil {
		return false, err
	}
	if lhs1 != rhs1 {
		return false, nil
	}

	// Equation 2: sum_i e(c_i.C1, B[i]+D2[i]) == e(u.U11,phi01)+e(u.U21,phi11)+e(theta00,v.U12)+e(theta10,v.U22)
	bPlusD2 := make([]bls12381.G2Affine, n)
	for i := 0; i < n; i++ {
		bPlusD2[i] = addG2(e.B[i], d2[i])
	}
	lhs2, err := pairProduct(cC1, bPlusD2)
	if err != nil {
		return false, err
	}
	rhs2, err := pairProduct(
		[]bls12381.G1Affine{u.U11, u.U21, proof.Theta[0][0], proof.Theta[1][0]},
		[]bls12381.G2Affine{proof.Phi[0][1], proof.Phi[1][1], v.U12, v.U22},
	)
	if err != nil {
		return false, err
	}
	if lhs2 != rhs2 {
		return false, nil
	}

	// Equation 3: sum_j e(A[j]+C2col[j], d_j.C1) == e(u.U12,phi00)+e(u.U22,phi10)+e(theta01,v.U11)+e(theta11,v.U21)
	aPlusC2 := make([]bls12381.G1Affine, m)
	for j := 0; j < m; j++ {
		aPlusC2[j] = addG1(e.A[j], c2col[j])
	}
	lhs3, err := pairProduct(aPlusC2, dC1)
	if err != nil {
		return false, err
	}
	rhs3, err := pairProduct(
		[]bls12381.G1Affine{u.U12, u.U22, proof.Theta[0][1], proof.Theta[1][1]},
		[]bls12381.G2Affine{proof.Phi[0][0], proof.Phi[1][0], v.U11, v.U21},
	)
	if err != nil {
		return false, err
	}
	if lhs3 != rhs3 {
		return false, nil
	}

	// Equation 4: sum_j e(A[j], d_j.C2) + sum_i e(c_i.C2, B[i]+D2[i]) ==
	//             Target + e(u.U12,phi01)+e(u.U22,phi11)+e(theta01,v.U12)+e(theta11,v.U22)
	aD, err := pairProduct(e.A, dC2)
	if err != nil {
		return false, err
	}
	cBD, err := pairProduct(cC2, bPlusD2)
	if err != nil {
		return false, err
	}
	lhs4 := gtAdd(aD, cBD)

	rhsTail, err := pairProduct(
		[]bls12381.G1Affine{u.U12, u.U22, proof.Theta[0][1], proof.Theta[1][1]},
		[]bls12381.G2Affine{proof.Phi[0][1], proof.Phi[1][1], v.U12, v.U22},
	)
	if err != nil {
		return false, err
	}
	rhs4 := gtAdd(e.Target, rhsTail)

	// Equality, not inequality: a satisfied equation has lhs4 == rhs4.
	return lhs4 == rhs4, nil
}

// gammaRow extracts row i of gamma using defaultPool's scratch slice, since
// Verify calls this once per row on every invocation.
func gammaRow(gamma Matrix, i int) []fr.Element {
	_, cols := gamma.Dim()
	out := defaultPool.GetScalarSlice(cols)
	for j := 0; j < cols; j++ {
		out = append(out, gamma.At(i, j))
	}
	return out
}

func gammaCol(gamma Matrix, j int) []fr.Element {
	rows, _ := gamma.Dim()
	out := defaultPool.GetScalarSlice(rows)
	for i := 0; i < rows; i++ {
		out = append(out, gamma.At(i, j))
	}
	return out
}

func addG1(a, b bls12381.G1Affine) bls12381.G1Affine {
	aJac := defaultPool.GetG1Jac()
	defer defaultPool.PutG1Jac(aJac)
	aJac.FromAffine(&a)
	var bJac bls12381.G1Jac
	bJac.FromAffine(&b)
	aJac.AddAssign(&bJac)
	return g1JacToAffine(*aJac)
}

func addG2(a, b bls12381.G2Affine) bls12381.G2Affine {
	aJac := defaultPool.GetG2Jac()
	defer defaultPool.PutG2Jac(aJac)
	aJac.FromAffine(&a)
	var bJac bls12381.G2Jac
	bJac.FromAffine(&b)
	aJac.AddAssign(&bJac)
	return g2JacToAffine(*aJac)
}
