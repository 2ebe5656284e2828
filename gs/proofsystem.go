package gs

import (
	"fmt"
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/groth-sahai/gs-ppe/internal/common"
	"github.com/groth-sahai/gs-ppe/pkg/crypto"
)

// AY pairs a G1 constant with the G2 witness it is tested against in an
// equation's target (the a_j, y_j terms).
type AY struct {
	A bls12381.G1Affine
	Y VariableG2
}

// XB pairs a G1 witness with the G2 constant it is tested against (the
// x_i, b_i terms).
type XB struct {
	X VariableG1
	B bls12381.G2Affine
}

// ProofSystem bundles an Equation with the commitments and proof that
// witness it: (E, C, D, Proof). It is immutable after construction except
// through Randomize, which mutates C, D, and Proof in place to keep them
// mutually consistent.
type ProofSystem struct {
	Equation Equation
	C        []ComG1
	D        []ComG2
	Proof    Proof
}

// Setup builds a ProofSystem: it derives the equation's target from ay/xb
// and gamma, commits every witness under crs, and proves the equation holds.
// len(xb) must equal gamma's row count and len(ay) must equal gamma's column
// count.
func Setup(rng io.Reader, crs CRS, ay []AY, xb []XB, gamma Matrix) (ProofSystem, error) {
	rows, cols := gamma.Dim()
	if rows != len(xb) || cols != len(ay) {
		return ProofSystem{}, fmt.Errorf("gs-ppe: %w: gamma is %dx%d, want %dx%d", common.ErrDimensionMismatch, rows, cols, len(xb), len(ay))
	}

	a := make([]bls12381.G1Affine, len(ay))
	y := make([]VariableG2, len(ay))
	for j, p := range ay {
		a[j] = p.A
		y[j] = p.Y
	}
	x := make([]VariableG1, len(xb))
	b := make([]bls12381.G2Affine, len(xb))
	for i, p := range xb {
		x[i] = p.X
		b[i] = p.B
	}

	target, err := computeTarget(a, y, x, b, gamma)
	if err != nil {
		return ProofSystem{}, err
	}

	equ, err := NewEquation(a, b, gamma, target)
	if err != nil {
		return ProofSystem{}, err
	}

	c := make([]ComG1, len(x))
	for i, xi := range x {
		c[i] = crs.U.Commit(xi)
	}
	d := make([]ComG2, len(y))
	for j, yj := range y {
		d[j] = crs.V.Commit(yj)
	}

	proof, err := Prove(rng, crs, equ, x, y)
	if err != nil {
		return ProofSystem{}, err
	}

	return ProofSystem{Equation: equ, C: c, D: d, Proof: proof}, nil
}

// computeTarget evaluates T = prod_j e(a_j, y_j.Value) * prod_i e(x_i.Value, b_i)
// * prod_i,j e(x_i.Value, y_j.Value)^Gamma[i,j], each product folded into one
// batched pairing call.
func computeTarget(a []bls12381.G1Affine, y []VariableG2, x []VariableG1, b []bls12381.G2Affine, gamma Matrix) (GT, error) {
	yValues := make([]bls12381.G2Affine, len(y))
	for j, yj := range y {
		yValues[j] = yj.Value
	}
	term1, err := pairProduct(a, yValues)
	if err != nil {
		return GT{}, err
	}

	xValues := make([]bls12381.G1Affine, len(x))
	for i, xi := range x {
		xValues[i] = xi.Value
	}
	term2, err := pairProduct(xValues, b)
	if err != nil {
		return GT{}, err
	}

	crossY := make([]bls12381.G2Affine, len(x))
	for i := range x {
		row := gammaRow(gamma, i)
		p, err := crypto.MultiScalarMulG2(yValues, row)
		if err != nil {
			return GT{}, err
		}
		crossY[i] = p
		defaultPool.PutScalarSlice(row)
	}
	term3, err := pairProduct(xValues, crossY)
	if err != nil {
		return GT{}, err
	}

	return gtAdd(gtAdd(term1, term2), term3), nil
}

// Randomize re-randomizes every commitment in ps and the proof that binds
// them, mutating ps in place. Each call consumes fresh randomness from rng
// and leaves ps satisfying the same equation under a statistically
// independent blinding.
func (ps *ProofSystem) Randomize(rng io.Reader, crs CRS) error {
	cr := make([]CommitmentUpdateG1, len(ps.C))
	for i := range ps.C {
		pre, r, err := crs.U.Randomize(rng, &ps.C[i])
		if err != nil {
			return err
		}
		cr[i] = CommitmentUpdateG1{Pre: pre, R: r}
	}

	ds := make([]CommitmentUpdateG2, len(ps.D))
	for j := range ps.D {
		pre, s, err := crs.V.Randomize(rng, &ps.D[j])
		if err != nil {
			return err
		}
		ds[j] = CommitmentUpdateG2{Pre: pre, S: s}
	}

	return ps.Proof.RdProof(rng, crs, ps.Equation, cr, ds)
}

// Add combines ps and other into the proof system for their conjunction:
// commitments concatenate, the equation composes (block-diagonal gamma),
// and the proof matrices add elementwise. The witness order in the
// combined ProofSystem is ps's witnesses followed by other's.
func (ps ProofSystem) Add(other ProofSystem) (ProofSystem, error) {
	equ, err := ps.Equation.Compose(other.Equation)
	if err != nil {
		return ProofSystem{}, err
	}

	c := append(append([]ComG1{}, ps.C...), other.C...)
	d := append(append([]ComG2{}, ps.D...), other.D...)

	proof := Proof{
		Phi: [2][2]bls12381.G2Affine{
			{addG2(ps.Proof.Phi[0][0], other.Proof.Phi[0][0]), addG2(ps.Proof.Phi[0][1], other.Proof.Phi[0][1])},
			{addG2(ps.Proof.Phi[1][0], other.Proof.Phi[1][0]), addG2(ps.Proof.Phi[1][1], other.Proof.Phi[1][1])},
		},
		Theta: [2][2]bls12381.G1Affine{
			{addG1(ps.Proof.Theta[0][0], other.Proof.Theta[0][0]), addG1(ps.Proof.Theta[0][1], other.Proof.Theta[0][1])},
			{addG1(ps.Proof.Theta[1][0], other.Proof.Theta[1][0]), addG1(ps.Proof.Theta[1][1], other.Proof.Theta[1][1])},
		},
	}

	return ProofSystem{Equation: equ, C: c, D: d, Proof: proof}, nil
}

// Verify checks that ps's proof witnesses its equation under crs.
func (ps ProofSystem) Verify(crs CRS) (bool, error) {
	return ps.Equation.Verify(crs.U, crs.V, ps.C, ps.D, ps.Proof)
}
