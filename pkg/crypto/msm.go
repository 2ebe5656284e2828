// Package crypto provides multi-scalar multiplication helpers shared by the
// gs-ppe prover and verifier, fronting gnark-crypto's MultiExp rather than a
// hand-rolled bucketing implementation.
package crypto

import (
	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/groth-sahai/gs-ppe/internal/common"
)

// MultiScalarMulG1 computes sum(points[i] * scalars[i]) in G1. It is used by
// the verifier to fold gamma-weighted commitment columns (sum_i Gamma[i,j] *
// c_i.C2) into a single point before pairing, turning an O(n*m) pairing
// count into O(n+m); MultiScalarMulG2 does the same for the G2-side D_jk and
// B_i terms.
func MultiScalarMulG1(points []bls12381.G1Affine, scalars []fr.Element) (bls12381.G1Affine, error) {
	if len(points) != len(scalars) {
		return bls12381.G1Affine{}, common.ErrDimensionMismatch
	}
	if len(points) == 0 {
		return bls12381.G1Affine{}, nil
	}
	var result bls12381.G1Affine
	if _, err := result.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		return bls12381.G1Affine{}, err
	}
	return result, nil
}

// MultiScalarMulG2 is the G2 counterpart of MultiScalarMulG1.
func MultiScalarMulG2(points []bls12381.G2Affine, scalars []fr.Element) (bls12381.G2Affine, error) {
	if len(points) != len(scalars) {
		return bls12381.G2Affine{}, common.ErrDimensionMismatch
	}
	if len(points) == 0 {
		return bls12381.G2Affine{}, nil
	}
	var result bls12381.G2Affine
	if _, err := result.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		return bls12381.G2Affine{}, err
	}
	return result, nil
}
