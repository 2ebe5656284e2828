package gs

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// GT is the target group of the pairing. gnark-crypto represents it
// multiplicatively; the pairing-product literature's additive notation for
// G_T ("+"/"zero"/"scalar.point") is the customary abuse of notation for
// this group and maps onto Mul/SetOne/Exp here.
type GT = bls12381.GT

// pairProduct evaluates prod_i e(p[i], q[i]) with a single batched Miller
// loop and final exponentiation. Passing a nil/empty pair of slices yields
// the GT identity.
func pairProduct(p []bls12381.G1Affine, q []bls12381.G2Affine) (GT, error) {
	if len(p) == 0 {
		var one GT
		one.SetOne()
		return one, nil
	}
	return bls12381.Pair(p, q)
}

// gtZero is the multiplicative identity of G_T, standing in for the
// additive zero of the target group under its customary additive notation.
func gtZero() GT {
	var one GT
	one.SetOne()
	return one
}

// gtAdd implements additive notation's "+" on G_T as GT multiplication.
func gtAdd(a, b GT) GT {
	var out GT
	out.Mul(&a, &b)
	return out
}

// gtScalarMul implements additive notation's "scalar . point" on G_T as
// exponentiation.
func gtScalarMul(base GT, scalar fr.Element) GT {
	var out GT
	out.Exp(base, fieldToBigInt(scalar))
	return out
}
