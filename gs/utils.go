package gs

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// g1JacToAffine converts a G1 Jacobian accumulator to its affine
// representation, the form every public type stores and serializes.
func g1JacToAffine(p bls12381.G1Jac) bls12381.G1Affine {
	result := bls12381.G1Affine{}
	result.FromJacobian(&p)
	return result
}

// g2JacToAffine is the G2 counterpart of g1JacToAffine.
func g2JacToAffine(p bls12381.G2Jac) bls12381.G2Affine {
	result := bls12381.G2Affine{}
	result.FromJacobian(&p)
	return result
}

// fieldToBigInt converts a scalar field element to the big.Int
// representation gnark-crypto's ScalarMultiplication/MultiExp APIs take.
func fieldToBigInt(e fr.Element) *big.Int {
	var out big.Int
	e.BigInt(&out)
	return &out
}

// scalarMulG1 returns p*s.
func scalarMulG1(p bls12381.G1Affine, s fr.Element) bls12381.G1Affine {
	var pJac bls12381.G1Jac
	pJac.FromAffine(&p)
	pJac.ScalarMultiplication(&pJac, fieldToBigInt(s))
	return g1JacToAffine(pJac)
}

// scalarMulG2 returns p*s.
func scalarMulG2(p bls12381.G2Affine, s fr.Element) bls12381.G2Affine {
	var pJac bls12381.G2Jac
	pJac.FromAffine(&p)
	pJac.ScalarMultiplication(&pJac, fieldToBigInt(s))
	return g2JacToAffine(pJac)
}
