package gs

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// ExtractionKey is the trapdoor (alpha1, alpha2) that SetupEx returns
// alongside a binding CRS. It exists only for CRSes built in binding mode;
// it has no meaning against a witness-indistinguishable CRS (there is no
// trapdoor to extract).
type ExtractionKey struct {
	Alpha1, Alpha2 fr.Element
}

// Extract1 recovers the G1 witness value committed in c: for an honest
// commitment c = (r1*g1 + r2*t1*g1, x + r1*alpha1*g1 + r2*alpha1*t1*g1),
// -alpha1*c1 + c2 = x.
func (ek ExtractionKey) Extract1(c ComG1) bls12381.G1Affine {
	var c1Jac bls12381.G1Jac
	c1Jac.FromAffine(&c.C1)

	var negAlpha1 fr.Element
	negAlpha1.Neg(&ek.Alpha1)
	c1Jac.ScalarMultiplication(&c1Jac, fieldToBigInt(negAlpha1))

	var c2Jac bls12381.G1Jac
	c2Jac.FromAffine(&c.C2)
	c1Jac.AddAssign(&c2Jac)

	return g1JacToAffine(c1Jac)
}

// Extract2 is the G2 counterpart of Extract1.
func (ek ExtractionKey) Extract2(c ComG2) bls12381.G2Affine {
	var c1Jac bls12381.G2Jac
	c1Jac.FromAffine(&c.C1)

	var negAlpha2 fr.Element
	negAlpha2.Neg(&ek.Alpha2)
	c1Jac.ScalarMultiplication(&c1Jac, fieldToBigInt(negAlpha2))

	var c2Jac bls12381.G2Jac
	c2Jac.FromAffine(&c.C2)
	c1Jac.AddAssign(&c2Jac)

	return g2JacToAffine(c1Jac)
}
