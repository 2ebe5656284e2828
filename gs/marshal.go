package gs

import (
	"bytes"
	"encoding/binary"
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/groth-sahai/gs-ppe/internal/common"
)

// Binary serialization for the package's wire-level types uses a uint32
// big-endian length followed by the element's own Marshal() bytes, repeated
// field by field. Fixed-width encodings (Matrix's fr.Element entries) skip
// the prefix since their size is already known from the header; these
// multi-point structs keep it for their heterogeneous point fields.

func writeLP(buf *bytes.Buffer, b []byte) error {
	if err := binary.Write(buf, binary.BigEndian, uint32(len(b))); err != nil {
		return err
	}
	_, err := buf.Write(b)
	return err
}

func readLP(r *bytes.Reader) ([]byte, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, err
	}
	b := make([]byte, n)
	if _, err := r.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

func writeG1(buf *bytes.Buffer, p bls12381.G1Affine) error {
	return writeLP(buf, p.Marshal())
}

func readG1(r *bytes.Reader) (bls12381.G1Affine, error) {
	b, err := readLP(r)
	if err != nil {
		return bls12381.G1Affine{}, err
	}
	var p bls12381.G1Affine
	if err := p.Unmarshal(b); err != nil {
		return bls12381.G1Affine{}, err
	}
	return p, nil
}

func writeG2(buf *bytes.Buffer, p bls12381.G2Affine) error {
	return writeLP(buf, p.Marshal())
}

func readG2(r *bytes.Reader) (bls12381.G2Affine, error) {
	b, err := readLP(r)
	if err != nil {
		return bls12381.G2Affine{}, err
	}
	var p bls12381.G2Affine
	if err := p.Unmarshal(b); err != nil {
		return bls12381.G2Affine{}, err
	}
	return p, nil
}

func writeFr(buf *bytes.Buffer, e fr.Element) error {
	b := e.Bytes()
	return writeLP(buf, b[:])
}

func readFr(r *bytes.Reader) (fr.Element, error) {
	b, err := readLP(r)
	if err != nil {
		return fr.Element{}, err
	}
	var e fr.Element
	e.SetBytes(b)
	return e, nil
}

// MarshalBinary encodes a ComG1 as its two G1 points, C1 then C2.
func (c ComG1) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := writeG1(buf, c.C1); err != nil {
		return nil, err
	}
	if err := writeG1(buf, c.C2); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a ComG1 produced by MarshalBinary.
func (c *ComG1) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	c1, err := readG1(r)
	if err != nil {
		return err
	}
	c2, err := readG1(r)
	if err != nil {
		return err
	}
	c.C1, c.C2 = c1, c2
	return nil
}

// MarshalBinary encodes a ComG2 as its two G2 points, C1 then C2.
func (c ComG2) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := writeG2(buf, c.C1); err != nil {
		return nil, err
	}
	if err := writeG2(buf, c.C2); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a ComG2 produced by MarshalBinary.
func (c *ComG2) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	c1, err := readG2(r)
	if err != nil {
		return err
	}
	c2, err := readG2(r)
	if err != nil {
		return err
	}
	c.C1, c.C2 = c1, c2
	return nil
}

// MarshalBinary encodes the proof's two 2x2 point matrices, Phi (G2) then
// Theta (G1), row-major.
func (p Proof) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if err := writeG2(buf, p.Phi[i][j]); err != nil {
				return nil, err
			}
		}
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if err := writeG1(buf, p.Theta[i][j]); err != nil {
				return nil, err
			}
		}
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a Proof produced by MarshalBinary.
func (p *Proof) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	var phi [2][2]bls12381.G2Affine
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, err := readG2(r)
			if err != nil {
				return err
			}
			phi[i][j] = v
		}
	}
	var theta [2][2]bls12381.G1Affine
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, err := readG1(r)
			if err != nil {
				return err
			}
			theta[i][j] = v
		}
	}
	p.Phi, p.Theta = phi, theta
	return nil
}

// MarshalBinary encodes the commitment key's four G1 points.
func (ck CommitmentKeyG1) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	for _, p := range []bls12381.G1Affine{ck.U11, ck.U12, ck.U21, ck.U22} {
		if err := writeG1(buf, p); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a CommitmentKeyG1 produced by MarshalBinary.
func (ck *CommitmentKeyG1) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	pts := make([]bls12381.G1Affine, 4)
	for i := range pts {
		v, err := readG1(r)
		if err != nil {
			return err
		}
		pts[i] = v
	}
	ck.U11, ck.U12, ck.U21, ck.U22 = pts[0], pts[1], pts[2], pts[3]
	return nil
}

// MarshalBinary encodes the commitment key's four G2 points.
func (ck CommitmentKeyG2) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	for _, p := range []bls12381.G2Affine{ck.U11, ck.U12, ck.U21, ck.U22} {
		if err := writeG2(buf, p); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a CommitmentKeyG2 produced by MarshalBinary.
func (ck *CommitmentKeyG2) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	pts := make([]bls12381.G2Affine, 4)
	for i := range pts {
		v, err := readG2(r)
		if err != nil {
			return err
		}
		pts[i] = v
	}
	ck.U11, ck.U12, ck.U21, ck.U22 = pts[0], pts[1], pts[2], pts[3]
	return nil
}

// MarshalBinary encodes the CRS as its two generators followed by U and V.
func (crs CRS) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := writeG1(buf, crs.G1); err != nil {
		return nil, err
	}
	if err := writeG2(buf, crs.G2); err != nil {
		return nil, err
	}
	uBytes, err := crs.U.MarshalBinary()
	if err != nil {
		return nil, err
	}
	if err := writeLP(buf, uBytes); err != nil {
		return nil, err
	}
	vBytes, err := crs.V.MarshalBinary()
	if err != nil {
		return nil, err
	}
	if err := writeLP(buf, vBytes); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a CRS produced by MarshalBinary.
func (crs *CRS) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	g1, err := readG1(r)
	if err != nil {
		return err
	}
	g2, err := readG2(r)
	if err != nil {
		return err
	}
	uBytes, err := readLP(r)
	if err != nil {
		return err
	}
	var u CommitmentKeyG1
	if err := u.UnmarshalBinary(uBytes); err != nil {
		return err
	}
	vBytes, err := readLP(r)
	if err != nil {
		return err
	}
	var v CommitmentKeyG2
	if err := v.UnmarshalBinary(vBytes); err != nil {
		return err
	}
	crs.G1, crs.G2, crs.U, crs.V = g1, g2, u, v
	return nil
}

// MarshalBinary encodes an Equation: A, B, Gamma, Target in that order.
func (e Equation) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.BigEndian, uint32(len(e.A))); err != nil {
		return nil, err
	}
	for _, p := range e.A {
		if err := writeG1(buf, p); err != nil {
			return nil, err
		}
	}
	if err := binary.Write(buf, binary.BigEndian, uint32(len(e.B))); err != nil {
		return nil, err
	}
	for _, p := range e.B {
		if err := writeG2(buf, p); err != nil {
			return nil, err
		}
	}
	gammaBytes, err := e.Gamma.MarshalBinary()
	if err != nil {
		return nil, err
	}
	if err := writeLP(buf, gammaBytes); err != nil {
		return nil, err
	}
	if err := writeLP(buf, e.Target.Marshal()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes an Equation produced by MarshalBinary.
func (e *Equation) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	var aLen uint32
	if err := binary.Read(r, binary.BigEndian, &aLen); err != nil {
		return err
	}
	a := make([]bls12381.G1Affine, aLen)
	for i := range a {
		v, err := readG1(r)
		if err != nil {
			return err
		}
		a[i] = v
	}
	var bLen uint32
	if err := binary.Read(r, binary.BigEndian, &bLen); err != nil {
		return err
	}
	b := make([]bls12381.G2Affine, bLen)
	for i := range b {
		v, err := readG2(r)
		if err != nil {
			return err
		}
		b[i] = v
	}
	gammaBytes, err := readLP(r)
	if err != nil {
		return err
	}
	var gamma Matrix
	if err := gamma.UnmarshalBinary(gammaBytes); err != nil {
		return err
	}
	targetBytes, err := readLP(r)
	if err != nil {
		return err
	}
	var target GT
	if err := target.Unmarshal(targetBytes); err != nil {
		return err
	}
	e.A, e.B, e.Gamma, e.Target = a, b, gamma, target
	return nil
}

// MarshalBinary encodes a ProofSystem: its Equation, C, D, then Proof.
func (ps ProofSystem) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	equBytes, err := ps.Equation.MarshalBinary()
	if err != nil {
		return nil, err
	}
	if err := writeLP(buf, equBytes); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.BigEndian, uint32(len(ps.C))); err != nil {
		return nil, err
	}
	for _, c := range ps.C {
		cBytes, err := c.MarshalBinary()
		if err != nil {
			return nil, err
		}
		if err := writeLP(buf, cBytes); err != nil {
			return nil, err
		}
	}
	if err := binary.Write(buf, binary.BigEndian, uint32(len(ps.D))); err != nil {
		return nil, err
	}
	for _, d := range ps.D {
		dBytes, err := d.MarshalBinary()
		if err != nil {
			return nil, err
		}
		if err := writeLP(buf, dBytes); err != nil {
			return nil, err
		}
	}
	proofBytes, err := ps.Proof.MarshalBinary()
	if err != nil {
		return nil, err
	}
	if err := writeLP(buf, proofBytes); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a ProofSystem produced by MarshalBinary.
func (ps *ProofSystem) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	equBytes, err := readLP(r)
	if err != nil {
		return err
	}
	var equ Equation
	if err := equ.UnmarshalBinary(equBytes); err != nil {
		return err
	}

	var cLen uint32
	if err := binary.Read(r, binary.BigEndian, &cLen); err != nil {
		return err
	}
	c := make([]ComG1, cLen)
	for i := range c {
		cBytes, err := readLP(r)
		if err != nil {
			return err
		}
		if err := c[i].UnmarshalBinary(cBytes); err != nil {
			return err
		}
	}

	var dLen uint32
	if err := binary.Read(r, binary.BigEndian, &dLen); err != nil {
		return err
	}
	d := make([]ComG2, dLen)
	for i := range d {
		dBytes, err := readLP(r)
		if err != nil {
			return err
		}
		if err := d[i].UnmarshalBinary(dBytes); err != nil {
			return err
		}
	}

	proofBytes, err := readLP(r)
	if err != nil {
		return err
	}
	var proof Proof
	if err := proof.UnmarshalBinary(proofBytes); err != nil {
		return err
	}

	if equ.N() != len(c) || equ.M() != len(d) {
		return fmt.Errorf("gs-ppe: %w: decoded %d C and %d D commitments for a %dx%d equation", common.ErrDimensionMismatch, len(c), len(d), equ.N(), equ.M())
	}

	ps.Equation, ps.C, ps.D, ps.Proof = equ, c, d, proof
	return nil
}
