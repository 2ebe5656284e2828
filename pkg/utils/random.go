package utils

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// RandomFieldElement samples a uniform scalar field element from reader,
// using crypto/rand.Reader if reader is nil. It oversamples bytes and
// reduces modulo the field order via fr.Element.SetBytes, rather than
// relying on fr.Element.SetRandom, which always reads from crypto/rand and
// so cannot be driven by a seeded reader.
// This is the single RNG entry point gs threads through CRS setup, witness
// sampling, and the prover's Z matrix, giving callers who pass a seeded
// reader fully reproducible proofs.
func RandomFieldElement(reader io.Reader) (fr.Element, error) {
	if reader == nil {
		reader = rand.Reader
	}

	var buf [fr.Bytes + 16]byte // oversample above the ~255-bit modulus
	if _, err := io.ReadFull(reader, buf[:]); err != nil {
		return fr.Element{}, fmt.Errorf("gs-ppe: sampling field element: %w", err)
	}

	var e fr.Element
	e.SetBytes(buf[:])
	return e, nil
}
