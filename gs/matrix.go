package gs

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/groth-sahai/gs-ppe/internal/common"
	"github.com/groth-sahai/gs-ppe/pkg/utils"
)

// Matrix is a dense, row-major container over the scalar field fr.Element.
// It backs the gamma matrix of a pairing product equation and the 2x2
// randomizer Z sampled by the prover. Only the small set of operations the
// rest of the package needs is implemented; a full linear-algebra package
// would be dead weight here.
type Matrix struct {
	rows, cols int
	data       []fr.Element // row-major, len == rows*cols
}

// NewMatrixFromRows builds a Matrix from literal rows. All rows must have
// the same length.
func NewMatrixFromRows(rows [][]fr.Element) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{rows: 0, cols: 0}, nil
	}
	cols := len(rows[0])
	data := make([]fr.Element, 0, len(rows)*cols)
	for _, row := range rows {
		if len(row) != cols {
			return Matrix{}, fmt.Errorf("gs-ppe: %w: ragged matrix rows", common.ErrDimensionMismatch)
		}
		data = append(data, row...)
	}
	return Matrix{rows: len(rows), cols: cols, data: data}, nil
}

// ZeroMatrix returns an r x c matrix of zero field elements.
func ZeroMatrix(r, c int) Matrix {
	return Matrix{rows: r, cols: c, data: make([]fr.Element, r*c)}
}

// ZeroColumn returns a 0 x n matrix; it acts as the identity element for
// Axis0Concat (row concatenation), letting equation composition start an
// accumulation from "nothing" without a special case.
func ZeroColumn(n int) Matrix {
	return Matrix{rows: 0, cols: n, data: nil}
}

// RandMatrix returns an r x c matrix of independently uniform field
// elements, drawn from rng (crypto/rand.Reader if rng is nil).
func RandMatrix(rng io.Reader, r, c int) (Matrix, error) {
	m := Matrix{rows: r, cols: c, data: make([]fr.Element, r*c)}
	for i := range m.data {
		e, err := utils.RandomFieldElement(rng)
		if err != nil {
			return Matrix{}, fmt.Errorf("gs-ppe: sampling matrix entry: %w", err)
		}
		m.data[i] = e
	}
	return m, nil
}

// Dim returns (rows, cols).
func (m Matrix) Dim() (int, int) { return m.rows, m.cols }

// At returns the (i, j) entry.
func (m Matrix) At(i, j int) fr.Element {
	return m.data[i*m.cols+j]
}

// Set writes the (i, j) entry in place.
func (m *Matrix) Set(i, j int, v fr.Element) {
	m.data[i*m.cols+j] = v
}

// Add returns the elementwise sum of two same-shape matrices.
func (m Matrix) Add(other Matrix) (Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return Matrix{}, common.ErrDimensionMismatch
	}
	out := Matrix{rows: m.rows, cols: m.cols, data: make([]fr.Element, len(m.data))}
	for i := range m.data {
		out.data[i].Add(&m.data[i], &other.data[i])
	}
	return out, nil
}

// Neg returns the elementwise negation.
func (m Matrix) Neg() Matrix {
	out := Matrix{rows: m.rows, cols: m.cols, data: make([]fr.Element, len(m.data))}
	for i := range m.data {
		out.data[i].Neg(&m.data[i])
	}
	return out
}

// Axis0Concat stacks two matrices vertically (row concatenation); both must
// have the same column count.
func Axis0Concat(top, bottom Matrix) (Matrix, error) {
	if top.cols != bottom.cols {
		return Matrix{}, common.ErrDimensionMismatch
	}
	out := Matrix{rows: top.rows + bottom.rows, cols: top.cols}
	out.data = append(append([]fr.Element{}, top.data...), bottom.data...)
	return out, nil
}

// Axis1Concat places two matrices side by side (column concatenation); both
// must have the same row count.
func Axis1Concat(left, right Matrix) (Matrix, error) {
	if left.rows != right.rows {
		return Matrix{}, common.ErrDimensionMismatch
	}
	out := Matrix{rows: left.rows, cols: left.cols + right.cols}
	out.data = make([]fr.Element, 0, out.rows*out.cols)
	for i := 0; i < left.rows; i++ {
		out.data = append(out.data, left.data[i*left.cols:(i+1)*left.cols]...)
		out.data = append(out.data, right.data[i*right.cols:(i+1)*right.cols]...)
	}
	return out, nil
}

// BlockDiag builds the block-diagonal composition of two matrices: the
// result has top.Dim() + bottom.Dim() shape, with top in the upper-left
// block, bottom in the lower-right block, and zeros elsewhere. This is the
// construction equation composition uses for the combined gamma.
func BlockDiag(top, bottom Matrix) (Matrix, error) {
	topRow, err := Axis1Concat(top, ZeroMatrix(top.rows, bottom.cols))
	if err != nil {
		return Matrix{}, err
	}
	botRow, err := Axis1Concat(ZeroMatrix(bottom.rows, top.cols), bottom)
	if err != nil {
		return Matrix{}, err
	}
	return Axis0Concat(topRow, botRow)
}

// ToRows returns the matrix as a vector of row vectors, the representation
// canonical serialization is built on.
func (m Matrix) ToRows() [][]fr.Element {
	rows := make([][]fr.Element, m.rows)
	for i := 0; i < m.rows; i++ {
		rows[i] = append([]fr.Element{}, m.data[i*m.cols:(i+1)*m.cols]...)
	}
	return rows
}

// MarshalBinary encodes the matrix as [rows(4)][cols(4)][entry bytes...],
// row-major, one fixed-width fr.Element encoding per entry.
func (m Matrix) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 8, 8+len(m.data)*fr.Bytes)
	binary.BigEndian.PutUint32(buf[0:4], uint32(m.rows))
	binary.BigEndian.PutUint32(buf[4:8], uint32(m.cols))
	for i := range m.data {
		b := m.data[i].Bytes()
		buf = append(buf, b[:]...)
	}
	return buf, nil
}

// UnmarshalBinary decodes a matrix produced by MarshalBinary.
func (m *Matrix) UnmarshalBinary(data []byte) error {
	if len(data) < 8 {
		return fmt.Errorf("gs-ppe: %w: truncated matrix header", common.ErrInvalidParameter)
	}
	rows := int(binary.BigEndian.Uint32(data[0:4]))
	cols := int(binary.BigEndian.Uint32(data[4:8]))
	want := 8 + rows*cols*fr.Bytes
	if len(data) != want {
		return fmt.Errorf("gs-ppe: %w: matrix body length %d, want %d", common.ErrInvalidParameter, len(data), want)
	}
	out := Matrix{rows: rows, cols: cols, data: make([]fr.Element, rows*cols)}
	offset := 8
	for i := range out.data {
		var b [fr.Bytes]byte
		copy(b[:], data[offset:offset+fr.Bytes])
		out.data[i].SetBytes(b[:])
		offset += fr.Bytes
	}
	*m = out
	return nil
}
