package gs

import (
	"sync"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Pool provides scratch allocations for the hot loops in Equation.Verify,
// Prove, and RdProof: per-row/per-column gamma scalar slices and Jacobian
// accumulators, all of which are allocated and discarded once per call.
// It never stores or retains an RNG, so it is safe to share across
// concurrently-running proofs and verifications; sync.Pool handles its own
// internal locking.
type Pool struct {
	scalarSlicePool sync.Pool
	g1Pool          sync.Pool
	g2Pool          sync.Pool
}

// NewPool creates an empty Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		scalarSlicePool: sync.Pool{
			New: func() interface{} {
				return make([]fr.Element, 0, 8)
			},
		},
		g1Pool: sync.Pool{
			New: func() interface{} {
				return new(bls12381.G1Jac)
			},
		},
		g2Pool: sync.Pool{
			New: func() interface{} {
				return new(bls12381.G2Jac)
			},
		},
	}
}

var defaultPool = NewPool()

// GetScalarSlice returns a zero-length []fr.Element with at least capacity
// elements of backing storage.
func (p *Pool) GetScalarSlice(capacity int) []fr.Element {
	slice := p.scalarSlicePool.Get().([]fr.Element)
	if cap(slice) < capacity {
		return make([]fr.Element, 0, capacity)
	}
	return slice[:0]
}

// PutScalarSlice returns slice to the pool for reuse.
func (p *Pool) PutScalarSlice(slice []fr.Element) {
	if slice != nil {
		p.scalarSlicePool.Put(slice) //nolint:staticcheck // reused as scratch, contents overwritten before next read
	}
}

// GetG1Jac returns a G1 Jacobian accumulator; its value is not zeroed, the
// caller must assign before accumulating (e.g. g.FromAffine or g.Set).
func (p *Pool) GetG1Jac() *bls12381.G1Jac {
	return p.g1Pool.Get().(*bls12381.G1Jac)
}

// PutG1Jac returns g to the pool.
func (p *Pool) PutG1Jac(g *bls12381.G1Jac) {
	if g != nil {
		p.g1Pool.Put(g)
	}
}

// GetG2Jac returns a G2 Jacobian accumulator; its value is not zeroed.
func (p *Pool) GetG2Jac() *bls12381.G2Jac {
	return p.g2Pool.Get().(*bls12381.G2Jac)
}

// PutG2Jac returns g to the pool.
func (p *Pool) PutG2Jac(g *bls12381.G2Jac) {
	if g != nil {
		p.g2Pool.Put(g)
	}
}
