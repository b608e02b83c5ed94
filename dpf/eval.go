package dpf

import (
	"fmt"
	"math"

	"ternarydpf/prf"
)

// FullDomainEval expands key's GGM tree level by level and returns this
// party's share of the point function at every one of the domain's 3^n
// points. XORing the two parties' vectors together (see XOR) reconstructs
// the point function.
//
// p0, p1, p2 must be the same three PRF handles (or three behaviorally
// identical ones) used by the Generate call that produced key.
//
// Each level is expanded exactly once via three batched PRF calls over the
// current frontier, rather than walking the tree once per leaf, so the
// whole domain is covered in O(3^n) PRF evaluations instead of O(n * 3^n).
func FullDomainEval(p0, p1, p2 prf.Handle, key Key, n int) ([]Word, error) {
	if key.Depth() != n {
		return nil, fmt.Errorf("%w: key depth %d does not match requested depth %d", ErrMalformedKey, key.Depth(), n)
	}
	if len(key.Bytes()) != KeySize(n) {
		return nil, fmt.Errorf("%w: got %d bytes, want %d for depth %d", ErrMalformedKey, len(key.Bytes()), KeySize(n), n)
	}

	size, err := DomainSize(n)
	if err != nil {
		return nil, err
	}
	if size > math.MaxInt {
		return nil, fmt.Errorf("%w: domain size %d exceeds addressable memory", ErrAllocationFailure, size)
	}

	out := make([]Word, size)
	scratch := make([]Word, size)
	out[0] = key.seed()

	handles := [3]prf.Handle{p0, p1, p2}
	numNodes := 1
	for i := 0; i < n; i++ {
		m := numNodes
		for b := 0; b < 3; b++ {
			if err := handles[b].BatchEval(out[:m], scratch[b*m:(b+1)*m]); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrPRFFailure, err)
			}
		}

		cw0 := key.correctionWord(0, i)
		cw1 := key.correctionWord(1, i)
		cw2 := key.correctionWord(2, i)

		for j := 0; j < m; j++ {
			if lsb(out[j]) == 1 {
				out[j] = xor(scratch[j], cw0)
				out[j+m] = xor(scratch[j+m], cw1)
				out[j+2*m] = xor(scratch[j+2*m], cw2)
			} else {
				out[j] = scratch[j]
				out[j+m] = scratch[j+m]
				out[j+2*m] = scratch[j+2*m]
			}
		}

		numNodes *= 3
	}

	return out[:size], nil
}
