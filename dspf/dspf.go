// Package dspf implements a Distributed Sum of Point Functions over the
// same ternary domain as package dpf. A DSPF key bundles t independent
// ternary DPF keys so that their combined output vector can be nonzero at
// up to t secret indices instead of just one.
//
// Gen and Eval assume the t special points are pairwise distinct; repeated
// evaluation at the same index would not sum cleanly into separate shares.
package dspf

import (
	"errors"
	"fmt"

	"ternarydpf/dpf"
	"ternarydpf/prf"
)

// Error taxonomy, mirroring package dpf's convention of sentinel errors
// wrapped with context via fmt.Errorf("%w: ...").
var (
	// ErrEmptyPointSet is returned when Gen is called with no special points.
	ErrEmptyPointSet = errors.New("dspf: at least one special point is required")

	// ErrDuplicatePoint is returned when two special points passed to Gen
	// collide at the same domain index.
	ErrDuplicatePoint = errors.New("dspf: duplicate special point")

	// ErrKeyCountMismatch is returned by Combine when the two share vectors
	// it is given differ in length.
	ErrKeyCountMismatch = errors.New("dspf: key counts do not match")
)

// Key is one party's share of a DSPF key pair: t independent ternary DPF
// keys, one per special point given to Gen.
type Key struct {
	dpfKeys []dpf.Key
}

// PointCount returns the number of special points this key was generated
// for.
func (k Key) PointCount() int {
	return len(k.dpfKeys)
}

// Gen splits the multi-point function that is zero everywhere on [0, 3^n)
// except at each of alphas, into two DSPF key shares. alphas must be
// pairwise distinct and within the domain; p0, p1, p2 are passed straight
// through to dpf.Generate for every point.
func Gen(p0, p1, p2 prf.Handle, n int, alphas []uint64) (kA, kB Key, err error) {
	if len(alphas) == 0 {
		return Key{}, Key{}, ErrEmptyPointSet
	}

	seen := make(map[uint64]struct{}, len(alphas))
	for _, alpha := range alphas {
		if _, dup := seen[alpha]; dup {
			return Key{}, Key{}, fmt.Errorf("%w: %d", ErrDuplicatePoint, alpha)
		}
		seen[alpha] = struct{}{}
	}

	dpfKeysA := make([]dpf.Key, len(alphas))
	dpfKeysB := make([]dpf.Key, len(alphas))
	for i, alpha := range alphas {
		a, b, genErr := dpf.Generate(p0, p1, p2, n, alpha)
		if genErr != nil {
			return Key{}, Key{}, genErr
		}
		dpfKeysA[i] = a
		dpfKeysB[i] = b
	}

	return Key{dpfKeys: dpfKeysA}, Key{dpfKeys: dpfKeysB}, nil
}

// Eval expands key into this party's share of the combined multi-point
// function over the full domain [0, 3^n), by running dpf.FullDomainEval
// once per underlying DPF key and XORing the per-point results together.
//
// p0, p1, p2 must be the same three PRF handles given to Gen.
func Eval(p0, p1, p2 prf.Handle, key Key, n int) ([]dpf.Word, error) {
	if len(key.dpfKeys) == 0 {
		return nil, ErrEmptyPointSet
	}

	size, err := dpf.DomainSize(n)
	if err != nil {
		return nil, err
	}

	out := make([]dpf.Word, size)
	for _, dk := range key.dpfKeys {
		share, evalErr := dpf.FullDomainEval(p0, p1, p2, dk, n)
		if evalErr != nil {
			return nil, evalErr
		}
		for i, w := range share {
			out[i] = dpf.XOR(out[i], w)
		}
	}
	return out, nil
}

// Combine XORs two parties' already-evaluated share vectors together,
// reconstructing the DSPF's full-domain output. It is equivalent to calling
// dpf.XOR element-wise but checks the vectors are the same length first.
func Combine(shareA, shareB []dpf.Word) ([]dpf.Word, error) {
	if len(shareA) != len(shareB) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrKeyCountMismatch, len(shareA), len(shareB))
	}
	out := make([]dpf.Word, len(shareA))
	for i := range out {
		out[i] = dpf.XOR(shareA[i], shareB[i])
	}
	return out, nil
}
