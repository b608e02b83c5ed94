package dspf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ternarydpf/dpf"
	"ternarydpf/dspf"
	"ternarydpf/prf"
)

func newHandles(t *testing.T) (prf.Handle, prf.Handle, prf.Handle) {
	t.Helper()
	k0 := make([]byte, 16)
	k1 := make([]byte, 16)
	k2 := make([]byte, 16)
	k0[0], k1[0], k2[0] = 10, 11, 12

	p0, err := prf.NewAESHandle(k0)
	assert.NoError(t, err)
	p1, err := prf.NewAESHandle(k1)
	assert.NoError(t, err)
	p2, err := prf.NewAESHandle(k2)
	assert.NoError(t, err)
	return p0, p1, p2
}

func pow3(n int) int {
	r := 1
	for i := 0; i < n; i++ {
		r *= 3
	}
	return r
}

func TestGenRejectsEmptyPointSet(t *testing.T) {
	p0, p1, p2 := newHandles(t)
	_, _, err := dspf.Gen(p0, p1, p2, 4, nil)
	assert.ErrorIs(t, err, dspf.ErrEmptyPointSet)
}

func TestGenRejectsDuplicatePoints(t *testing.T) {
	p0, p1, p2 := newHandles(t)
	_, _, err := dspf.Gen(p0, p1, p2, 4, []uint64{5, 12, 5})
	assert.ErrorIs(t, err, dspf.ErrDuplicatePoint)
}

func TestGenRejectsDomainOverflow(t *testing.T) {
	p0, p1, p2 := newHandles(t)
	_, _, err := dspf.Gen(p0, p1, p2, 2, []uint64{0, 9}) // 3^2 == 9
	assert.ErrorIs(t, err, dpf.ErrDomainOverflow)
}

func TestGenEvalSinglePoint(t *testing.T) {
	p0, p1, p2 := newHandles(t)
	const n = 4
	alpha := uint64(7)

	kA, kB, err := dspf.Gen(p0, p1, p2, n, []uint64{alpha})
	assert.NoError(t, err)
	assert.Equal(t, 1, kA.PointCount())

	shareA, err := dspf.Eval(p0, p1, p2, kA, n)
	assert.NoError(t, err)
	shareB, err := dspf.Eval(p0, p1, p2, kB, n)
	assert.NoError(t, err)

	combined, err := dspf.Combine(shareA, shareB)
	assert.NoError(t, err)
	assert.Len(t, combined, pow3(n))

	var zero dpf.Word
	for i, w := range combined {
		if i == int(alpha) {
			assert.NotEqual(t, zero, w)
		} else {
			assert.Equal(t, zero, w)
		}
	}
}

func TestGenEvalMultiplePoints(t *testing.T) {
	p0, p1, p2 := newHandles(t)
	const n = 5
	alphas := []uint64{3, 17, 90, 200}

	kA, kB, err := dspf.Gen(p0, p1, p2, n, alphas)
	assert.NoError(t, err)

	shareA, err := dspf.Eval(p0, p1, p2, kA, n)
	assert.NoError(t, err)
	shareB, err := dspf.Eval(p0, p1, p2, kB, n)
	assert.NoError(t, err)

	combined, err := dspf.Combine(shareA, shareB)
	assert.NoError(t, err)
	assert.Len(t, combined, pow3(n))

	special := make(map[int]struct{}, len(alphas))
	for _, a := range alphas {
		special[int(a)] = struct{}{}
	}

	var zero dpf.Word
	for i, w := range combined {
		_, isSpecial := special[i]
		if isSpecial {
			assert.NotEqual(t, zero, w, "expected a nonzero share at index %d", i)
		} else {
			assert.Equal(t, zero, w, "expected a zero share at index %d", i)
		}
	}
}

func TestCombineRejectsLengthMismatch(t *testing.T) {
	_, err := dspf.Combine(make([]dpf.Word, 3), make([]dpf.Word, 4))
	assert.ErrorIs(t, err, dspf.ErrKeyCountMismatch)
}

func TestEvalRejectsEmptyKey(t *testing.T) {
	p0, p1, p2 := newHandles(t)
	_, err := dspf.Eval(p0, p1, p2, dspf.Key{}, 4)
	assert.ErrorIs(t, err, dspf.ErrEmptyPointSet)
}
