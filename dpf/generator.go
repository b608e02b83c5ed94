package dpf

import (
	"fmt"

	"ternarydpf/prf"
)

// Generate samples a fresh pair of ternary DPF keys splitting the point
// function that is zero everywhere on [0, 3^n) except at alpha, where the
// two parties' shares XOR to a nonzero value with overwhelming probability.
//
// p0, p1, p2 must be three independently keyed PRF handles; the same three
// handles (or three behaviorally identical ones) must later be given to
// both parties' calls to FullDomainEval.
//
// Generate is not deterministic: every call draws fresh randomness for the
// two starting seeds and for one correction word per tree level, so two
// calls with identical (p0, p1, p2, n, alpha) produce different key pairs.
func Generate(p0, p1, p2 prf.Handle, n int, alpha uint64) (kA, kB Key, err error) {
	size, err := DomainSize(n)
	if err != nil {
		return Key{}, Key{}, err
	}
	if alpha >= size {
		return Key{}, Key{}, fmt.Errorf("%w: alpha=%d, domain size=%d", ErrDomainOverflow, alpha, size)
	}

	rawA := make([]byte, KeySize(n))
	rawB := make([]byte, KeySize(n))

	seedA, err := randomWord()
	if err != nil {
		return Key{}, Key{}, err
	}
	seedB, err := randomWord()
	if err != nil {
		return Key{}, Key{}, err
	}

	// The control bit on the special path must XOR to 1 at the root.
	if lsb(seedA)^lsb(seedB) == 0 {
		seedA = flipLSB(seedA)
	}
	copy(rawA[:wordSize], seedA[:])
	copy(rawB[:wordSize], seedB[:])

	handles := [3]prf.Handle{p0, p1, p2}
	parentA, parentB := seedA, seedB

	for i := 0; i < n; i++ {
		var sA, sB [3]Word
		for b := 0; b < 3; b++ {
			if sA[b], err = handles[b].Eval(parentA); err != nil {
				return Key{}, Key{}, fmt.Errorf("%w: %v", ErrPRFFailure, err)
			}
			if sB[b], err = handles[b].Eval(parentB); err != nil {
				return Key{}, Key{}, fmt.Errorf("%w: %v", ErrPRFFailure, err)
			}
		}

		r, err := randomWord()
		if err != nil {
			return Key{}, Key{}, err
		}

		t, err := trit(alpha, n, i)
		if err != nil {
			return Key{}, Key{}, err
		}

		// On-path correction: force the control bit one level deeper to
		// stay 1 on the special path.
		onPath := xor(xor(sA[t], sB[t]), r)
		if lsb(onPath) == 0 {
			r = flipLSB(r)
		}

		var cw [3]Word
		for b := uint8(0); b < 3; b++ {
			if b == t {
				cw[b] = r
			} else {
				cw[b] = xor(sA[b], sB[b])
			}
		}

		// The party whose control bit is currently 1 applies the
		// correction when advancing to the next level's special-path node.
		if lsb(parentA) == 1 {
			parentA, parentB = xor(sA[t], r), sB[t]
		} else {
			parentA, parentB = sA[t], xor(sB[t], r)
		}

		for b := 0; b < 3; b++ {
			off := wordSize + wordSize*n*b + wordSize*i
			copy(rawA[off:off+wordSize], cw[b][:])
			copy(rawB[off:off+wordSize], cw[b][:])
		}
	}

	return Key{raw: rawA, n: n}, Key{raw: rawB, n: n}, nil
}
