package dpf

import (
	"fmt"
	"math"
)

// DomainSize returns 3^n as a uint64, the size of the domain at depth n.
// It fails closed: n <= 0 or an intermediate product overflowing uint64
// both report ErrDepthOutOfRange rather than wrapping around silently.
func DomainSize(n int) (uint64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: depth %d must be positive", ErrDepthOutOfRange, n)
	}
	size := uint64(1)
	for i := 0; i < n; i++ {
		if size > math.MaxUint64/3 {
			return 0, fmt.Errorf("%w: 3^%d overflows the index type", ErrDepthOutOfRange, n)
		}
		size *= 3
	}
	return size, nil
}

// trit returns the i-th ternary digit of alpha in a depth-n tree, with
// digit 0 the least significant: alpha = sum_i trit(alpha,n,i) * 3^i.
// This is the order FullDomainEval lays leaves out in (the branch-b
// children of an m-node frontier occupy slots [b*m, (b+1)*m)), so the
// special path picked by these digits ends at output index alpha.
// It is the special path's branch selector at level i.
func trit(alpha uint64, n, i int) (uint8, error) {
	place := uint64(1)
	for k := 0; k < i; k++ {
		place *= 3
	}
	t := (alpha / place) % 3
	if t > 2 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidTrit, t)
	}
	return uint8(t), nil
}
