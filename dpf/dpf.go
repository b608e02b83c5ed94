// Package dpf implements a two-party Distributed Point Function over a
// ternary (base-3) domain, following the GGM-tree-with-correction-words
// construction of Boyle, Gilboa, and Ishai, "Function Secret Sharing"
// (EUROCRYPT 2015), specialized to arity three and a 128-bit XOR output
// group.
//
// A point function is zero everywhere on [0, 3^n) except at one secret
// index alpha, where it is nonzero. Generate splits such a function into
// two keys kA, kB; FullDomainEval expands one party's key into that
// party's share of the function over the entire domain. XORing the two
// parties' share vectors together reconstructs the point function.
//
// Naming conventions follow the reference construction: A and B refer to
// the two parties' shares, and 0, 1, 2 refer to the branch index in the
// ternary tree.
package dpf

import "errors"

// Error taxonomy. Every error Generate or FullDomainEval can return wraps
// exactly one of these sentinels; use errors.Is to discriminate.
var (
	// ErrDepthOutOfRange is returned when n <= 0 or 3^n overflows the
	// index type used to address the domain.
	ErrDepthOutOfRange = errors.New("dpf: depth out of range")

	// ErrDomainOverflow is returned by Generate when alpha >= 3^n.
	ErrDomainOverflow = errors.New("dpf: index outside of domain")

	// ErrInvalidTrit is a defensive error: the ternary-digit decoder
	// produced a value outside {0, 1, 2}. It cannot occur for any alpha
	// already checked against ErrDomainOverflow, but is reported rather
	// than silently ignored.
	ErrInvalidTrit = errors.New("dpf: invalid ternary digit")

	// ErrMalformedKey is returned when a key's byte length is
	// inconsistent with the depth it is being evaluated at.
	ErrMalformedKey = errors.New("dpf: malformed key")

	// ErrAllocationFailure is returned when FullDomainEval's 3^n-word
	// output buffer cannot be addressed on this platform.
	ErrAllocationFailure = errors.New("dpf: could not allocate evaluation buffer")

	// ErrRandomnessFailure is returned when the randomness source used by
	// Generate could not supply bytes.
	ErrRandomnessFailure = errors.New("dpf: randomness source failed")

	// ErrPRFFailure is returned when a PRF handle reports an error.
	ErrPRFFailure = errors.New("dpf: prf backend failed")
)
