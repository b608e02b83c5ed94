// Package prf defines the pseudorandom-function contract the ternary
// Distributed Point Function construction (package dpf) treats as a black
// box, plus a fixed-key AES instantiation of it.
package prf

// Word is a 128-bit value exchanged with a Handle: one seed in, one
// pseudorandom seed out. Its 16 bytes are little-endian.
type Word [16]byte

// Handle is a keyed pseudorandom function over 128-bit words, as required
// by package dpf's construction. Three independently keyed handles must be
// supplied everywhere the construction calls for P0, P1, P2: the same three
// handles used by Generate must also be given to both parties' calls to
// FullDomainEval.
//
// A Handle is a borrowed resource for the duration of a call: implementers
// are not required to be safe for concurrent use unless they document
// otherwise, and callers must not mutate a Handle's key material while a
// call that holds it is in flight.
type Handle interface {
	// Eval expands a single 128-bit seed into a pseudorandom 128-bit seed.
	Eval(in Word) (Word, error)

	// BatchEval applies Eval to every element of in, writing results into
	// out. out must have the same length as in. Implementations may
	// pipeline the underlying primitive across the batch to amortize setup
	// cost; callers should prefer BatchEval over a loop of Eval calls
	// whenever more than one word needs expanding under the same handle.
	BatchEval(in []Word, out []Word) error
}
