package prf

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// AESHandle instantiates Handle as a fixed-key AES permutation: each Eval is
// one AES block encryption of the 128-bit input under a key this handle
// owns. This is the instantiation the construction's design notes call out
// as the expected one, and the one the reference C implementation builds on
// top of an EVP_CIPHER_CTX for.
type AESHandle struct {
	block cipher.Block
}

// NewAESHandle keys an AES permutation from key, whose length selects the
// variant: 16 bytes for AES-128, 24 for AES-192, 32 for AES-256. The three
// handles passed to Generate and FullDomainEval must be keyed independently
// of one another.
func NewAESHandle(key []byte) (*AESHandle, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("prf: new aes handle: %w", err)
	}
	return &AESHandle{block: block}, nil
}

// Eval encrypts in under h's key, treating the cipher as a fixed-key
// permutation rather than a mode of operation: there is no IV, no chaining,
// and no padding, because the input is always exactly one 128-bit block.
func (h *AESHandle) Eval(in Word) (Word, error) {
	var out Word
	h.block.Encrypt(out[:], in[:])
	return out, nil
}

// BatchEval encrypts every word of in under h's key. The AES block API is
// already single-block; batching here amortizes the call overhead rather
// than pipelining multiple blocks through one cipher invocation.
func (h *AESHandle) BatchEval(in []Word, out []Word) error {
	if len(in) != len(out) {
		return fmt.Errorf("prf: batch eval length mismatch: %d inputs, %d outputs", len(in), len(out))
	}
	for i := range in {
		h.block.Encrypt(out[i][:], in[i][:])
	}
	return nil
}
