// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import (
	"golang.org/x/crypto/chacha20"

	"github.com/leancrypto-go/leancrypto/internal/safe"
)

// ChaCha20DRNG is the ChaCha20-DRNG fast-key-erasure generator described
// in spec.md §4.9/§3: a 256-bit key and a 96-bit nonce treated as an
// extended counter, incremented deterministically after every generate call
// and every seed call that supplies a non-empty seed or personalization.
type ChaCha20DRNG struct {
	key    [chacha20.KeySize]byte
	nonce  [chacha20.NonceSize]byte
	seeded bool
}

// NewChaCha20DRNG returns an unseeded ChaCha20-DRNG instance.
func NewChaCha20DRNG() *ChaCha20DRNG { return &ChaCha20DRNG{} }

// refresh runs the ChaCha20 block function keyed by the current key/nonce,
// writes the first len(out) keystream bytes to out, and mixes the
// following chacha20.KeySize bytes of keystream back into the key — the
// fast-key-erasure step spec.md §4.9 calls "mixes the last block back into
// the key." It then increments the 96-bit nonce.
func (c *ChaCha20DRNG) refresh(out []byte) error {
	cipher, err := chacha20.NewUnauthenticatedCipher(c.key[:], c.nonce[:])
	if err != nil {
		return err
	}

	buf := make([]byte, len(out)+chacha20.KeySize)
	cipher.XORKeyStream(buf, buf)

	copy(out, buf[:len(out)])
	copy(c.key[:], buf[len(out):])
	safe.Wipe(buf)

	incrNonce(&c.nonce)
	return nil
}

func incrNonce(nonce *[chacha20.NonceSize]byte) {
	for i := len(nonce) - 1; i >= 0; i-- {
		nonce[i]++
		if nonce[i] != 0 {
			return
		}
	}
}

// Seed XORs seed and personalization bytes into the key half of the
// ChaCha state (wrapping if longer than the key) and runs one refresh with
// no output, per spec.md §4.9's "seeding XORs seed chunks into the key
// half of the ChaCha state and runs an update." When both seed and
// personalization are empty there is nothing to XOR in, and skipping the
// refresh leaves the all-zero key/nonce state intact for the first
// Generate call to consume directly (spec.md §8 scenario 4's "first block
// with zero state" KAT depends on this: running refresh unconditionally
// here would overwrite the key and advance the nonce before that first
// Generate ever runs).
func (c *ChaCha20DRNG) Seed(seed, personalization []byte) error {
	if len(seed) == 0 && len(personalization) == 0 {
		c.seeded = true
		return nil
	}

	xorWrap(c.key[:], seed)
	xorWrap(c.key[:], personalization)

	if err := c.refresh(nil); err != nil {
		return err
	}
	c.seeded = true
	return nil
}

func xorWrap(dst []byte, src []byte) {
	for i, b := range src {
		dst[i%len(dst)] ^= b
	}
}

// Generate mixes additionalInput into the key, runs the block function,
// and writes len(out) keystream bytes to out (spec.md §4.9: "generating
// runs block function, outputs keystream, then mixes the last block back
// into the key").
func (c *ChaCha20DRNG) Generate(additionalInput, out []byte) error {
	if !c.seeded {
		return ErrNotSeeded
	}
	xorWrap(c.key[:], additionalInput)
	return c.refresh(out)
}

// Zero wipes the key and nonce and resets the seeded flag.
func (c *ChaCha20DRNG) Zero() {
	safe.Wipe(c.key[:])
	safe.Wipe(c.nonce[:])
	c.seeded = false
}
