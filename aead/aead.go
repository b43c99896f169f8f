// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package aead implements the two non-GCM AEAD families described in
// spec.md §3/§4.10: hash-based Encrypt-then-MAC (keystream from a
// hash-parameterized DRBG, authentication via HMAC) and KMAC-based AEAD
// (keystream from KMAC-DRNG, authentication via KMAC). Both share the
// family-independent fresh -> keyed -> aad_absorbing -> crypting ->
// finalized state machine package gcm also implements for AES-GCM.
package aead

import (
	"crypto/subtle"
	"errors"

	"github.com/leancrypto-go/leancrypto/drbg"
	"github.com/leancrypto-go/leancrypto/internal/safe"
)

var (
	// ErrInvalidState is returned when an operation is attempted from a
	// state that does not permit it (spec.md §4.10).
	ErrInvalidState = errors.New("aead: invalid state transition")
	// ErrTagMismatch is returned by a dec_final when the computed tag
	// does not match the supplied one.
	ErrTagMismatch = errors.New("aead: authentication tag mismatch")
)

type state int

const (
	fresh state = iota
	keyed
	aadAbsorbing
	crypting
	finalized
)

// keystreamBlockSize bounds how many bytes are pulled from the underlying
// RNG per refill, matching spec.md §3's "keystream_ptr ≤ KEYSTREAM_BLOCK;
// when equal, the next byte requires a refresh."
const keystreamBlockSize = 64

// keystream is the shared `{ keystream_buf, keystream_ptr }` piece of both
// Hash-AEAD and KMAC-AEAD state (spec.md §3): a small buffered view onto
// an RNG capability, refilled one block at a time.
type keystream struct {
	rng drbg.RNG
	buf []byte
	ptr int
}

func newKeystream(rng drbg.RNG) *keystream {
	return &keystream{rng: rng, buf: make([]byte, keystreamBlockSize), ptr: keystreamBlockSize}
}

// xor XORs src with keystream bytes into dst (which may alias src),
// refilling the buffer from the RNG whenever it is exhausted.
func (k *keystream) xor(dst, src []byte) error {
	for i := range src {
		if k.ptr == len(k.buf) {
			if err := k.rng.Generate(nil, k.buf); err != nil {
				return err
			}
			k.ptr = 0
		}
		dst[i] = src[i] ^ k.buf[k.ptr]
		k.ptr++
	}
	return nil
}

func (k *keystream) zero() {
	safe.Wipe(k.buf)
	k.ptr = len(k.buf)
}

// constantTimeCompare reports whether a and b are equal, in constant time
// with respect to their contents (spec.md §4.10: "mismatch returns
// tag_mismatch without revealing plaintext-dependent timing").
func constantTimeCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
