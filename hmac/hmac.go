// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package hmac implements HMAC (FIPS 198-1) generically over any hash.Hash
// capability, per spec.md §4.7: key compression for overlong keys, ipad/
// opad derivation, and the inner/outer two-pass construction.
package hmac

import (
	"errors"

	"github.com/leancrypto-go/leancrypto/internal/safe"
	"github.com/leancrypto-go/leancrypto/hash"
)

const (
	ipadByte = 0x36
	opadByte = 0x5c
)

// ErrEmptyKey is returned by New for a zero-length key. spec.md §7
// classifies "HMAC with key=∅" as invalid_argument rather than treating an
// empty key as a (weak but valid) all-zero-pad key.
var ErrEmptyKey = errors.New("hmac: key must not be empty")

// NewFunc constructs a fresh hash.Hash instance of the variant HMAC should
// run over one of its two internal passes with. HMAC needs two
// independently-stateful hashes (inner and outer), so it takes a
// constructor rather than a single instance.
type NewFunc func() hash.Hash

// HMAC is the keyed-hash state described in spec.md §3: an inner and an
// outer hash context, both built atop the Hash capability.
type HMAC struct {
	newHash    NewFunc
	inner      hash.Hash
	outer      hash.Hash
	opad       []byte
	digestSize int
}

// New initializes an HMAC instance over newHash with key as described in
// spec.md §4.7: keys longer than the underlying hash's block size are
// reduced with that hash before use; shorter keys are zero-padded. An
// empty key is rejected with ErrEmptyKey.
func New(newHash NewFunc, key []byte) (*HMAC, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}

	h := &HMAC{newHash: newHash}
	h.inner = newHash()
	blockSize := h.inner.BlockSize()
	h.digestSize = h.inner.DigestSize()

	k := key
	if len(k) > blockSize {
		reduced := make([]byte, h.digestSize)
		h.inner.Update(k)
		h.inner.Finalize(reduced)
		h.inner.Init()
		k = reduced
	}

	ipad := make([]byte, blockSize)
	h.opad = make([]byte, blockSize)
	copy(ipad, k)
	copy(h.opad, k)
	for i := range ipad {
		ipad[i] ^= ipadByte
		h.opad[i] ^= opadByte
	}

	h.inner.Update(ipad)
	safe.Wipe(ipad)

	h.outer = newHash()

	return h, nil
}

// Update feeds more message bytes into the inner hash.
func (h *HMAC) Update(data []byte) { h.inner.Update(data) }

// Finalize completes the inner hash, folds it into the outer hash together
// with opad, and writes the resulting MAC into out (which must be sized
// for the underlying hash's digest size).
func (h *HMAC) Finalize(out []byte) {
	innerDigest := make([]byte, h.digestSize)
	h.inner.Finalize(innerDigest)

	h.outer.Update(h.opad)
	h.outer.Update(innerDigest)
	h.outer.Finalize(out)

	safe.Wipe(innerDigest)
}

// DigestSize reports the MAC length, equal to the underlying hash's
// digest size.
func (h *HMAC) DigestSize() int { return h.digestSize }

// Zero wipes both internal hash contexts and the retained opad.
func (h *HMAC) Zero() {
	h.inner.Zero()
	h.outer.Zero()
	safe.Wipe(h.opad)
}
