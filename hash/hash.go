// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package hash binds the sponge engine (package sponge) to concrete
// permutations, rates, padding bytes, and digest-size policies to provide
// the Hash capability described in spec.md §3/§4.6: SHA3-{224,256,384,512},
// SHAKE-{128,256}, cSHAKE-{128,256}, Ascon-{Hash256,XOF128,CXOF128} (NIST
// SP 800-232 naming), and SHA-2-{256,512}.
package hash

import (
	"errors"

	"github.com/leancrypto-go/leancrypto/internal/safe"
	"github.com/leancrypto-go/leancrypto/internal/status"
	"github.com/leancrypto-go/leancrypto/sponge"
)

// ErrSetDigestSizeNotSupported is returned by SetDigestSize on a
// fixed-output-length variant (spec.md §4.6: "For fixed-digest variants,
// set_digestsize is forbidden").
var ErrSetDigestSizeNotSupported = errors.New("hash: SetDigestSize is not supported by a fixed-digest-size variant")

// Hash is the capability every variant in this package implements: ordered
// init/update/finalize operations plus the sponge-level escape hatches
// spec.md §4.5 requires higher constructions (cSHAKE, KMAC) to reach.
type Hash interface {
	// Init (re)starts the hash with no absorbed input.
	Init()
	// Update absorbs more input. It is safe to call Update any number of
	// times before Finalize.
	Update(data []byte)
	// Finalize writes the digest into out and returns the state to a
	// squeezing-only condition — a fixed-digest variant requires
	// len(out) == BlockSize()'s paired digest size; an XOF accepts any
	// length.
	Finalize(out []byte)
	// SetDigestSize changes an XOF's target output length. It returns
	// ErrSetDigestSizeNotSupported for fixed-digest variants.
	SetDigestSize(n int) error
	// DigestSize reports the currently configured output length.
	DigestSize() int
	// BlockSize reports the sponge rate in bytes (the HMAC block size).
	BlockSize() int
	// IsXOF reports whether this variant has extendable output.
	IsXOF() bool
	// Zero wipes internal state.
	Zero()

	// sponge-level escape hatches for cSHAKE/KMAC-style constructions
	// that must write into the sponge ahead of the message proper.
	SpongeAddBytes(data []byte, off int)
	SpongePermute()
	SpongeNewState()
	SpongeExtractBytes(out []byte, off int)
}

// keccakVariant is the shared implementation behind every Keccak-f[1600]-
// and Ascon-p-derived instance in this package (SHA-3, SHAKE, cSHAKE,
// Ascon-Hash/XOF/CXOF); only the permutation and the parameters passed to
// Init differ between them.
type keccakVariant struct {
	state      sponge.State
	perm       sponge.Permutation
	rate       int
	pad        byte
	digestSize int
	fixedSize  bool
	id         status.ID
	selfTest   func() error
}

func (v *keccakVariant) Init() {
	perm := v.perm
	if perm == nil {
		perm = sponge.Keccak{}
	}
	v.state.Init(perm, v.rate, v.pad, v.digestSize, v.fixedSize)
}

func (v *keccakVariant) checked() error {
	if v.selfTest == nil {
		return nil
	}
	return status.Check(v.id, v.selfTest)
}

func (v *keccakVariant) Update(data []byte) {
	if err := v.checked(); err != nil {
		return
	}
	v.state.Update(data)
}

func (v *keccakVariant) Finalize(out []byte) {
	if err := v.checked(); err != nil {
		safe.Wipe(out)
		return
	}
	v.state.Finalize(out)
}

func (v *keccakVariant) SetDigestSize(n int) error {
	if v.fixedSize {
		return ErrSetDigestSizeNotSupported
	}
	v.state.SetDigestSize(n)
	v.digestSize = n
	return nil
}

func (v *keccakVariant) DigestSize() int { return v.digestSize }
func (v *keccakVariant) BlockSize() int  { return v.rate }
func (v *keccakVariant) IsXOF() bool     { return !v.fixedSize }
func (v *keccakVariant) Zero()           { v.state.Zero() }

func (v *keccakVariant) SpongeAddBytes(data []byte, off int) { v.state.SpongeAddBytes(data, off) }
func (v *keccakVariant) SpongePermute()                      { v.state.SpongePermute() }
func (v *keccakVariant) SpongeNewState()                     { v.state.SpongeNewState() }
func (v *keccakVariant) SpongeExtractBytes(out []byte, off int) {
	v.state.SpongeExtractBytes(out, off)
}
