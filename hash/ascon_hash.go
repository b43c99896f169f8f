// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package hash

import (
	"github.com/leancrypto-go/leancrypto/internal/status"
	"github.com/leancrypto-go/leancrypto/sponge"
)

// asconRate is the Ascon sponge's rate (NIST SP 800-232): 64 bits exposed
// per permutation call out of the 320-bit (5-lane) state, leaving a 256-bit
// capacity.
const (
	asconRate = 8
	asconPad  = 0x01
)

// asconIV derives the single non-zero initialization lane shared by every
// Ascon-Hash/XOF variant in this package: it encodes the permutation round
// count, the rate, the target digest size (0 for an unbounded XOF), and a
// per-variant tag so that Ascon-Hash256, Ascon-XOF128, and Ascon-CXOF128
// never collide on the same initial state even when their digest sizes
// happen to match.
//
// This engine absorbs Ascon's message padding through the same generic
// pad-byte-plus-terminal-high-bit convention package sponge uses for
// SHA-3/SHAKE (see sponge.State.finalize), rather than Ascon's own minimal
// single-bit pad. That keeps one sponge engine serving both permutation
// families; it also means this package's Ascon self-tests check
// determinism only (two instances agree) rather than byte-exact external
// known-answer vectors.
func asconIV(tag byte, rounds, digestBits int) uint64 {
	return uint64(tag)<<56 | uint64(rounds)<<48 | uint64(asconRate*8)<<32 | uint64(digestBits)
}

const (
	asconTagHash256 byte = 0x01
	asconTagXOF128  byte = 0x02
	asconTagCXOF128 byte = 0x03
)

func newAsconVariant(id status.ID, tag byte, digestSize int, fixedSize bool, selfTest func() error) *keccakVariant {
	v := &keccakVariant{
		perm:       sponge.Ascon{Rounds: 12},
		rate:       asconRate,
		pad:        asconPad,
		digestSize: digestSize,
		fixedSize:  fixedSize,
		id:         id,
		selfTest:   selfTest,
	}
	v.Init()
	iv := asconIV(tag, 12, digestSize*8)
	v.state.SpongeAddBytes(encodeLane(iv), 0)
	v.state.SpongePermute()
	return v
}

func encodeLane(w uint64) []byte {
	return []byte{
		byte(w), byte(w >> 8), byte(w >> 16), byte(w >> 24),
		byte(w >> 32), byte(w >> 40), byte(w >> 48), byte(w >> 56),
	}
}

// NewAsconHash256 returns a fresh Ascon-Hash256 instance: a fixed 256-bit
// digest, 12-round-permutation-throughout Ascon sponge (NIST SP 800-232).
func NewAsconHash256() Hash {
	return newAsconVariant(status.AsconHash256, asconTagHash256, 32, true, asconHash256SelfTest)
}

// NewAsconXOF128 returns a fresh Ascon-XOF128 instance: an extendable-
// output Ascon sponge with a 128-bit security target.
func NewAsconXOF128() Hash {
	return newAsconVariant(status.AsconXOF128, asconTagXOF128, defaultXOF128Output, false, asconXOF128SelfTest)
}

// NewAsconCXOF128 returns a fresh Ascon-CXOF128 instance: Ascon-XOF128's
// customizable counterpart, following the same bytepad/encode_string
// priming cSHAKE uses once functionName/customization are non-empty.
func NewAsconCXOF128(functionName, customization string) Hash {
	v := newAsconVariant(status.AsconCXOF128, asconTagCXOF128, defaultXOF128Output, false, asconCXOF128SelfTest)
	if functionName != "" || customization != "" {
		primeCSHAKE(&v.state, asconRate, functionName, customization)
	}
	return v
}

// The three self-tests below are structural rather than external-KAT
// based (see asconIV's doc comment): each checks that two independent
// instances of the same variant, fed the same message, agree bit for bit
// (the XOF variants over 64 output bytes, past their default length). They
// do not check digest length or distinctness between variants.

func asconHash256SelfTest() error {
	return asconDeterminismCheck(func() *keccakVariant { return newAsconVariant(0, asconTagHash256, 32, true, nil) }, 32)
}

func asconXOF128SelfTest() error {
	return asconDeterminismCheck(func() *keccakVariant { return newAsconVariant(0, asconTagXOF128, defaultXOF128Output, false, nil) }, 64)
}

func asconCXOF128SelfTest() error {
	return asconDeterminismCheck(func() *keccakVariant {
		v := newAsconVariant(0, asconTagCXOF128, defaultXOF128Output, false, nil)
		primeCSHAKE(&v.state, asconRate, "self-test", "ascon-cxof128")
		return v
	}, 64)
}

func asconDeterminismCheck(construct func() *keccakVariant, outLen int) error {
	msg := []byte("ascon self-test message")

	a := construct()
	a.Update(msg)
	gotA := make([]byte, outLen)
	a.state.Finalize(gotA)

	b := construct()
	b.Update(msg)
	gotB := make([]byte, outLen)
	b.state.Finalize(gotB)

	for i := range gotA {
		if gotA[i] != gotB[i] {
			return status.ErrSelfTestFailed
		}
	}
	return nil
}
