// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package hash

import (
	"bytes"

	"github.com/leancrypto-go/leancrypto/internal/status"
)

const (
	shake128Rate = 168
	shake256Rate = 136

	shakePad = 0x1f

	// defaultXOF128Output and defaultXOF256Output are the output lengths a
	// freshly constructed XOF
	// reports from DigestSize before SetDigestSize is called, matching
	// the common convention of "security strength in bytes" as a
	// sensible default rather than an arbitrary size.
	defaultXOF128Output = 32
	defaultXOF256Output = 64
)

func newSHAKE(id status.ID, rate, defaultSize int, selfTest func() error) *keccakVariant {
	v := &keccakVariant{
		rate:       rate,
		pad:        shakePad,
		digestSize: defaultSize,
		fixedSize:  false,
		id:         id,
		selfTest:   selfTest,
	}
	v.Init()
	return v
}

// NewSHAKE128 returns a fresh SHAKE128 XOF instance (FIPS 202 §6.2).
func NewSHAKE128() Hash {
	return newSHAKE(status.SHAKE128, shake128Rate, defaultXOF128Output, shake128SelfTest)
}

// NewSHAKE256 returns a fresh SHAKE256 XOF instance (FIPS 202 §6.2).
func NewSHAKE256() Hash {
	return newSHAKE(status.SHAKE256, shake256Rate, defaultXOF256Output, shake256SelfTest)
}

func shakeKAT(rate int, want []byte) error {
	v := &keccakVariant{rate: rate, pad: shakePad, digestSize: len(want), fixedSize: false}
	v.Init()
	v.Update(nil)
	got := make([]byte, len(want))
	v.state.Finalize(got)
	if !bytes.Equal(got, want) {
		return status.ErrSelfTestFailed
	}
	return nil
}

func shake128SelfTest() error {
	want := []byte{0x7f, 0x9c, 0x2b, 0xa4, 0xe8, 0x8f, 0x82, 0x7d, 0x61, 0x60, 0x45, 0x50, 0x76, 0x05, 0x85, 0x3e}
	return shakeKAT(shake128Rate, want)
}

func shake256SelfTest() error {
	want := []byte{
		0x46, 0xb9, 0xdd, 0x2b, 0x0b, 0xa8, 0x8d, 0x13, 0x23, 0x3b, 0x3f, 0xeb, 0x74, 0x3e, 0xeb, 0x24,
	}
	return shakeKAT(shake256Rate, want)
}
