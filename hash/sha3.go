// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package hash

import (
	"bytes"

	"github.com/leancrypto-go/leancrypto/internal/status"
)

// rate/digest pairs per FIPS 202 §6.1: rate = 1600 - capacity, capacity =
// 2*digest size in bits.
const (
	sha3_224Rate = 144
	sha3_256Rate = 136
	sha3_384Rate = 104
	sha3_512Rate = 72

	sha3Pad = 0x06
)

func newSHA3(id status.ID, rate, digestSize int, selfTest func() error) *keccakVariant {
	v := &keccakVariant{
		rate:       rate,
		pad:        sha3Pad,
		digestSize: digestSize,
		fixedSize:  true,
		id:         id,
		selfTest:   selfTest,
	}
	v.Init()
	return v
}

// NewSHA3_224 returns a fresh SHA3-224 instance (FIPS 202 §6.1).
func NewSHA3_224() Hash {
	return newSHA3(status.SHA3_224, sha3_224Rate, 28, sha3_224SelfTest)
}

// NewSHA3_256 returns a fresh SHA3-256 instance (FIPS 202 §6.1).
func NewSHA3_256() Hash {
	return newSHA3(status.SHA3_256, sha3_256Rate, 32, sha3_256SelfTest)
}

// NewSHA3_384 returns a fresh SHA3-384 instance (FIPS 202 §6.1).
func NewSHA3_384() Hash {
	return newSHA3(status.SHA3_384, sha3_384Rate, 48, sha3_384SelfTest)
}

// NewSHA3_512 returns a fresh SHA3-512 instance (FIPS 202 §6.1).
func NewSHA3_512() Hash {
	return newSHA3(status.SHA3_512, sha3_512Rate, 64, sha3_512SelfTest)
}

// The four self-tests below run SHA3-*("") against the published NIST
// empty-string answers. They are registered through internal/status so
// every variant runs its own known-answer test exactly once before its
// first real use (spec.md §4.4).

func sha3KAT(rate, digestSize int, want []byte) error {
	v := &keccakVariant{rate: rate, pad: sha3Pad, digestSize: digestSize, fixedSize: true}
	v.Init()
	v.Update(nil)
	got := make([]byte, digestSize)
	v.state.Finalize(got)
	if !bytes.Equal(got, want) {
		return status.ErrSelfTestFailed
	}
	return nil
}

func sha3_224SelfTest() error {
	want := []byte{
		0x6b, 0x4e, 0x03, 0x42, 0x36, 0x67, 0xdb, 0xb7, 0x3b, 0x6e, 0x15, 0x45, 0x4f, 0x0e, 0xb1, 0xab,
		0xd4, 0x59, 0x7f, 0x9a, 0x1b, 0x07, 0x8e, 0x3f, 0x5b, 0x5a, 0x6b, 0xc7,
	}
	return sha3KAT(sha3_224Rate, 28, want)
}

func sha3_256SelfTest() error {
	want := []byte{
		0xa7, 0xff, 0xc6, 0xf8, 0xbf, 0x1e, 0xd7, 0x66, 0x51, 0xc1, 0x47, 0x56, 0xa0, 0x61, 0xd6, 0x62,
		0xf5, 0x80, 0xff, 0x4d, 0xe4, 0x3b, 0x49, 0xfa, 0x82, 0xd8, 0x0a, 0x4b, 0x80, 0xf8, 0x84, 0x34,
	}
	return sha3KAT(sha3_256Rate, 32, want)
}

func sha3_384SelfTest() error {
	want := []byte{
		0x0c, 0x63, 0xa7, 0x5b, 0x84, 0x5e, 0x4f, 0x7d, 0x01, 0x10, 0x7d, 0x85, 0x2e, 0x4c, 0x24, 0x85,
		0xc5, 0x1a, 0x50, 0xaa, 0xaa, 0x94, 0xfc, 0x61, 0x99, 0x5e, 0x71, 0xbb, 0xee, 0x98, 0x3a, 0x2a,
		0xc3, 0x71, 0x38, 0x31, 0x26, 0x4a, 0xdb, 0x47, 0xfb, 0x6b, 0xd1, 0xe0, 0x58, 0xd5, 0xf0, 0x04,
	}
	return sha3KAT(sha3_384Rate, 48, want)
}

func sha3_512SelfTest() error {
	want := []byte{
		0xa6, 0x9f, 0x73, 0xcc, 0xa2, 0x3a, 0x9a, 0xc5, 0xc8, 0xb5, 0x67, 0xdc, 0x18, 0x5a, 0x75, 0x6e,
		0x97, 0xc9, 0x82, 0x16, 0x4f, 0xe2, 0x58, 0x59, 0xe0, 0xd1, 0xdc, 0xc1, 0x47, 0x5c, 0x80, 0xa6,
		0x15, 0xb2, 0x12, 0x3a, 0xf1, 0xf5, 0xf9, 0x4c, 0x11, 0xe3, 0xe9, 0x40, 0x2c, 0x3a, 0xc5, 0x58,
		0xf5, 0x00, 0x19, 0x9d, 0x95, 0xb6, 0xd3, 0xe3, 0x01, 0x75, 0x85, 0x86, 0x28, 0x1d, 0xcd, 0x26,
	}
	return sha3KAT(sha3_512Rate, 64, want)
}
