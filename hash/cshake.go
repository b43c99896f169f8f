// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package hash

import (
	"bytes"

	"github.com/leancrypto-go/leancrypto/internal/status"
	"github.com/leancrypto-go/leancrypto/sponge"
)

const cshakePad = 0x04

// NewCSHAKE128 returns a cSHAKE128 instance (SP 800-185 §3.2) customized by
// functionName and customization. Per the standard, when both are empty
// cSHAKE reduces to plain SHAKE128; newCSHAKE applies that reduction by
// constructing plain SHAKE128 directly for empty inputs, because the
// general prefix-and-pad path does not produce SHAKE output there.
func NewCSHAKE128(functionName, customization string) Hash {
	return newCSHAKE(status.CSHAKE128, shake128Rate, defaultXOF128Output, functionName, customization, cshake128SelfTest)
}

// NewCSHAKE256 returns a cSHAKE256 instance (SP 800-185 §3.2).
func NewCSHAKE256(functionName, customization string) Hash {
	return newCSHAKE(status.CSHAKE256, shake256Rate, defaultXOF256Output, functionName, customization, cshake256SelfTest)
}

func newCSHAKE(id status.ID, rate, defaultSize int, functionName, customization string, selfTest func() error) *keccakVariant {
	if functionName == "" && customization == "" {
		// SP 800-185 §3.3: cSHAKE(X, L, "", "") == SHAKE(X, L).
		return newSHAKE(id, rate, defaultSize, selfTest)
	}

	v := &keccakVariant{
		rate:       rate,
		pad:        cshakePad,
		digestSize: defaultSize,
		fixedSize:  false,
		id:         id,
		selfTest:   selfTest,
	}
	v.Init()
	primeCSHAKE(&v.state, rate, functionName, customization)
	return v
}

// primeCSHAKE absorbs bytepad(encode_string(N) || encode_string(S), rate)
// into a freshly initialized sponge. The result is always a multiple of
// rate bytes, so the ordinary Update path leaves the sponge offset back at
// zero — ready to absorb the message proper.
func primeCSHAKE(s *sponge.State, rate int, functionName, customization string) {
	prefix := BytePad(append(EncodeString([]byte(functionName)), EncodeString([]byte(customization))...), rate)
	s.Update(prefix)
}

// cshake128SelfTest and cshake256SelfTest check that primeCSHAKE's
// bytepad(encode_string(N) || encode_string(S), rate) prefix actually binds
// the function-name and customization strings into the output, and that
// absorbing the same prefix twice reproduces the same digest.
//
// Note this does NOT check "cSHAKE(X,L,"","") == SHAKE(X,L)" (SP 800-185
// §3.3): that reduction is a definitional special case the standard
// carves out for the empty-N-and-S input, not a property the general
// bytepad/encode_string path satisfies — priming with empty strings still
// absorbs a full rate-sized bytepad header block under pad byte 0x04, which
// plain SHAKE (no prefix, pad byte 0x1f) never does, so the two are not
// equal there. This package's NewCSHAKE128/NewCSHAKE256 apply that
// reduction by special-casing empty N/S and constructing plain SHAKE
// directly (see newCSHAKE above), so the two paths never need to agree
// bit-for-bit with each other.
func cshake128SelfTest() error {
	return cshakeSensitivityCheck(shake128Rate, defaultXOF128Output)
}

func cshake256SelfTest() error {
	return cshakeSensitivityCheck(shake256Rate, defaultXOF256Output)
}

func cshakeSensitivityCheck(rate, size int) error {
	msg := []byte("cshake self-test message")

	build := func(functionName, customization string) []byte {
		v := &keccakVariant{rate: rate, pad: cshakePad, digestSize: size, fixedSize: false}
		v.Init()
		primeCSHAKE(&v.state, rate, functionName, customization)
		v.state.Update(msg)
		out := make([]byte, size)
		v.state.Finalize(out)
		return out
	}

	a1 := build("self-test", "alpha")
	a2 := build("self-test", "alpha")
	if !bytes.Equal(a1, a2) {
		return status.ErrSelfTestFailed
	}

	if bytes.Equal(a1, build("self-test", "beta")) {
		return status.ErrSelfTestFailed
	}

	if bytes.Equal(a1, build("other-test", "alpha")) {
		return status.ErrSelfTestFailed
	}

	return nil
}
