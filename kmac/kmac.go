// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package kmac implements KMAC (NIST SP 800-185 §4) in XOF mode: a keyed,
// extendable-output MAC built over cSHAKE-256, per spec.md §4.7.
package kmac

import (
	"github.com/leancrypto-go/leancrypto/hash"
	"github.com/leancrypto-go/leancrypto/internal/safe"
)

const kmacFunctionName = "KMAC"

// KMAC is a keyed, extendable-output MAC state: a cSHAKE-256 sponge primed
// with the encoded key, ready to absorb the message and, on Finalize,
// squeeze any requested number of output bytes.
type KMAC struct {
	cs hash.Hash
}

// New initializes a KMAC instance (SP 800-185 §4.3.1, XOF mode): cSHAKE-256
// is customized with N="KMAC", S=customization, then bytepad(encode_string(
// key), rate) is absorbed ahead of the message.
func New(key []byte, customization string) *KMAC {
	k := &KMAC{cs: hash.NewCSHAKE256(kmacFunctionName, customization)}

	prefix := hash.BytePad(hash.EncodeString(key), k.cs.BlockSize())
	k.cs.Update(prefix)
	safe.Wipe(prefix)

	return k
}

// Update absorbs more message bytes.
func (k *KMAC) Update(data []byte) { k.cs.Update(data) }

// Finalize appends right_encode(0) (SP 800-185's XOF-mode terminator) and
// squeezes len(out) bytes of output into out.
func (k *KMAC) Finalize(out []byte) {
	k.cs.Update(hash.RightEncode(0))
	k.cs.SetDigestSize(len(out))
	k.cs.Finalize(out)
}

// Zero wipes the underlying cSHAKE-256 state.
func (k *KMAC) Zero() { k.cs.Zero() }
