// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package x25519 implements the X25519 elliptic-curve Diffie-Hellman
// primitive (RFC 7748) described in spec.md §1/§2's elliptic-curve scope:
// key generation, scalar multiplication against an arbitrary public point,
// and scalar multiplication against the curve's base point, delegating the
// field/curve arithmetic to golang.org/x/crypto/curve25519 the same way
// the noise-handshake example in this corpus does.
package x25519

import (
	"crypto/rand"
	"errors"
	"io"

	"golang.org/x/crypto/curve25519"

	"github.com/leancrypto-go/leancrypto/internal/safe"
	"github.com/leancrypto-go/leancrypto/internal/status"
)

// KeySize is the size in bytes of an X25519 private or public key.
const KeySize = 32

// ErrInvalidPublicKey is returned when a scalar multiplication produces
// an all-zero shared secret, which RFC 7748 §6.1 requires implementations
// to reject: a handful of small-order public keys drive any private
// scalar to the identity point.
var ErrInvalidPublicKey = errors.New("x25519: computed shared secret is all-zero")

// KeyPair is an X25519 private/public key pair.
type KeyPair struct {
	private [KeySize]byte
	public  [KeySize]byte
}

// GenerateKey creates a new KeyPair from crypto/rand, clamping the private
// scalar per RFC 7748 §5 (clear the low 3 bits and the high bit, set the
// second-highest bit).
func GenerateKey() (*KeyPair, error) {
	if err := status.Check(status.X25519, x25519SelfTest); err != nil {
		return nil, err
	}

	kp := &KeyPair{}
	if _, err := io.ReadFull(rand.Reader, kp.private[:]); err != nil {
		return nil, err
	}
	clamp(&kp.private)

	curve25519.ScalarBaseMult(&kp.public, &kp.private)
	return kp, nil
}

func clamp(scalar *[KeySize]byte) {
	scalar[0] &= 248
	scalar[31] &= 127
	scalar[31] |= 64
}

// PublicKey returns the key pair's public point.
func (kp *KeyPair) PublicKey() [KeySize]byte { return kp.public }

// ScalarMult computes the X25519 shared secret between kp's private scalar
// and theirPublic, rejecting an all-zero result per RFC 7748 §6.1.
func (kp *KeyPair) ScalarMult(theirPublic [KeySize]byte) ([KeySize]byte, error) {
	var shared [KeySize]byte
	curve25519.ScalarMult(&shared, &kp.private, &theirPublic)

	if isAllZero(shared[:]) {
		safe.Wipe(shared[:])
		return [KeySize]byte{}, ErrInvalidPublicKey
	}
	return shared, nil
}

// ScalarBaseMult computes scalar * basepoint, clamping scalar first. It is
// exposed directly (rather than only through GenerateKey) because some
// protocols derive a public key from an externally-supplied, already
// random private scalar.
func ScalarBaseMult(scalar [KeySize]byte) [KeySize]byte {
	clamp(&scalar)
	var out [KeySize]byte
	curve25519.ScalarBaseMult(&out, &scalar)
	return out
}

func isAllZero(b []byte) bool {
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return acc == 0
}

// Zero wipes the private scalar. The public key is not secret and is left
// intact.
func (kp *KeyPair) Zero() {
	safe.Wipe(kp.private[:])
}

// x25519SelfTest checks that two fixed scalars agree on their
// Diffie-Hellman shared secret from both sides — the structural property
// X25519 must satisfy. A self-test must be deterministic (internal/status
// runs it exactly once and latches the result for the process), so this
// uses fixed byte patterns rather than crypto/rand; it is not a claim of
// bit-exact compliance with any externally published test vector, which
// this package did not have reliable access to (see DESIGN.md).
func x25519SelfTest() error {
	a := [KeySize]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	b := [KeySize]byte{0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18}
	clamp(&a)
	clamp(&b)

	var aPub, bPub [KeySize]byte
	curve25519.ScalarBaseMult(&aPub, &a)
	curve25519.ScalarBaseMult(&bPub, &b)

	var sharedA, sharedB [KeySize]byte
	curve25519.ScalarMult(&sharedA, &a, &bPub)
	curve25519.ScalarMult(&sharedB, &b, &aPub)

	if sharedA != sharedB {
		return status.ErrSelfTestFailed
	}
	if isAllZero(sharedA[:]) {
		return status.ErrSelfTestFailed
	}
	return nil
}
