// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package x25519

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateKeyDiffieHellmanAgreement(t *testing.T) {
	t.Parallel()
	is := require.New(t)

	alice, err := GenerateKey()
	is.NoError(err)
	bob, err := GenerateKey()
	is.NoError(err)

	sharedAlice, err := alice.ScalarMult(bob.PublicKey())
	is.NoError(err)
	sharedBob, err := bob.ScalarMult(alice.PublicKey())
	is.NoError(err)

	is.Equal(sharedAlice, sharedBob)
}

func TestGenerateKeyProducesDistinctKeyPairs(t *testing.T) {
	t.Parallel()
	is := require.New(t)

	a, err := GenerateKey()
	is.NoError(err)
	b, err := GenerateKey()
	is.NoError(err)
	is.NotEqual(a.PublicKey(), b.PublicKey())
}

func TestScalarBaseMultMatchesGenerateKey(t *testing.T) {
	t.Parallel()
	is := require.New(t)

	kp, err := GenerateKey()
	is.NoError(err)

	// ScalarBaseMult re-clamps internally, so feeding it the same raw
	// private bytes GenerateKey already clamped must reproduce the same
	// public key.
	got := ScalarBaseMult(kp.private)
	is.Equal(kp.public, got)
}

func TestScalarMultRejectsAllZeroPublicKey(t *testing.T) {
	t.Parallel()
	is := require.New(t)

	kp, err := GenerateKey()
	is.NoError(err)

	var lowOrderPoint [KeySize]byte // the all-zero point, a known low-order input
	_, err = kp.ScalarMult(lowOrderPoint)
	is.Equal(ErrInvalidPublicKey, err)
}

func TestZeroWipesPrivateKey(t *testing.T) {
	t.Parallel()
	is := require.New(t)

	kp, err := GenerateKey()
	is.NoError(err)
	kp.Zero()

	var zero [KeySize]byte
	is.Equal(zero, kp.private)
}
