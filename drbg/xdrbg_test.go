// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXDRBGGenerateBeforeSeedFails(t *testing.T) {
	is := require.New(t)

	x := NewXDRBG128()
	out := make([]byte, 16)
	is.Equal(ErrNotSeeded, x.Generate(nil, out))
}

func TestXDRBGIsDeterministic(t *testing.T) {
	is := require.New(t)

	seed := []byte("seed material")
	pers := []byte("personalization")

	x1 := NewXDRBG256()
	is.NoError(x1.Seed(seed, pers))
	out1 := make([]byte, 48)
	is.NoError(x1.Generate([]byte("ai"), out1))

	x2 := NewXDRBG256()
	is.NoError(x2.Seed(seed, pers))
	out2 := make([]byte, 48)
	is.NoError(x2.Generate([]byte("ai"), out2))

	is.Equal(out1, out2)
}

func TestXDRBGSuccessiveOutputsDiffer(t *testing.T) {
	is := require.New(t)

	x := NewXDRBG128()
	is.NoError(x.Seed([]byte("s"), nil))

	a := make([]byte, 32)
	b := make([]byte, 32)
	is.NoError(x.Generate(nil, a))
	is.NoError(x.Generate(nil, b))

	is.NotEqual(a, b)
}

func TestXDRBGSeedSensitivity(t *testing.T) {
	is := require.New(t)

	out1 := make([]byte, 32)
	x1 := NewXDRBG128()
	is.NoError(x1.Seed([]byte("seed-a"), nil))
	is.NoError(x1.Generate(nil, out1))

	out2 := make([]byte, 32)
	x2 := NewXDRBG128()
	is.NoError(x2.Seed([]byte("seed-b"), nil))
	is.NoError(x2.Generate(nil, out2))

	is.NotEqual(out1, out2)
}

func TestXDRBGZeroResetsSeededState(t *testing.T) {
	is := require.New(t)

	x := NewXDRBG128()
	is.NoError(x.Seed([]byte("s"), nil))
	x.Zero()

	out := make([]byte, 16)
	is.Equal(ErrNotSeeded, x.Generate(nil, out))
}

func TestXDRBGAlphaLongerThanClampStillWorks(t *testing.T) {
	is := require.New(t)

	x := NewXDRBG128()
	longAlpha := make([]byte, 200)
	for i := range longAlpha {
		longAlpha[i] = byte(i)
	}
	is.NoError(x.Seed(longAlpha, nil))
	out := make([]byte, 16)
	is.NoError(x.Generate(nil, out))
}
