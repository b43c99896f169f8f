// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package cpufeature

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetIsIdempotent(t *testing.T) {
	is := require.New(t)

	ResetForTest()
	defer ResetForTest()

	a := Get()
	b := Get()
	is.Equal(a, b)
}

func TestForceFeaturesOverridesCache(t *testing.T) {
	is := require.New(t)

	ResetForTest()
	defer ResetForTest()

	ForceFeatures(Features{AVX2: true, AESNI: true})
	got := Get()
	is.True(got.AVX2)
	is.True(got.AESNI)
	is.True(IsForced())
}

func TestResetForTestClearsForced(t *testing.T) {
	is := require.New(t)

	ForceFeatures(Features{AVX2: true})
	ResetForTest()
	is.False(IsForced())
}
