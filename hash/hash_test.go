// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package hash

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSHA3_256EmptyStringKAT(t *testing.T) {
	t.Parallel()
	is := require.New(t)

	h := NewSHA3_256()
	h.Update(nil)
	got := make([]byte, 32)
	h.Finalize(got)

	want, err := hex.DecodeString("a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a")
	is.NoError(err)
	is.Equal(want, got)
}

func TestSHA3_224EmptyStringKAT(t *testing.T) {
	t.Parallel()
	is := require.New(t)

	h := NewSHA3_224()
	h.Update(nil)
	got := make([]byte, 28)
	h.Finalize(got)

	want, err := hex.DecodeString("6b4e03423667dbb73b6e15454f0eb1abd4597f9a1b078e3f5b5a6bc7")
	is.NoError(err)
	is.Equal(want, got)
}

func TestSHA3_512EmptyStringKAT(t *testing.T) {
	t.Parallel()
	is := require.New(t)

	h := NewSHA3_512()
	h.Update(nil)
	got := make([]byte, 64)
	h.Finalize(got)

	want, err := hex.DecodeString("a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a615b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26")
	is.NoError(err)
	is.Equal(want, got)
}

func TestSHAKE128EmptyStringKAT(t *testing.T) {
	t.Parallel()
	is := require.New(t)

	h := NewSHAKE128()
	h.Update(nil)
	got := make([]byte, 16)
	h.Finalize(got)

	want, err := hex.DecodeString("7f9c2ba4e88f827d616045507605853e")
	is.NoError(err)
	is.Equal(want, got)
}

func TestSHAKESetDigestSizeRejectedOnFixedVariant(t *testing.T) {
	t.Parallel()
	is := require.New(t)

	h := NewSHA3_256()
	is.Equal(ErrSetDigestSizeNotSupported, h.SetDigestSize(64))
}

func TestSHAKEIsExtendable(t *testing.T) {
	t.Parallel()
	is := require.New(t)

	h := NewSHAKE256()
	is.True(h.IsXOF())
	is.NoError(h.SetDigestSize(128))
	h.Update([]byte("grow"))
	out := make([]byte, 128)
	h.Finalize(out)
	is.NotEqual(make([]byte, 128), out)
}

func TestCSHAKEReducesToSHAKEWhenEmpty(t *testing.T) {
	t.Parallel()
	is := require.New(t)

	msg := []byte("reduction check")

	cs := NewCSHAKE128("", "")
	cs.Update(msg)
	got := make([]byte, 32)
	cs.Finalize(got)

	sh := NewSHAKE128()
	sh.Update(msg)
	want := make([]byte, 32)
	sh.Finalize(want)

	is.Equal(want, got)
}

func TestCSHAKECustomizationChangesOutput(t *testing.T) {
	t.Parallel()
	is := require.New(t)

	msg := []byte("same message")

	a := NewCSHAKE128("", "A")
	a.Update(msg)
	outA := make([]byte, 32)
	a.Finalize(outA)

	b := NewCSHAKE128("", "B")
	b.Update(msg)
	outB := make([]byte, 32)
	b.Finalize(outB)

	is.NotEqual(outA, outB)
}

func TestAsconHash256IsDeterministicAndFixedSize(t *testing.T) {
	t.Parallel()
	is := require.New(t)

	msg := []byte("ascon hash input")

	a := NewAsconHash256()
	a.Update(msg)
	out1 := make([]byte, 32)
	a.Finalize(out1)

	b := NewAsconHash256()
	b.Update(msg)
	out2 := make([]byte, 32)
	b.Finalize(out2)

	is.Equal(out1, out2)
	is.Equal(ErrSetDigestSizeNotSupported, a.SetDigestSize(64))
}

func TestAsconXOF128ExtendsOutput(t *testing.T) {
	t.Parallel()
	is := require.New(t)

	a := NewAsconXOF128()
	is.True(a.IsXOF())
	is.NoError(a.SetDigestSize(96))
	a.Update([]byte("ascon xof input"))
	out := make([]byte, 96)
	a.Finalize(out)
	is.NotEqual(make([]byte, 96), out)
}

func TestAsconCXOF128DistinctFromPlainXOF(t *testing.T) {
	t.Parallel()
	is := require.New(t)

	msg := []byte("same input")

	x := NewAsconXOF128()
	x.Update(msg)
	outX := make([]byte, 32)
	x.Finalize(outX)

	cx := NewAsconCXOF128("", "customized")
	cx.Update(msg)
	outCX := make([]byte, 32)
	cx.Finalize(outCX)

	is.NotEqual(outX, outCX)
}

func TestSHA2_256MatchesStandardLibrary(t *testing.T) {
	t.Parallel()
	is := require.New(t)

	h := NewSHA2_256()
	h.Update([]byte("abc"))
	got := make([]byte, 32)
	h.Finalize(got)

	// FIPS 180-4 known answer for SHA-256("abc").
	want, err := hex.DecodeString("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")
	is.NoError(err)
	is.Equal(want, got)
}

func TestSHA2_512BlockSize(t *testing.T) {
	t.Parallel()
	is := require.New(t)

	h := NewSHA2_512()
	is.Equal(128, h.BlockSize())
	is.False(h.IsXOF())
}
