// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package gcm

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAES256GCMKAT(t *testing.T) {
	t.Parallel()
	is := require.New(t)

	key, err := hex.DecodeString("7f7168a406e7c1ef0fd47ac922c5ec5f659765fb6aaa048f7056f6c6b5d8513d"[:64])
	is.NoError(err)
	iv, err := hex.DecodeString("b8b5e407adc0e293e3e7e991")
	is.NoError(err)
	aad, err := hex.DecodeString("ff7628f6427fbcef1f3b82b37404e116"[:32])
	is.NoError(err)
	pt, err := hex.DecodeString("b706194bb0b10c474e1b2d7b2278224c"[:32])
	is.NoError(err)
	wantCT, err := hex.DecodeString("8fada0b8e777a829ca9680d3bf4f3574"[:32])
	is.NoError(err)
	wantTag, err := hex.DecodeString("daca354277f6335fc8bec90886da70"[:30])
	is.NoError(err)

	g := New()
	is.NoError(g.SetKey(key, iv))
	is.NoError(g.EncInit(aad))
	ct := make([]byte, len(pt))
	is.NoError(g.EncUpdate(pt, ct))
	tag := make([]byte, len(wantTag))
	is.NoError(g.EncFinal(tag))

	is.Equal(wantCT, ct)
	is.Equal(wantTag, tag)
}

func TestGCMRoundTrip(t *testing.T) {
	t.Parallel()
	is := require.New(t)

	key := []byte(strings.Repeat("\x11", 16))
	iv := []byte(strings.Repeat("\x22", 12))
	aad := []byte("associated data")
	pt := []byte("the quick brown fox jumps over the lazy dog, twice over for two blocks")

	enc := New()
	is.NoError(enc.SetKey(key, iv))
	is.NoError(enc.EncInit(aad))
	ct := make([]byte, len(pt))
	is.NoError(enc.EncUpdate(pt, ct))
	tag := make([]byte, 16)
	is.NoError(enc.EncFinal(tag))

	dec := New()
	is.NoError(dec.SetKey(key, iv))
	is.NoError(dec.DecInit(aad))
	got := make([]byte, len(ct))
	is.NoError(dec.DecUpdate(ct, got))
	is.NoError(dec.DecFinal(tag))
	is.Equal(pt, got)
}

func TestGCMTamperedTagRejected(t *testing.T) {
	t.Parallel()
	is := require.New(t)

	key := []byte(strings.Repeat("\x33", 16))
	iv := []byte(strings.Repeat("\x44", 12))
	pt := []byte("secret message")

	enc := New()
	_ = enc.SetKey(key, iv)
	ct := make([]byte, len(pt))
	_ = enc.EncUpdate(pt, ct)
	tag := make([]byte, 16)
	_ = enc.EncFinal(tag)
	tag[0] ^= 0xff

	dec := New()
	_ = dec.SetKey(key, iv)
	got := make([]byte, len(ct))
	_ = dec.DecUpdate(ct, got)
	is.Equal(ErrTagMismatch, dec.DecFinal(tag))
}

func TestGCMLongIVGeneralCase(t *testing.T) {
	t.Parallel()
	is := require.New(t)

	key := []byte(strings.Repeat("\x55", 32))
	iv := []byte(strings.Repeat("\x66", 20)) // not 12 bytes: exercises the GHASH-derived J0 path
	pt := []byte("general-case IV derivation")

	enc := New()
	is.NoError(enc.SetKey(key, iv))
	ct := make([]byte, len(pt))
	is.NoError(enc.EncUpdate(pt, ct))
	tag := make([]byte, 16)
	is.NoError(enc.EncFinal(tag))

	dec := New()
	is.NoError(dec.SetKey(key, iv))
	got := make([]byte, len(ct))
	is.NoError(dec.DecUpdate(ct, got))
	is.NoError(dec.DecFinal(tag))
	is.Equal(pt, got)
}

func TestGCMOneshotMatchesStreamed(t *testing.T) {
	t.Parallel()
	is := require.New(t)

	key := []byte(strings.Repeat("\x99", 16))
	iv := []byte(strings.Repeat("\xaa", 12))
	aad := []byte("oneshot vs streamed aad")
	pt := []byte("oneshot and streamed encryption must produce identical output")

	streamEnc := New()
	is.NoError(streamEnc.SetKey(key, iv))
	is.NoError(streamEnc.EncInit(aad))
	streamCT := make([]byte, len(pt))
	is.NoError(streamEnc.EncUpdate(pt, streamCT))
	streamTag := make([]byte, 16)
	is.NoError(streamEnc.EncFinal(streamTag))

	oneshotEnc := New()
	is.NoError(oneshotEnc.SetKey(key, iv))
	oneshotCT := make([]byte, len(pt))
	oneshotTag := make([]byte, 16)
	is.NoError(oneshotEnc.EncOneshot(aad, pt, oneshotCT, oneshotTag))

	is.Equal(streamCT, oneshotCT)
	is.Equal(streamTag, oneshotTag)

	streamDec := New()
	is.NoError(streamDec.SetKey(key, iv))
	is.NoError(streamDec.DecInit(aad))
	streamPT := make([]byte, len(streamCT))
	is.NoError(streamDec.DecUpdate(streamCT, streamPT))
	is.NoError(streamDec.DecFinal(streamTag))

	oneshotDec := New()
	is.NoError(oneshotDec.SetKey(key, iv))
	oneshotPT := make([]byte, len(oneshotCT))
	is.NoError(oneshotDec.DecOneshot(aad, oneshotCT, oneshotPT, oneshotTag))

	is.Equal(pt, streamPT)
	is.Equal(streamPT, oneshotPT)
}

func TestSetKeyRejectsFromAADAbsorbingState(t *testing.T) {
	t.Parallel()
	is := require.New(t)

	key := []byte(strings.Repeat("\x77", 16))
	iv := []byte(strings.Repeat("\x88", 12))

	g := New()
	_ = g.SetKey(key, iv)
	_ = g.EncInit([]byte("aad"))

	is.Equal(ErrInvalidState, g.SetKey(key, iv))
}
