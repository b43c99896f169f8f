// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package aead

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leancrypto-go/leancrypto/hash"
)

func newTestHashAEAD() *HashAEAD {
	return NewHashAEAD(func() hash.Hash { return hash.NewSHAKE128() })
}

func TestHashAEADRoundTrip(t *testing.T) {
	is := require.New(t)

	key := []byte("hash-aead test key")
	iv := []byte("hash-aead test iv")
	aad := []byte("header metadata")
	plaintext := []byte("the quick brown fox jumps over the lazy dog")

	enc := newTestHashAEAD()
	is.NoError(enc.SetKey(key, iv))
	is.NoError(enc.EncInit(aad))
	ciphertext := make([]byte, len(plaintext))
	is.NoError(enc.EncUpdate(plaintext, ciphertext))
	tag := make([]byte, 16)
	is.NoError(enc.EncFinal(tag))

	dec := newTestHashAEAD()
	is.NoError(dec.SetKey(key, iv))
	is.NoError(dec.DecInit(aad))
	recovered := make([]byte, len(ciphertext))
	is.NoError(dec.DecUpdate(ciphertext, recovered))
	is.NoError(dec.DecFinal(tag))

	is.Equal(plaintext, recovered)
}

func TestHashAEADTamperedTagRejected(t *testing.T) {
	is := require.New(t)

	key := []byte("hash-aead test key")
	iv := []byte("hash-aead test iv")
	plaintext := []byte("authenticate me")

	enc := newTestHashAEAD()
	is.NoError(enc.SetKey(key, iv))
	is.NoError(enc.EncInit(nil))
	ciphertext := make([]byte, len(plaintext))
	is.NoError(enc.EncUpdate(plaintext, ciphertext))
	tag := make([]byte, 16)
	is.NoError(enc.EncFinal(tag))
	tag[0] ^= 0xff

	dec := newTestHashAEAD()
	is.NoError(dec.SetKey(key, iv))
	is.NoError(dec.DecInit(nil))
	recovered := make([]byte, len(ciphertext))
	is.NoError(dec.DecUpdate(ciphertext, recovered))
	is.Equal(ErrTagMismatch, dec.DecFinal(tag))
}

func TestHashAEADRejectsEncUpdateBeforeSetKey(t *testing.T) {
	is := require.New(t)

	a := newTestHashAEAD()
	pt := []byte("x")
	ct := make([]byte, 1)
	is.Equal(ErrInvalidState, a.EncUpdate(pt, ct))
}

func TestHashAEADKeystreamCrossesBlockBoundary(t *testing.T) {
	is := require.New(t)

	enc := newTestHashAEAD()
	is.NoError(enc.SetKey([]byte("k"), []byte("iv")))
	is.NoError(enc.EncInit(nil))

	plaintext := make([]byte, keystreamBlockSize*3+7)
	for i := range plaintext {
		plaintext[i] = byte(i)
	}
	ciphertext := make([]byte, len(plaintext))
	is.NoError(enc.EncUpdate(plaintext, ciphertext))
	tag := make([]byte, 16)
	is.NoError(enc.EncFinal(tag))

	dec := newTestHashAEAD()
	is.NoError(dec.SetKey([]byte("k"), []byte("iv")))
	is.NoError(dec.DecInit(nil))
	recovered := make([]byte, len(ciphertext))
	is.NoError(dec.DecUpdate(ciphertext, recovered))
	is.NoError(dec.DecFinal(tag))
	is.Equal(plaintext, recovered)
}

func TestHashAEADOneshotMatchesStreamed(t *testing.T) {
	is := require.New(t)

	key := []byte("hash-aead oneshot test key")
	iv := []byte("hash-aead oneshot test iv")
	aad := []byte("oneshot vs streamed aad")
	pt := []byte("oneshot and streamed encryption must produce identical output")

	streamEnc := newTestHashAEAD()
	is.NoError(streamEnc.SetKey(key, iv))
	is.NoError(streamEnc.EncInit(aad))
	streamCT := make([]byte, len(pt))
	is.NoError(streamEnc.EncUpdate(pt, streamCT))
	streamTag := make([]byte, 16)
	is.NoError(streamEnc.EncFinal(streamTag))

	oneshotEnc := newTestHashAEAD()
	is.NoError(oneshotEnc.SetKey(key, iv))
	oneshotCT := make([]byte, len(pt))
	oneshotTag := make([]byte, 16)
	is.NoError(oneshotEnc.EncOneshot(aad, pt, oneshotCT, oneshotTag))

	is.Equal(streamCT, oneshotCT)
	is.Equal(streamTag, oneshotTag)

	streamDec := newTestHashAEAD()
	is.NoError(streamDec.SetKey(key, iv))
	is.NoError(streamDec.DecInit(aad))
	streamPT := make([]byte, len(streamCT))
	is.NoError(streamDec.DecUpdate(streamCT, streamPT))
	is.NoError(streamDec.DecFinal(streamTag))

	oneshotDec := newTestHashAEAD()
	is.NoError(oneshotDec.SetKey(key, iv))
	oneshotPT := make([]byte, len(oneshotCT))
	is.NoError(oneshotDec.DecOneshot(aad, oneshotCT, oneshotPT, oneshotTag))

	is.Equal(pt, streamPT)
	is.Equal(streamPT, oneshotPT)
}

func TestKMACAEADRoundTrip(t *testing.T) {
	is := require.New(t)

	key := []byte("kmac-aead test key")
	iv := []byte("kmac-aead test iv")
	aad := []byte("header metadata")
	plaintext := []byte("the quick brown fox jumps over the lazy dog")

	enc := NewKMACAEAD()
	is.NoError(enc.SetKey(key, iv))
	is.NoError(enc.EncInit(aad))
	ciphertext := make([]byte, len(plaintext))
	is.NoError(enc.EncUpdate(plaintext, ciphertext))
	tag := make([]byte, 16)
	is.NoError(enc.EncFinal(tag))

	dec := NewKMACAEAD()
	is.NoError(dec.SetKey(key, iv))
	is.NoError(dec.DecInit(aad))
	recovered := make([]byte, len(ciphertext))
	is.NoError(dec.DecUpdate(ciphertext, recovered))
	is.NoError(dec.DecFinal(tag))

	is.Equal(plaintext, recovered)
}

func TestKMACAEADWrongAADRejected(t *testing.T) {
	is := require.New(t)

	key := []byte("kmac-aead test key")
	iv := []byte("kmac-aead test iv")
	plaintext := []byte("authenticate me")

	enc := NewKMACAEAD()
	is.NoError(enc.SetKey(key, iv))
	is.NoError(enc.EncInit([]byte("correct aad")))
	ciphertext := make([]byte, len(plaintext))
	is.NoError(enc.EncUpdate(plaintext, ciphertext))
	tag := make([]byte, 16)
	is.NoError(enc.EncFinal(tag))

	dec := NewKMACAEAD()
	is.NoError(dec.SetKey(key, iv))
	is.NoError(dec.DecInit([]byte("wrong aad")))
	recovered := make([]byte, len(ciphertext))
	is.NoError(dec.DecUpdate(ciphertext, recovered))
	is.Equal(ErrTagMismatch, dec.DecFinal(tag))
}

func TestKMACAEADRejectsReKeyFromAADAbsorbingState(t *testing.T) {
	is := require.New(t)

	a := NewKMACAEAD()
	is.NoError(a.SetKey([]byte("k"), []byte("iv")))
	is.NoError(a.EncInit(nil))
	is.Equal(ErrInvalidState, a.SetKey([]byte("k2"), []byte("iv2")))
}

func TestKMACAEADOneshotMatchesStreamed(t *testing.T) {
	is := require.New(t)

	key := []byte("kmac-aead oneshot test key")
	iv := []byte("kmac-aead oneshot test iv")
	aad := []byte("oneshot vs streamed aad")
	pt := []byte("oneshot and streamed encryption must produce identical output")

	streamEnc := NewKMACAEAD()
	is.NoError(streamEnc.SetKey(key, iv))
	is.NoError(streamEnc.EncInit(aad))
	streamCT := make([]byte, len(pt))
	is.NoError(streamEnc.EncUpdate(pt, streamCT))
	streamTag := make([]byte, 16)
	is.NoError(streamEnc.EncFinal(streamTag))

	oneshotEnc := NewKMACAEAD()
	is.NoError(oneshotEnc.SetKey(key, iv))
	oneshotCT := make([]byte, len(pt))
	oneshotTag := make([]byte, 16)
	is.NoError(oneshotEnc.EncOneshot(aad, pt, oneshotCT, oneshotTag))

	is.Equal(streamCT, oneshotCT)
	is.Equal(streamTag, oneshotTag)

	streamDec := NewKMACAEAD()
	is.NoError(streamDec.SetKey(key, iv))
	is.NoError(streamDec.DecInit(aad))
	streamPT := make([]byte, len(streamCT))
	is.NoError(streamDec.DecUpdate(streamCT, streamPT))
	is.NoError(streamDec.DecFinal(streamTag))

	oneshotDec := NewKMACAEAD()
	is.NoError(oneshotDec.SetKey(key, iv))
	oneshotPT := make([]byte, len(oneshotCT))
	is.NoError(oneshotDec.DecOneshot(aad, oneshotCT, oneshotPT, oneshotTag))

	is.Equal(pt, streamPT)
	is.Equal(streamPT, oneshotPT)
}

func TestKMACAEADZeroResetsState(t *testing.T) {
	is := require.New(t)

	a := NewKMACAEAD()
	is.NoError(a.SetKey([]byte("k"), []byte("iv")))
	a.Zero()

	pt := []byte("x")
	ct := make([]byte, 1)
	is.Equal(ErrInvalidState, a.EncUpdate(pt, ct))
}
