// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package aead

import (
	"github.com/leancrypto-go/leancrypto/drbg"
	"github.com/leancrypto-go/leancrypto/internal/safe"
	"github.com/leancrypto-go/leancrypto/internal/status"
	"github.com/leancrypto-go/leancrypto/kmac"
)

const (
	kmacAEADMacKeySize    = 32
	kmacAEADCustomization = "KMAC-AEAD auth"
)

// KMACAEAD is the KMAC-based AEAD family described in spec.md §3's
// "KMAC-AEAD state": the same shape as HashAEAD, substituting KMAC-DRNG
// for the keystream source and KMAC for authentication.
type KMACAEAD struct {
	keystream *keystream
	macKey    []byte
	mac       *kmac.KMAC
	state     state
}

// NewKMACAEAD returns a fresh, unkeyed KMAC-AEAD instance.
func NewKMACAEAD() *KMACAEAD { return &KMACAEAD{state: fresh} }

// SetKey seeds the internal KMAC-DRNG from key and iv and derives the KMAC
// authentication key (spec.md §4.10). Re-keying is only permitted from
// fresh or finalized.
func (a *KMACAEAD) SetKey(key, iv []byte) error {
	if a.state != fresh && a.state != finalized {
		return ErrInvalidState
	}
	if err := status.Check(status.KMACAEAD, kmacAEADSelfTest); err != nil {
		return err
	}
	return a.setKeyNoCheck(key, iv)
}

func (a *KMACAEAD) setKeyNoCheck(key, iv []byte) error {
	rng := drbg.NewKMACDRNG()
	if err := rng.Seed(key, iv); err != nil {
		return err
	}

	macKey := make([]byte, kmacAEADMacKeySize)
	if err := rng.Generate(nil, macKey); err != nil {
		return err
	}

	a.keystream = newKeystream(rng)
	a.macKey = macKey
	a.mac = nil
	a.state = keyed
	return nil
}

func (a *KMACAEAD) ensureMac() {
	if a.mac == nil {
		a.mac = kmac.New(a.macKey, kmacAEADCustomization)
	}
}

// EncInit absorbs aad into the MAC ahead of any ciphertext.
func (a *KMACAEAD) EncInit(aad []byte) error {
	if a.state != keyed {
		return ErrInvalidState
	}
	a.ensureMac()
	a.mac.Update(aad)
	a.state = aadAbsorbing
	return nil
}

// EncUpdate encrypts pt into ctOut (same length) via the keystream and
// feeds the resulting ciphertext into the MAC.
func (a *KMACAEAD) EncUpdate(pt, ctOut []byte) error {
	if a.state != keyed && a.state != aadAbsorbing && a.state != crypting {
		return ErrInvalidState
	}
	if len(ctOut) < len(pt) {
		return ErrInvalidState
	}
	a.ensureMac()
	a.state = crypting

	if err := a.keystream.xor(ctOut[:len(pt)], pt); err != nil {
		return err
	}
	a.mac.Update(ctOut[:len(pt)])
	return nil
}

// EncFinal finalizes the MAC into tagOut.
func (a *KMACAEAD) EncFinal(tagOut []byte) error {
	if a.state != crypting && a.state != aadAbsorbing && a.state != keyed {
		return ErrInvalidState
	}
	a.ensureMac()
	a.mac.Finalize(tagOut)
	a.mac = nil
	a.state = finalized
	return nil
}

// EncOneshot runs enc_init/enc_update/enc_final in a single call (spec.md
// §3's encrypt_oneshot), producing byte-identical ciphertext and tag to the
// equivalent streamed EncInit/EncUpdate/EncFinal sequence since it is
// implemented directly in terms of them.
func (a *KMACAEAD) EncOneshot(aad, pt, ctOut, tagOut []byte) error {
	if err := a.EncInit(aad); err != nil {
		return err
	}
	if err := a.EncUpdate(pt, ctOut); err != nil {
		return err
	}
	return a.EncFinal(tagOut)
}

// DecInit mirrors EncInit.
func (a *KMACAEAD) DecInit(aad []byte) error { return a.EncInit(aad) }

// DecUpdate decrypts ct into ptOut (same length), feeding the *ciphertext*
// into the MAC before XORing the keystream.
func (a *KMACAEAD) DecUpdate(ct, ptOut []byte) error {
	if a.state != keyed && a.state != aadAbsorbing && a.state != crypting {
		return ErrInvalidState
	}
	if len(ptOut) < len(ct) {
		return ErrInvalidState
	}
	a.ensureMac()
	a.state = crypting

	a.mac.Update(ct)
	return a.keystream.xor(ptOut[:len(ct)], ct)
}

// DecFinal compares the computed tag against wantTag in constant time.
func (a *KMACAEAD) DecFinal(wantTag []byte) error {
	if a.state != crypting && a.state != aadAbsorbing && a.state != keyed {
		return ErrInvalidState
	}
	a.ensureMac()

	got := make([]byte, len(wantTag))
	a.mac.Finalize(got)
	a.mac = nil
	a.state = finalized

	equal := constantTimeCompare(got, wantTag)
	safe.Wipe(got)
	if !equal {
		return ErrTagMismatch
	}
	return nil
}

// DecOneshot runs dec_init/dec_update/dec_final in a single call (spec.md
// §3's decrypt_oneshot).
func (a *KMACAEAD) DecOneshot(aad, ct, ptOut, wantTag []byte) error {
	if err := a.DecInit(aad); err != nil {
		return err
	}
	if err := a.DecUpdate(ct, ptOut); err != nil {
		return err
	}
	return a.DecFinal(wantTag)
}

// Zero wipes all key-derived state.
func (a *KMACAEAD) Zero() {
	if a.keystream != nil {
		a.keystream.zero()
	}
	safe.Wipe(a.macKey)
	if a.mac != nil {
		a.mac.Zero()
		a.mac = nil
	}
	a.state = fresh
}

// kmacAEADSelfTest exercises a full set_key/enc/dec round trip. As with
// hashAEADSelfTest, no externally published KAT exists for this exact
// construction, so correctness is checked structurally.
func kmacAEADSelfTest() error {
	key := []byte("kmac-aead self-test key material")
	iv := []byte("kmac-aead self-test iv")
	aad := []byte("kmac-aead self-test aad")
	plaintext := []byte("kmac-aead self-test plaintext")

	enc := NewKMACAEAD()
	if err := enc.setKeyNoCheck(key, iv); err != nil {
		return err
	}
	if err := enc.EncInit(aad); err != nil {
		return err
	}
	ciphertext := make([]byte, len(plaintext))
	if err := enc.EncUpdate(plaintext, ciphertext); err != nil {
		return err
	}
	tag := make([]byte, 16)
	if err := enc.EncFinal(tag); err != nil {
		return err
	}

	dec := NewKMACAEAD()
	if err := dec.setKeyNoCheck(key, iv); err != nil {
		return err
	}
	if err := dec.DecInit(aad); err != nil {
		return err
	}
	recovered := make([]byte, len(ciphertext))
	if err := dec.DecUpdate(ciphertext, recovered); err != nil {
		return err
	}
	if err := dec.DecFinal(tag); err != nil {
		return err
	}

	if string(recovered) != string(plaintext) {
		return status.ErrSelfTestFailed
	}
	return nil
}
