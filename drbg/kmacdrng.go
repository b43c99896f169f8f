// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import (
	"github.com/leancrypto-go/leancrypto/internal/safe"
	"github.com/leancrypto-go/leancrypto/kmac"
)

const (
	kmacDRNGKeySize = 64 // 512 bits

	kmacDRNGSeedCustomization     = "KMAC-DRNG seed"
	kmacDRNGGenerateCustomization = "KMAC-DRNG generate"

	// kmacDRNGRate is cSHAKE-256's rate in bytes; MAX_CHUNK is bounded to
	// 100 rate blocks per spec.md §4.9's KMAC-DRNG specifics.
	kmacDRNGRate     = 136
	kmacDRNGMaxChunk = 100 * kmacDRNGRate
)

// KMACDRNG is the KMAC-DRNG fast-key-erasure generator: a 512-bit key
// refreshed via KMAC on every seed and every generate call.
type KMACDRNG struct {
	key    [kmacDRNGKeySize]byte
	seeded bool
}

// NewKMACDRNG returns an unseeded KMAC-DRNG instance.
func NewKMACDRNG() *KMACDRNG { return &KMACDRNG{} }

// Seed absorbs seed and personalization into the key (spec.md §4.9 step 2):
// K(N+1) = KMAC(K(N), "KMAC-DRNG seed")(seed || personalization). Before
// the first successful seed, K(N) is treated as empty.
func (g *KMACDRNG) Seed(seed, personalization []byte) error {
	prevKey := []byte(nil)
	if g.seeded {
		prevKey = g.key[:]
	}

	m := kmac.New(prevKey, kmacDRNGSeedCustomization)
	m.Update(seed)
	m.Update(personalization)

	var newKey [kmacDRNGKeySize]byte
	m.Finalize(newKey[:])
	m.Zero()

	g.key = newKey
	safe.Wipe(newKey[:])
	g.seeded = true
	return nil
}

// Generate produces len(out) bytes, chunked into pieces no larger than
// kmacDRNGMaxChunk. Each chunk re-keys before releasing bytes (spec.md
// §4.9 step 3): a single KMAC squeeze produces key-size-plus-chunk bytes;
// the first key-size bytes become K(N+1), the rest are copied to out.
func (g *KMACDRNG) Generate(additionalInput, out []byte) error {
	if !g.seeded {
		return ErrNotSeeded
	}

	for len(out) > 0 {
		chunk := len(out)
		if chunk > kmacDRNGMaxChunk {
			chunk = kmacDRNGMaxChunk
		}

		m := kmac.New(g.key[:], kmacDRNGGenerateCustomization)
		m.Update(additionalInput)

		buf := make([]byte, kmacDRNGKeySize+chunk)
		m.Finalize(buf)
		m.Zero()

		copy(g.key[:], buf[:kmacDRNGKeySize])
		copy(out[:chunk], buf[kmacDRNGKeySize:])
		safe.Wipe(buf)

		out = out[chunk:]
	}
	return nil
}

// Zero wipes the key and resets the seeded flag.
func (g *KMACDRNG) Zero() {
	safe.Wipe(g.key[:])
	g.seeded = false
}
