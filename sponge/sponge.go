// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package sponge implements the absorb/squeeze sponge engine shared by
// every Keccak- and Ascon-derived construction in leancrypto (SHA-3, SHAKE,
// cSHAKE, KMAC, Ascon-XOF), per spec.md §3 and §4.5.
//
// The engine is generic over a Permutation so that the same absorb/squeeze
// state machine serves both the Keccak-f[1600] family (package-local
// keccak.go) and the Ascon-p family (ascon.go). The output is a function of
// (permutation, rate, padding byte, message) only, so any two
// implementations of the same permutation produce bit-exact output — the
// cross-back-end equivalence property required by spec.md §8.
package sponge

import "github.com/leancrypto-go/leancrypto/internal/safe"

// Permutation is the narrow interface the sponge engine drives. Lanes is
// the full state width in 64-bit words (25 for Keccak-f[1600], 5 for
// Ascon-p). Permute applies one full application of the permutation to
// state in place.
type Permutation interface {
	Lanes() int
	Permute(state []uint64)
}

// spongeState is the machine's current phase, matching spec.md §3's
// "Invariant: after init and before any update, msg_len=0 ∧
// squeeze_more=false ∧ offset=0" and the one-way absorbing->squeezing
// transition.
type spongeState int

const (
	absorbing spongeState = iota
	squeezing
)

// State is the sponge automaton described in spec.md §3: 25 (or fewer,
// depending on the plugged-in Permutation) 64-bit lanes, a rate in bytes, a
// domain-separation padding byte, and the bookkeeping needed to support
// partial-block absorption and byte-wise squeezing.
//
// A State must be initialized with Init before use and must not have its
// rate, padding, or permutation changed afterwards except through
// SetDigestSize, which is restricted to XOFs and only changes the target
// output length.
type State struct {
	perm Permutation

	lanes   []uint64 // state words, width = perm.Lanes()
	scratch []byte   // reusable little-endian view of lanes, len == 8*len(lanes)
	rate    int      // bytes of state exposed to input/output per permutation
	pad     byte     // domain-separation padding byte

	phase      spongeState
	msgLen     uint64 // bytes absorbed since Init, mod rate gives block offset
	squeezed   uint64 // bytes squeezed out so far, for fixed-digest truncation
	offset     int    // cursor within the current rate-sized block
	digestSize int    // target output length in bytes; 0 means "extendable"
	fixedSize  bool   // true for SHA-3, false for XOF variants
}

// Init (re)initializes state to begin absorbing fresh input using perm,
// rate bytes of exposed state per permutation, pad as the domain-separation
// byte, and digestSize as either a fixed output length (fixedSize=true) or
// the default XOF output length (fixedSize=false, callers may still call
// SetDigestSize before the first Squeeze).
func (s *State) Init(perm Permutation, rate int, pad byte, digestSize int, fixedSize bool) {
	n := perm.Lanes()
	if cap(s.lanes) < n {
		s.lanes = make([]uint64, n)
		s.scratch = make([]byte, n*8)
	} else {
		s.lanes = s.lanes[:n]
		for i := range s.lanes {
			s.lanes[i] = 0
		}
	}
	s.perm = perm
	s.rate = rate
	s.pad = pad
	s.phase = absorbing
	s.msgLen = 0
	s.squeezed = 0
	s.offset = 0
	s.digestSize = digestSize
	s.fixedSize = fixedSize
}

// Rate returns the configured rate in bytes.
func (s *State) Rate() int { return s.rate }

// DigestSize returns the currently configured output length in bytes.
func (s *State) DigestSize() int { return s.digestSize }

// SetDigestSize changes the target output length for an XOF. It is an error
// (ignored, matching spec.md §4.6's "forbidden for fixed-digest variants")
// to call this on a fixed-digest-size variant or after squeezing has begun.
func (s *State) SetDigestSize(n int) {
	if s.fixedSize || s.phase == squeezing {
		return
	}
	s.digestSize = n
}

// laneBytes views the lane array as a little-endian byte slice, reusing the
// State's scratch buffer rather than allocating on every call — this
// function sits on the hot path of every absorb/squeeze block boundary.
func (s *State) laneBytes() []byte {
	for i, w := range s.lanes {
		le64(s.scratch[i*8:i*8+8], w)
	}
	return s.scratch
}

func (s *State) setLaneBytes(buf []byte) {
	for i := range s.lanes {
		s.lanes[i] = leGet64(buf[i*8 : i*8+8])
	}
}

func le64(dst []byte, w uint64) {
	dst[0] = byte(w)
	dst[1] = byte(w >> 8)
	dst[2] = byte(w >> 16)
	dst[3] = byte(w >> 24)
	dst[4] = byte(w >> 32)
	dst[5] = byte(w >> 40)
	dst[6] = byte(w >> 48)
	dst[7] = byte(w >> 56)
}

func leGet64(src []byte) uint64 {
	return uint64(src[0]) | uint64(src[1])<<8 | uint64(src[2])<<16 | uint64(src[3])<<24 |
		uint64(src[4])<<32 | uint64(src[5])<<40 | uint64(src[6])<<48 | uint64(src[7])<<56
}

// SpongeAddBytes XORs data directly into the state at byte offset off
// (within the rate-sized block) without advancing msgLen or permuting. It
// is exposed, per spec.md §4.5, so higher constructions (cSHAKE
// bytepad/encode_string, KMAC's key-block prefix) can write directly into
// state without re-entering Update.
func (s *State) SpongeAddBytes(data []byte, off int) {
	buf := s.laneBytes()
	for i, b := range data {
		buf[off+i] ^= b
	}
	s.setLaneBytes(buf)
}

// SpongePermute applies one permutation to the state directly, for use by
// higher constructions that have written a complete block via
// SpongeAddBytes and need to advance the sponge without going through
// Update's byte-counting logic.
func (s *State) SpongePermute() {
	s.perm.Permute(s.lanes)
}

// SpongeNewState resets the sponge to an all-zero state without touching
// rate/pad/digestSize, for constructions that need a fresh permutation
// state mid-protocol (e.g. cSHAKE re-using a configured State across
// messages).
func (s *State) SpongeNewState() {
	for i := range s.lanes {
		s.lanes[i] = 0
	}
	s.phase = absorbing
	s.msgLen = 0
	s.squeezed = 0
	s.offset = 0
}

// SpongeExtractBytes copies n bytes starting at byte offset off within the
// current block directly out of state, without advancing the squeeze
// cursor or permuting. Exposed for the same reason as SpongeAddBytes.
func (s *State) SpongeExtractBytes(out []byte, off int) {
	buf := s.laneBytes()
	copy(out, buf[off:off+len(out)])
}

// Update absorbs data into the sponge. It is undefined — and rejected here
// as a no-op — to call Update after squeezing has begun (spec.md §4.5:
// "update in squeezing is undefined and must be rejected").
func (s *State) Update(data []byte) {
	if s.phase == squeezing {
		return
	}

	buf := s.laneBytes()
	off := int(s.msgLen % uint64(s.rate))

	for len(data) > 0 {
		n := s.rate - off
		if n > len(data) {
			n = len(data)
		}
		for i := 0; i < n; i++ {
			buf[off+i] ^= data[i]
		}
		data = data[n:]
		off += n
		s.msgLen += uint64(n)

		if off == s.rate {
			s.setLaneBytes(buf)
			s.perm.Permute(s.lanes)
			buf = s.laneBytes()
			off = 0
		}
	}

	s.setLaneBytes(buf)
}

// finalize injects the padding byte and the final-block high bit, permutes,
// and transitions the sponge from absorbing to squeezing. It is a no-op if
// already squeezing.
func (s *State) finalize() {
	if s.phase == squeezing {
		return
	}

	buf := s.laneBytes()
	off := int(s.msgLen % uint64(s.rate))
	buf[off] ^= s.pad
	buf[s.rate-1] ^= 0x80
	s.setLaneBytes(buf)
	s.perm.Permute(s.lanes)

	s.phase = squeezing
	s.offset = 0
	s.squeezed = 0
}

// Squeeze delivers n bytes of output into out[:n]. The first call to
// Squeeze (on any State, fixed or extendable) triggers finalize. Squeeze
// with n==0 is a no-op and leaves the internal offset unchanged, per
// spec.md §8's boundary behavior requirement.
func (s *State) Squeeze(out []byte) {
	n := len(out)
	if n == 0 {
		return
	}

	if s.phase == absorbing {
		s.finalize()
	}

	produced := 0
	for produced < n {
		if s.offset == s.rate {
			s.perm.Permute(s.lanes)
			s.offset = 0
		}
		buf := s.laneBytes()
		avail := s.rate - s.offset
		want := n - produced
		take := avail
		if take > want {
			take = want
		}
		copy(out[produced:produced+take], buf[s.offset:s.offset+take])
		produced += take
		s.offset += take
		s.squeezed += uint64(take)
	}
}

// Finalize computes the digest into out, sized according to DigestSize (for
// fixed-digest variants, out must be exactly that length; for XOFs, out may
// be any length and SetDigestSize is ignored by Finalize itself — callers
// that want to honor a previously-set DigestSize should size out
// accordingly before calling).
func (s *State) Finalize(out []byte) {
	s.Squeeze(out)
}

// Zero wipes the sponge state, returning it to a safe, all-zero condition.
// Callers that allocated a State on the stack should call Zero before the
// State goes out of scope, per spec.md §3's ownership/lifecycle rules.
func (s *State) Zero() {
	safe.WipeUint64(s.lanes)
	safe.Wipe(s.scratch)
	s.phase = absorbing
	s.msgLen = 0
	s.squeezed = 0
	s.offset = 0
}
