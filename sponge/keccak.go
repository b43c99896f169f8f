// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package sponge

import "math/bits"

// Keccak is the Keccak-f[1600] permutation: a 25-lane, 64-bit-per-lane,
// 24-round permutation, the basis of every SHA-3/SHAKE/cSHAKE/KMAC
// variant in package hash. It implements Permutation.
type Keccak struct{}

// Lanes reports the Keccak-f[1600] state width: 25 lanes of 64 bits each.
func (Keccak) Lanes() int { return 25 }

var keccakRC = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

var keccakRotc = [25]uint{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// piLane[x+5*y] = the source index that lane (x,y) reads from under the pi
// permutation, precomputed from the standard x,y -> y,(2x+3y) mod 5 rule.
var piLane = func() [25]int {
	var idx [25]int
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			nx, ny := y, (2*x+3*y)%5
			idx[nx+5*ny] = x + 5*y
		}
	}
	return idx
}()

// Permute applies 24 rounds of Keccak-f[1600] to state in place. state must
// have length 25.
func (Keccak) Permute(state []uint64) {
	var b [25]uint64
	a := state

	for round := 0; round < 24; round++ {
		// theta
		var c [5]uint64
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		var d [5]uint64
		for x := 0; x < 5; x++ {
			d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		}
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				a[x+5*y] ^= d[x]
			}
		}

		// rho + pi
		for i := 0; i < 25; i++ {
			b[i] = bits.RotateLeft64(a[piLane[i]], int(keccakRotc[piLane[i]]))
		}

		// chi
		for y := 0; y < 5; y++ {
			row := y * 5
			var r [5]uint64
			for x := 0; x < 5; x++ {
				r[x] = b[row+x]
			}
			for x := 0; x < 5; x++ {
				a[row+x] = r[x] ^ ((^r[(x+1)%5]) & r[(x+2)%5])
			}
		}

		// iota
		a[0] ^= keccakRC[round]
	}
}
