// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package hash

// The encoding primitives below implement NIST SP 800-185 §2.3
// (left_encode, right_encode, encode_string, bytepad), shared by cSHAKE,
// KMAC, and any future SP 800-185 construction. They are exported so
// package kmac (a separate capability built on top of cSHAKE) can reuse
// them without duplicating the bit-twiddling.

// LeftEncode returns the left_encode(x) byte string: the minimal big-endian
// encoding of x, prefixed with its own length in one byte.
func LeftEncode(x uint64) []byte {
	var buf [9]byte
	var be [8]byte
	be[0] = byte(x >> 56)
	be[1] = byte(x >> 48)
	be[2] = byte(x >> 40)
	be[3] = byte(x >> 32)
	be[4] = byte(x >> 24)
	be[5] = byte(x >> 16)
	be[6] = byte(x >> 8)
	be[7] = byte(x)

	start := 0
	for start < 7 && be[start] == 0 {
		start++
	}
	n := byte(8 - start)
	buf[0] = n
	copy(buf[1:], be[start:])
	return append([]byte{}, buf[:1+n]...)
}

// RightEncode returns the right_encode(x) byte string: the minimal
// big-endian encoding of x, followed by its own length in one byte.
func RightEncode(x uint64) []byte {
	var be [8]byte
	be[0] = byte(x >> 56)
	be[1] = byte(x >> 48)
	be[2] = byte(x >> 40)
	be[3] = byte(x >> 32)
	be[4] = byte(x >> 24)
	be[5] = byte(x >> 16)
	be[6] = byte(x >> 8)
	be[7] = byte(x)

	start := 0
	for start < 7 && be[start] == 0 {
		start++
	}
	n := byte(8 - start)
	out := make([]byte, 0, n+1)
	out = append(out, be[start:]...)
	out = append(out, n)
	return out
}

// EncodeString returns encode_string(s) = left_encode(len(s) in bits) || s.
func EncodeString(s []byte) []byte {
	out := LeftEncode(uint64(len(s)) * 8)
	return append(out, s...)
}

// BytePad returns bytepad(x, w): left_encode(w) || x, right-padded with
// zero bytes to the next multiple of w.
func BytePad(x []byte, w int) []byte {
	z := append(LeftEncode(uint64(w)), x...)
	if rem := len(z) % w; rem != 0 {
		z = append(z, make([]byte, w-rem)...)
	}
	return z
}
