// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package status

// Canonical algorithm ids shared across packages, declared once here so
// that two packages never accidentally collide on the same registry key.
var (
	SHA3_224  = NewID("sha3-224")
	SHA3_256  = NewID("sha3-256")
	SHA3_384  = NewID("sha3-384")
	SHA3_512  = NewID("sha3-512")
	SHAKE128  = NewID("shake-128")
	SHAKE256  = NewID("shake-256")
	CSHAKE128 = NewID("cshake-128")
	CSHAKE256 = NewID("cshake-256")
	AsconHash256 = NewID("ascon-hash256")
	AsconXOF128  = NewID("ascon-xof128")
	AsconCXOF128 = NewID("ascon-cxof128")
	SHA2_256  = NewID("sha2-256")
	SHA2_512  = NewID("sha2-512")

	HMAC = NewID("hmac")
	KMAC = NewID("kmac")

	AES             = NewID("aes")
	AESAccelerated  = NewID("aes-accelerated")
	AESPortable     = NewID("aes-portable")
	GCM             = NewID("aes-gcm")

	KMACDRNG    = NewID("kmac-drng")
	XDRBG128    = NewID("xdrbg-128")
	XDRBG256    = NewID("xdrbg-256")
	XDRBG512    = NewID("xdrbg-512")
	ChaCha20DRNG = NewID("chacha20-drng")

	HashAEAD = NewID("hash-aead")
	KMACAEAD = NewID("kmac-aead")

	X25519 = NewID("x25519")
)
