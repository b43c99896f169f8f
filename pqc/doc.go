// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package pqc documents the capability boundary for the algorithms
// spec.md §1 names as in-scope for the library as a whole but explicitly
// out of scope for this core's implementation: Ed448, ML-KEM (Kyber),
// ML-DSA (Dilithium), SLH-DSA (SPHINCS+), HQC, and BIKE.
//
// spec.md §1 treats "the mathematical internals of each PQ scheme (NTTs,
// polynomial arithmetic, FFT, BCH, Reed-Muller, sampling)" as external
// collaborators accessed through narrow interfaces, and does not give any
// of these six algorithms a Data Model (§3) capability contract or a test
// vector the way it does for AES, the hash/XOF family, or X25519. This
// package intentionally contains no math: it exists only to record, in one
// place, which capability each scheme would plug into if its internals
// were implemented against this core.
//
//   - Ed448: would implement the same signing/verification shape as any
//     future EdDSA-family addition to this module — distinct from X25519
//     because Ed448 is a signature scheme, not a key-agreement primitive,
//     despite sharing a curve family lineage.
//   - ML-KEM (Kyber): a key-encapsulation mechanism; would plug into the
//     RNG capability (package drbg) for its internal sampling and expose
//     Encapsulate/Decapsulate rather than the Sym or AEAD shapes.
//   - ML-DSA (Dilithium): a signature scheme built on the same lattice
//     assumptions as ML-KEM; would share ML-KEM's sampling machinery but
//     expose Sign/Verify.
//   - SLH-DSA (SPHINCS+): a stateless hash-based signature scheme; its
//     natural dependency in this module would be the Hash capability
//     (package hash) for its many-layer Merkle-tree and one-time-signature
//     constructions, not the sponge/DRBG/AEAD machinery the classical
//     primitives share.
//   - HQC, BIKE: code-based key-encapsulation mechanisms; would need
//     BCH/Reed-Muller decoding and binary linear-algebra routines this
//     core deliberately does not provide.
package pqc
