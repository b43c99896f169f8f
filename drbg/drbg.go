// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package drbg implements the fast-key-erasure DRBG framework described in
// spec.md §4.9: instantiate/seed/generate/zero, parameterized on an
// underlying primitive (KMAC, a generic XOF, or ChaCha20). Every concrete
// generator in this package (kmacdrng.go, xdrbg.go, chacha20drng.go)
// follows the same discipline: the stored secret is always the *next* key,
// never the one that just produced output, so compromising the state after
// a generate call cannot recover prior output (backtracking resistance).
package drbg

import "errors"

// ErrNotSeeded is returned by Generate when Seed has never been called
// successfully.
var ErrNotSeeded = errors.New("drbg: generate called before seed")

// ErrInvalidArgument is the package's invalid-argument error. None of the
// generators in this package return it: their Seed methods accept any
// input, and calling one on a nil receiver panics.
var ErrInvalidArgument = errors.New("drbg: invalid argument")

// RNG is the capability described in spec.md §3: {seed(seed,
// personalization), generate(additional_input, out), zero}.
type RNG interface {
	Seed(seed, personalization []byte) error
	Generate(additionalInput, out []byte) error
	Zero()
}
