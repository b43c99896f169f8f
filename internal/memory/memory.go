// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package memory implements the heap memory provider described in
// spec.md §4.2: aligned allocation, an attempted "secret" allocation that
// prefers memory the OS will not swap, and a guaranteed-wipe free for both.
//
// Allocations carry no in-band header: the information needed to release a
// block correctly is kept in the Block struct beside the payload slice, and
// Bytes returns the payload itself, not an offset into a larger buffer.
package memory

import (
	"errors"

	"github.com/leancrypto-go/leancrypto/internal/safe"
)

// ErrInvalidSize is returned when a zero or negative size is requested.
var ErrInvalidSize = errors.New("memory: invalid allocation size")

// kind records how a Block's storage was obtained, so Free can release it
// the same way.
type kind int

const (
	kindPlain kind = iota
	kindLocked
)

// Block is a caller-owned allocation obtained from this package. It carries
// its own release strategy so Free does not need to re-derive how the
// memory was obtained.
type Block struct {
	buf  []byte
	kind kind
}

// Bytes returns the payload of the block, sized exactly to the originally
// requested size.
func (b *Block) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.buf
}

// AllocAligned returns a plain heap allocation of size bytes. align is
// accepted for interface symmetry with AllocAlignedSecret; Go's allocator
// already aligns slice backing arrays suitably for any primitive this
// module constructs (at most an 8-byte lane), so no manual over-allocation
// is performed.
func AllocAligned(align, size int) (*Block, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	_ = align
	return &Block{buf: make([]byte, size), kind: kindPlain}, nil
}

// AllocAlignedSecret attempts to obtain size bytes of memory that the host
// will not swap to disk. The unix build locks the pages with mlock, which
// does not exclude them from core dumps; on failure, or on platforms without a locking
// mechanism, it silently downgrades to a plain allocation — per spec.md
// §4.2, a downgrade is permitted, but the returned Block must always be
// wipeable, which AllocAligned already guarantees.
func AllocAlignedSecret(align, size int) (*Block, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	buf, locked := allocSecret(size)
	k := kindPlain
	if locked {
		k = kindLocked
	}
	return &Block{buf: buf, kind: k}, nil
}

// Free wipes the block's payload and releases any OS-level lock it holds.
// Free is idempotent-safe to call with a nil Block.
func Free(b *Block) {
	if b == nil {
		return
	}
	safe.Wipe(b.buf)
	if b.kind == kindLocked {
		unlockSecret(b.buf)
	}
	b.buf = nil
}
