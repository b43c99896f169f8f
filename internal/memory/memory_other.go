// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build !unix

package memory

// allocSecret on non-unix platforms has no locking mechanism available
// through golang.org/x/sys, so it downgrades immediately to a plain
// allocation, per the fallback chain required by spec.md §4.2.
func allocSecret(size int) (buf []byte, locked bool) {
	return make([]byte, size), false
}

// unlockSecret is a no-op on platforms where allocSecret never locked.
func unlockSecret(_ []byte) {}
