// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build unix

package memory

import "golang.org/x/sys/unix"

// allocSecret allocates size bytes and attempts to mlock them so the pages
// are never written to swap. It reports whether the lock succeeded; callers
// must still treat the returned buffer as usable either way.
func allocSecret(size int) (buf []byte, locked bool) {
	buf = make([]byte, size)
	if err := unix.Mlock(buf); err != nil {
		return buf, false
	}
	return buf, true
}

// unlockSecret releases a lock previously obtained by allocSecret. Errors
// are ignored: by the time this runs the buffer has already been wiped, and
// there is no recovery action available to the caller.
func unlockSecret(buf []byte) {
	if len(buf) == 0 {
		return
	}
	_ = unix.Munlock(buf)
}
