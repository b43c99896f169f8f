// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package cpufeature exposes a lazily-populated, process-wide cache of the
// CPU capabilities the dispatch layer (internal/dispatch) consults when
// choosing between implementations of a primitive, per spec.md §4.3.
//
// The cache is populated once, on first Get, from golang.org/x/sys/cpu.
// Tests that need to exercise the portable fallback path can call
// ForceFeatures to override the cache with an arbitrary Features value.
package cpufeature

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Features is the set of capabilities the dispatch layer can condition
// implementation selection on.
type Features struct {
	AVX2     bool
	AVX512F  bool
	AESNI    bool
	ARMAES   bool
	ARMSHA2  bool
	ARMSHA3  bool
	ARMPMULL bool
	ARMNEON  bool
	RISCVVec bool
}

var (
	cached     atomic.Pointer[Features]
	detectOnce sync.Once
	forced     atomic.Bool
)

// Get returns the process-wide cached Features value, detecting it on first
// use. Concurrent first use is safe: detection is idempotent and
// side-effect free, so a losing goroutine in the race simply reads the
// winner's result (spec.md §5).
func Get() Features {
	if f := cached.Load(); f != nil {
		return *f
	}
	detectOnce.Do(func() {
		if cached.Load() == nil {
			f := detect()
			cached.Store(&f)
		}
	})
	return *cached.Load()
}

// ForceFeatures overrides the process-wide cache with f, for use by tests
// that need to exercise a specific implementation-selection path (e.g. the
// portable fallback when no accelerated backend is present). It is not
// safe to call concurrently with Get from production code paths; it exists
// purely as a test hook per spec.md §4.3's "test-only API."
func ForceFeatures(f Features) {
	cached.Store(&f)
	forced.Store(true)
}

// ResetForTest clears any forced override and re-runs detection on the next
// Get call. Test-only.
func ResetForTest() {
	cached.Store(nil)
	forced.Store(false)
	detectOnce = sync.Once{}
}

// IsForced reports whether the current cached value was installed via
// ForceFeatures rather than real detection.
func IsForced() bool {
	return forced.Load()
}

func detect() Features {
	return Features{
		AVX2:     cpu.X86.HasAVX2,
		AVX512F:  cpu.X86.HasAVX512F,
		AESNI:    cpu.X86.HasAES,
		ARMAES:   cpu.ARM64.HasAES,
		ARMSHA2:  cpu.ARM64.HasSHA2,
		ARMSHA3:  cpu.ARM64.HasSHA3,
		ARMPMULL: cpu.ARM64.HasPMULL,
		ARMNEON:  runtime.GOARCH == "arm64",
		RISCVVec: cpu.RISCV64.HasV,
	}
}
