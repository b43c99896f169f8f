// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package status implements the process-wide algorithm-status registry and
// power-on self-test (POST) gate described in spec.md §4.4: each algorithm
// id latches through unset -> running -> {passed, failed} exactly once, and
// every entry point that produces output consults the latch before
// proceeding.
package status

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrSelfTestFailed is returned by Check when the algorithm's self-test has
// latched failed. The primitive is permanently non-functional for the
// lifetime of the process.
var ErrSelfTestFailed = errors.New("status: algorithm self-test failed")

// value is the latch state for one algorithm id.
type value int32

const (
	unset value = iota
	running
	passed
	failed
)

// ID identifies a primitive for the purposes of the self-test registry.
// Each primitive package declares its own constant via NewID.
type ID struct {
	name string
	cell *cell
}

type cell struct {
	state value
	mu    sync.Mutex
}

var registry sync.Map // map[string]*cell

// NewID registers (or looks up) the algorithm id named name. Calling NewID
// twice with the same name returns handles to the same underlying latch, so
// package-level var declarations across independent files are safe.
func NewID(name string) ID {
	c, _ := registry.LoadOrStore(name, &cell{})
	return ID{name: name, cell: c.(*cell)}
}

// Name returns the algorithm id's registered name.
func (id ID) Name() string { return id.name }

// SelfTest is the deterministic known-answer test a primitive runs exactly
// once per process. It must call the primitive's no-check entry points
// internally to avoid recursing back into Check.
type SelfTest func() error

// Check runs the self-test gate for id: if the latch is unset, it
// transitions to running, executes test, and latches passed or failed; if
// already passed, it returns nil immediately; if already failed (by this or
// any previous call), it returns ErrSelfTestFailed without re-running test.
//
// Concurrent first use is safe. A losing goroutine blocks on the cell's
// mutex rather than re-running the (pure, side-effect-free) self-test, so
// the test still executes at most once — satisfying the "latching" property
// spec.md §8 requires, without relying on re-running a test being merely
// "acceptable."
func Check(id ID, test SelfTest) error {
	c := id.cell

	if value(atomic.LoadInt32((*int32)(&c.state))) == passed {
		return nil
	}
	if value(atomic.LoadInt32((*int32)(&c.state))) == failed {
		return ErrSelfTestFailed
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch value(atomic.LoadInt32((*int32)(&c.state))) {
	case passed:
		return nil
	case failed:
		return ErrSelfTestFailed
	}

	atomic.StoreInt32((*int32)(&c.state), int32(running))
	if err := test(); err != nil {
		atomic.StoreInt32((*int32)(&c.state), int32(failed))
		return ErrSelfTestFailed
	}
	atomic.StoreInt32((*int32)(&c.state), int32(passed))
	return nil
}

// State reports the current latch value for id, as one of "unset",
// "running", "passed", or "failed". It exists for diagnostics and tests.
func State(id ID) string {
	switch value(atomic.LoadInt32((*int32)(&id.cell.state))) {
	case running:
		return "running"
	case passed:
		return "passed"
	case failed:
		return "failed"
	default:
		return "unset"
	}
}

// ResetForTest clears id's latch back to unset. Test-only: production code
// never un-latches a failed or passed algorithm.
func ResetForTest(id ID) {
	id.cell.mu.Lock()
	defer id.cell.mu.Unlock()
	atomic.StoreInt32((*int32)(&id.cell.state), int32(unset))
}
