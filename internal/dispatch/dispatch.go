// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package dispatch implements the instance-dispatch layer described in
// spec.md §4.11: a static, priority-ordered table of candidate
// implementations per primitive, selected on first use from cached CPU
// features (internal/cpufeature) and gated through the algorithm-status
// self-test registry (internal/status), then cached for the life of the
// process.
package dispatch

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/leancrypto-go/leancrypto/internal/cpufeature"
	"github.com/leancrypto-go/leancrypto/internal/status"
)

// ErrNoImplementation is returned when every candidate in a Table either
// fails its capability requirement or fails its self-test.
var ErrNoImplementation = errors.New("dispatch: no implementation satisfies capability and self-test")

// Candidate is one entry in a Table: a named implementation, the CPU
// feature predicate gating its eligibility, the algorithm-status id it
// self-tests under, and the self-test itself.
type Candidate struct {
	// Name identifies the implementation for diagnostics (e.g.
	// "aes-ni", "portable").
	Name string

	// ID is the algorithm-status registry id this candidate latches
	// through (spec.md §4.4). Distinct candidates for the same
	// primitive use distinct ids so that one candidate failing its
	// self-test does not poison another.
	ID status.ID

	// Requires reports whether f satisfies this candidate's capability
	// mask. A nil Requires always matches — the portable reference
	// implementation's position in the table.
	Requires func(f cpufeature.Features) bool

	SelfTest status.SelfTest
}

func (c *Candidate) eligible(f cpufeature.Features) bool {
	return c.Requires == nil || c.Requires(f)
}

// Table is a priority-ordered (highest priority first) list of candidates
// for one primitive. Selection is cached after the first successful
// Select call.
type Table struct {
	candidates []Candidate
	chosen     atomic.Pointer[Candidate]
	mu         sync.Mutex
}

// NewTable builds a Table from candidates in priority order: Select tries
// candidates[0] first, falling through to later entries only when an
// earlier one is ineligible or fails its self-test.
func NewTable(candidates ...Candidate) *Table {
	return &Table{candidates: candidates}
}

// Select returns the highest-priority eligible, self-test-passing
// candidate, reading cached CPU features (internal/cpufeature) and
// demoting past any candidate whose self-test fails (spec.md §4.11 steps
// 1-3). The result is cached (step 4); concurrent first use is safe —
// a losing goroutine blocks on mu rather than re-running every self-test.
func (t *Table) Select() (*Candidate, error) {
	if c := t.chosen.Load(); c != nil {
		return c, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if c := t.chosen.Load(); c != nil {
		return c, nil
	}

	feats := cpufeature.Get()
	var lastErr error
	for i := range t.candidates {
		c := &t.candidates[i]
		if !c.eligible(feats) {
			continue
		}
		if err := status.Check(c.ID, c.SelfTest); err != nil {
			lastErr = err
			continue
		}
		t.chosen.Store(c)
		return c, nil
	}

	if lastErr == nil {
		lastErr = ErrNoImplementation
	}
	return nil, lastErr
}

// ResetForTest clears the cached choice so the next Select re-evaluates
// eligibility and self-tests. Test-only.
func (t *Table) ResetForTest() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.chosen.Store(nil)
}
