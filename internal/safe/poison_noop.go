// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build !msan

package safe

// poisonHook and unpoisonHook are no-ops outside of a memory-sanitizer
// build. They exist so that production builds pay no cost for the
// poison/unpoison annotations required by spec.md §4.1, while a msan build
// (see poison_msan.go) can wire them to runtime.MemSanitizer-aware calls.
func poisonHook(_ []byte)   {}
func unpoisonHook(_ []byte) {}
