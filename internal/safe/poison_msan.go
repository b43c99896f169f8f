// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build msan

package safe

// Under -msan, Go's runtime already instruments every memory access for
// uninitialized-read detection; there is no public manual-poison API to
// call into from ordinary code. These hooks remain no-ops but are kept as
// a distinct build-tagged file so a future msan-aware build tag can wire in
// real annotations without touching call sites in the rest of the module.
func poisonHook(_ []byte)   {}
func unpoisonHook(_ []byte) {}
