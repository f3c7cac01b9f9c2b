// Copyright 2026 The x25519 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memwipe erases key material from memory.
package memwipe

import "runtime"

// Wipe overwrites b with zeros. The noinline directive and the KeepAlive
// keep the compiler from eliding writes to a buffer it considers dead.
//
//go:noinline
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
