// Copyright 2026 The x25519 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mlockall locks the process address space in RAM, so secret key
// material handled by the CLIs can't be written out to swap.
//
// Importing this package is best effort: locking can fail under
// RLIMIT_MEMLOCK, which is reported but not fatal.
package mlockall

import (
	"log"

	"golang.org/x/sys/unix"
)

func init() {
	if err := unix.Mlockall(unix.MCL_CURRENT | unix.MCL_FUTURE); err != nil {
		log.Printf("warning: can't lock memory pages in RAM: %v", err)
	}
}
