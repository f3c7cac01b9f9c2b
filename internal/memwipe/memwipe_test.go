// Copyright 2026 The x25519 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memwipe

import (
	"bytes"
	"testing"
)

func TestWipe(t *testing.T) {
	b := bytes.Repeat([]byte{0x15}, 32)
	Wipe(b)
	if !bytes.Equal(b, make([]byte, 32)) {
		t.Errorf("buffer not wiped: %x", b)
	}

	Wipe(nil) // must not panic
}
