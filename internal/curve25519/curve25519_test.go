// Copyright 2026 The x25519 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve25519

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"testing"
)

// TestEnginesAgree checks that the Edwards basepoint table and the
// Montgomery ladder compute the same fixed-base products.
func TestEnginesAgree(t *testing.T) {
	for i := 0; i < 64; i++ {
		var scalar [ScalarSize]byte
		if _, err := rand.Read(scalar[:]); err != nil {
			t.Fatal(err)
		}
		table := ScalarBaseMult(&scalar)
		ladder := ScalarMult(&scalar, &Basepoint)
		if !bytes.Equal(table[:], ladder[:]) {
			t.Fatalf("engines disagree for scalar %x: table %x, ladder %x",
				scalar, table, ladder)
		}
	}
}

func TestScalarBaseMultVector(t *testing.T) {
	// RFC 7748, Section 6.1: Alice's key pair.
	scalarHex := "77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a"
	wantHex := "8520f0098930a754748b7ddcb43ef75a0dbf3a0d26381af4eba4a98eaa9b4e6a"

	var scalar [ScalarSize]byte
	b, err := hex.DecodeString(scalarHex)
	if err != nil {
		t.Fatal(err)
	}
	copy(scalar[:], b)

	point := ScalarBaseMult(&scalar)
	if got := hex.EncodeToString(point[:]); got != wantHex {
		t.Errorf("ScalarBaseMult = %s, want %s", got, wantHex)
	}
}

func TestIsZero(t *testing.T) {
	var zero [PointSize]byte
	if !IsZero(&zero) {
		t.Error("IsZero(0) = false")
	}
	if IsZero(&Basepoint) {
		t.Error("IsZero(Basepoint) = true")
	}

	// Multiplying the zero point gives the zero output IsZero is meant to
	// catch.
	var scalar [ScalarSize]byte
	if _, err := rand.Read(scalar[:]); err != nil {
		t.Fatal(err)
	}
	out := ScalarMult(&scalar, &zero)
	if !IsZero(&out) {
		t.Errorf("scalar * 0 = %x, want all zeros", out)
	}
}
