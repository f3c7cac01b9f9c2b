// Copyright 2026 The x25519 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curve25519 wraps the curve arithmetic engines backing the X25519
// function: the precomputed Edwards basepoint tables of
// filippo.io/edwards25519 for fixed-base scalar multiplication, and the
// constant-time Montgomery ladder of golang.org/x/crypto/curve25519 for
// variable-base scalar multiplication.
//
// The field and group arithmetic, and their constant-time properties, belong
// to those engines; nothing here re-derives them.
package curve25519

import (
	"crypto/subtle"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/curve25519"
)

const (
	// ScalarSize is the size of the scalar input to X25519.
	ScalarSize = 32
	// PointSize is the size of the point input to X25519.
	PointSize = 32
)

// Basepoint is the u-coordinate of the canonical Curve25519 generator.
var Basepoint = [PointSize]byte{9}

// ScalarBaseMult returns scalar * B for the canonical generator B, computed
// on the Edwards form of the curve with the precomputed basepoint table and
// converted to its Montgomery u-coordinate. The result is identical to
// running the ladder over Basepoint, only faster.
//
// The engine prunes the scalar the same way Clamp does, so an already
// clamped scalar passes through unchanged.
func ScalarBaseMult(scalar *[ScalarSize]byte) (point [PointSize]byte) {
	s, err := edwards25519.NewScalar().SetBytesWithClamping(scalar[:])
	if err != nil {
		// SetBytesWithClamping only fails on inputs that are not 32 bytes.
		panic("curve25519: internal error: " + err.Error())
	}
	p := new(edwards25519.Point).ScalarBaseMult(s)
	copy(point[:], p.BytesMontgomery())
	return point
}

// ScalarMult returns scalar * point, computed with the constant-time
// Montgomery ladder. It is defined on every input: multiplying a low-order
// point yields the all-zero encoding of the identity rather than an error.
func ScalarMult(scalar *[ScalarSize]byte, point *[PointSize]byte) (dst [PointSize]byte) {
	curve25519.ScalarMult(&dst, scalar, point)
	return dst
}

// IsZero reports, in constant time, whether p is the all-zero encoding that
// the ladder produces for the identity.
func IsZero(p *[PointSize]byte) bool {
	var zero [PointSize]byte
	return subtle.ConstantTimeCompare(p[:], zero[:]) == 1
}
