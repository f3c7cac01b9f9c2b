// Copyright 2026 The x25519 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package x25519 implements the X25519 Diffie-Hellman function over
// Curve25519, as specified in RFC 7748.
//
// Two parties each generate a SecretKey, exchange the corresponding
// PublicKey values, and call DiffieHellman to independently arrive at the
// same 32-byte shared secret.
//
// The shared secret is a curve point encoding, not a uniformly random
// string: apply a key derivation function to it before using it as a
// symmetric key. X25519 alone provides no authentication of the parties,
// and low-order public values are accepted and produce degenerate shared
// secrets, per the RFC 7748 definition of the function on all inputs. Use
// DiffieHellmanChecked to reject them.
package x25519

import (
	"errors"
	"fmt"
	"io"

	"github.com/curvewise/x25519/internal/curve25519"
	"github.com/curvewise/x25519/internal/memwipe"
)

const (
	// ScalarSize is the size, in bytes, of a secret scalar.
	ScalarSize = curve25519.ScalarSize
	// PointSize is the size, in bytes, of an encoded curve point.
	PointSize = curve25519.PointSize
	// SharedSecretSize is the size, in bytes, of a shared secret.
	SharedSecretSize = 32
)

// Basepoint is the u-coordinate of the canonical Curve25519 generator.
var Basepoint = curve25519.Basepoint

// ErrLowOrderPoint is returned by DiffieHellmanChecked when the peer's
// public value is a low-order point, making the shared secret the same for
// every secret key.
var ErrLowOrderPoint = errors.New("x25519: low order point")

// Clamp returns the clamped form of scalar, as specified in RFC 7748,
// Section 5: the low three bits are cleared so the scalar is a multiple of
// the cofactor, the top bit is cleared, and bit 254 is set so the Montgomery
// ladder sees the same bit length for every scalar. Clamp is idempotent.
//
// Every multiplication in this package clamps its scalar, so callers never
// need to invoke Clamp themselves.
func Clamp(scalar [ScalarSize]byte) [ScalarSize]byte {
	scalar[0] &= 248
	scalar[31] &= 127
	scalar[31] |= 64
	return scalar
}

// A SecretKey is an X25519 secret key. The scalar is stored unclamped,
// exactly as generated or supplied; clamping is applied on every
// multiplication.
//
// Call Wipe once the key is no longer needed, typically with defer at the
// point the key is acquired, so the key material is erased on every return
// path.
type SecretKey struct {
	scalar [ScalarSize]byte
}

// GenerateSecretKey returns a SecretKey drawn from csprng, which must
// produce cryptographically secure random bytes, such as crypto/rand.Reader.
//
// A failure of the randomness source is fatal for the call: the error is
// returned and no key is produced. There is no fallback source.
func GenerateSecretKey(csprng io.Reader) (*SecretKey, error) {
	k := new(SecretKey)
	if _, err := io.ReadFull(csprng, k.scalar[:]); err != nil {
		return nil, fmt.Errorf("x25519: failed to generate secret key: %v", err)
	}
	return k, nil
}

// NewSecretKey returns the SecretKey wrapping a copy of the given bytes,
// verbatim and unclamped. Any 32-byte value is accepted; clamping later
// absorbs invalid bit patterns.
func NewSecretKey(secretKey []byte) (*SecretKey, error) {
	if len(secretKey) != ScalarSize {
		return nil, errors.New("x25519: invalid secret key size")
	}
	k := new(SecretKey)
	copy(k.scalar[:], secretKey)
	return k, nil
}

// Bytes returns a copy of the raw, unclamped scalar. The copy is not wiped
// when k is; the caller owns it.
func (k *SecretKey) Bytes() []byte {
	b := make([]byte, ScalarSize)
	copy(b, k.scalar[:])
	return b
}

// Wipe overwrites the key material with zeros. The key must not be used
// after Wipe returns, nor concurrently with it.
func (k *SecretKey) Wipe() {
	memwipe.Wipe(k.scalar[:])
}

// PublicKey returns the public key corresponding to k, computed by
// multiplying the basepoint by the clamped scalar.
func (k *SecretKey) PublicKey() *PublicKey {
	clamped := Clamp(k.scalar)
	defer memwipe.Wipe(clamped[:])
	return &PublicKey{point: curve25519.ScalarBaseMult(&clamped)}
}

// A PublicKey is an X25519 public key: the u-coordinate of a point on the
// Curve25519 Montgomery curve. PublicKey values are not secret and have no
// Wipe.
type PublicKey struct {
	point [PointSize]byte
}

// NewPublicKey returns the PublicKey decoding a copy of the given bytes as a
// Montgomery u-coordinate. Any 32-byte value is accepted: RFC 7748 defines
// X25519 on all inputs, including non-canonical and low-order encodings, and
// a u-coordinate alone admits no curve membership check.
func NewPublicKey(publicKey []byte) (*PublicKey, error) {
	if len(publicKey) != PointSize {
		return nil, errors.New("x25519: invalid public key size")
	}
	p := new(PublicKey)
	copy(p.point[:], publicKey)
	return p, nil
}

// Bytes returns the Montgomery-form encoding of p.
func (p *PublicKey) Bytes() []byte {
	b := make([]byte, PointSize)
	copy(b, p.point[:])
	return b
}

// X25519 returns scalar * point, the X25519 function of RFC 7748, Section 5.
// The scalar is clamped before the multiplication, which runs on the curve
// engine's constant-time Montgomery ladder.
//
// X25519 is total: there is no failure mode, and degenerate inputs produce
// degenerate but well-defined outputs. Multiplying a low-order point yields
// the all-zero encoding of the identity.
func X25519(scalar [ScalarSize]byte, point [PointSize]byte) [PointSize]byte {
	clamped := Clamp(scalar)
	defer memwipe.Wipe(clamped[:])
	return curve25519.ScalarMult(&clamped, &point)
}

// DiffieHellman returns the shared secret between our secret key and their
// public key. For any two secret keys a and b,
//
//	DiffieHellman(a, b.PublicKey()) == DiffieHellman(b, a.PublicKey())
//
// The shared secret is not uniformly random; apply a KDF before using it as
// a symmetric key.
func DiffieHellman(mySecret *SecretKey, theirPublic *PublicKey) [SharedSecretSize]byte {
	return X25519(mySecret.scalar, theirPublic.point)
}

// DiffieHellmanChecked is like DiffieHellman, but returns ErrLowOrderPoint
// when theirPublic is a low-order point. The shared secret is returned
// either way, and the check runs in constant time.
//
// RFC 7748 leaves this check to the caller. Protocols that bind both public
// keys into the derived key generally do not need it; protocols where a
// predictable shared secret is dangerous do.
func DiffieHellmanChecked(mySecret *SecretKey, theirPublic *PublicKey) ([SharedSecretSize]byte, error) {
	sharedSecret := DiffieHellman(mySecret, theirPublic)
	if curve25519.IsZero(&sharedSecret) {
		return sharedSecret, ErrLowOrderPoint
	}
	return sharedSecret, nil
}
