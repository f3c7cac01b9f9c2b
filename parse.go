// Copyright 2026 The x25519 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x25519

import (
	"fmt"
	"strings"

	"github.com/curvewise/x25519/internal/bech32"
	"github.com/curvewise/x25519/internal/memwipe"
)

const (
	publicKeyHRP = "x25519"
	secretKeyHRP = "x25519-secret-key-"
)

// ParsePublicKey returns the PublicKey for a Bech32 public key encoding with
// the "x25519" prefix.
func ParsePublicKey(s string) (*PublicKey, error) {
	t, k, err := bech32.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("x25519: malformed public key %q: %v", s, err)
	}
	if t != publicKeyHRP {
		return nil, fmt.Errorf("x25519: malformed public key %q: invalid type %q", s, t)
	}
	p, err := NewPublicKey(k)
	if err != nil {
		return nil, fmt.Errorf("x25519: malformed public key %q: %v", s, err)
	}
	return p, nil
}

// String returns the Bech32 public key encoding of p.
func (p *PublicKey) String() string {
	s, _ := bech32.Encode(publicKeyHRP, p.point[:])
	return s
}

// ParseSecretKey returns the SecretKey for a Bech32 secret key encoding with
// the "X25519-SECRET-KEY-" prefix.
func ParseSecretKey(s string) (*SecretKey, error) {
	t, k, err := bech32.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("x25519: malformed secret key: %v", err)
	}
	if t != strings.ToUpper(secretKeyHRP) {
		return nil, fmt.Errorf("x25519: malformed secret key: invalid type %q", t)
	}
	defer memwipe.Wipe(k)
	return NewSecretKey(k)
}

// String returns the Bech32 secret key encoding of k.
func (k *SecretKey) String() string {
	s, _ := bech32.Encode(secretKeyHRP, k.scalar[:])
	return strings.ToUpper(s)
}
