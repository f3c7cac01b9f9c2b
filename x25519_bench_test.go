// Copyright 2026 The x25519 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x25519_test

import (
	"crypto/rand"
	"testing"

	"github.com/curvewise/x25519"
)

func BenchmarkDiffieHellman(b *testing.B) {
	aliceSecret, err := x25519.GenerateSecretKey(rand.Reader)
	if err != nil {
		b.Fatal(err)
	}
	bobSecret, err := x25519.GenerateSecretKey(rand.Reader)
	if err != nil {
		b.Fatal(err)
	}
	bobPublic := bobSecret.PublicKey()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x25519.DiffieHellman(aliceSecret, bobPublic)
	}
}

func BenchmarkPublicKey(b *testing.B) {
	k, err := x25519.GenerateSecretKey(rand.Reader)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k.PublicKey()
	}
}

func BenchmarkGenerateSecretKey(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := x25519.GenerateSecretKey(rand.Reader); err != nil {
			b.Fatal(err)
		}
	}
}
