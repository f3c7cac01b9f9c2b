// Copyright 2026 The x25519 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x25519_test

import (
	"crypto/rand"
	"fmt"
	"log"

	"github.com/curvewise/x25519"
)

func ExampleDiffieHellman() {
	aliceSecret, err := x25519.GenerateSecretKey(rand.Reader)
	if err != nil {
		log.Fatalf("Failed to generate key: %v", err)
	}
	defer aliceSecret.Wipe()

	bobSecret, err := x25519.GenerateSecretKey(rand.Reader)
	if err != nil {
		log.Fatalf("Failed to generate key: %v", err)
	}
	defer bobSecret.Wipe()

	// Alice and Bob exchange public keys over any channel, then each
	// computes the shared secret from their own secret key and the other's
	// public key. Feed the result to a KDF before using it as a symmetric
	// key.
	alicePublic := aliceSecret.PublicKey()
	bobPublic := bobSecret.PublicKey()

	aliceShared := x25519.DiffieHellman(aliceSecret, bobPublic)
	bobShared := x25519.DiffieHellman(bobSecret, alicePublic)

	fmt.Println(aliceShared == bobShared)
	// Output:
	// true
}

func ExampleParsePublicKey() {
	publicKey := "x255191qypqxpq9qcrssqgzqvzq2ps8pqqsyqcyq5rqwzqpqgpsgpgxquyqrs75g4"
	peer, err := x25519.ParsePublicKey(publicKey)
	if err != nil {
		log.Fatalf("Failed to parse public key %q: %v", publicKey, err)
	}
	fmt.Printf("%x\n", peer.Bytes())
	// Output:
	// 0102030405060708010203040506070801020304050607080102030405060708
}
