// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the server-side credential primitives: salted,
// iterated password hashing and verification.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher derives and verifies salted password hashes.
//
// The encoded form is self-describing only in its salt; the algorithm and
// its parameters are fixed for the lifetime of the system, so every stored
// hash must have been produced by the same parameters.
type PasswordHasher interface {
	// Hash generates a fresh random salt, derives a key from password and
	// returns base64(salt) + "." + base64(key).
	Hash(password string) (string, error)

	// Verify reports whether password matches encodedHash. Malformed input
	// yields false, never an error or panic.
	Verify(password, encodedHash string) bool
}
