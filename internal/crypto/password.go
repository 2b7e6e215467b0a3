// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters. They are part of the stored hash contract: changing any
// of them invalidates every hash already persisted.
const (
	saltLength       = 16
	keyLength        = 32
	pbkdf2Iterations = 100_000

	hashSeparator = "."
)

// pbkdf2Hasher is the private implementation of [PasswordHasher] using
// PBKDF2-HMAC-SHA256.
type pbkdf2Hasher struct {
	iterations int
	saltLen    int
	keyLen     int

	// random is the salt source; crypto/rand.Reader outside of tests.
	random io.Reader
}

// NewPasswordHasher constructs a [PasswordHasher] with the fixed parameters:
//   - PRF:        HMAC-SHA256
//   - iterations: 100 000
//   - salt:       16 bytes from the OS CSPRNG
//   - key length: 32 bytes (256 bits)
func NewPasswordHasher() PasswordHasher {
	return &pbkdf2Hasher{
		iterations: pbkdf2Iterations,
		saltLen:    saltLength,
		keyLen:     keyLength,
		random:     rand.Reader,
	}
}

// Hash implements [PasswordHasher]. Two calls with the same password return
// different strings because each call draws a new salt.
func (p *pbkdf2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, p.saltLen)
	if _, err := io.ReadFull(p.random, salt); err != nil {
		return "", fmt.Errorf("error generating password salt: %w", err)
	}

	key := p.deriveKey(password, salt)

	return base64.StdEncoding.EncodeToString(salt) + hashSeparator + base64.StdEncoding.EncodeToString(key), nil
}

// Verify implements [PasswordHasher]. It splits encodedHash into salt and key,
// recomputes the key with the extracted salt and compares both keys in
// constant time.
func (p *pbkdf2Hasher) Verify(password, encodedHash string) bool {
	parts := strings.Split(encodedHash, hashSeparator)
	if len(parts) != 2 {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return false
	}
	storedKey, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil || len(storedKey) != p.keyLen {
		return false
	}

	return subtle.ConstantTimeCompare(p.deriveKey(password, salt), storedKey) == 1
}

func (p *pbkdf2Hasher) deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, p.iterations, p.keyLen, sha256.New)
}
