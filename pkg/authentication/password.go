// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash, a nil hash never matches.
func CheckPassword(hash *string, password string) bool {
	if hash == nil || *hash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(*hash), []byte(password)) == nil
}
