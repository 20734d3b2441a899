// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mercadinho Contributors

package service

import (
	"regexp"
	"strings"
	"unicode"
)

// emailPattern is the RFC-lite address check: a local part of word
// characters, dots, and hyphens; a domain with at least one dot and a
// 2-4 letter top-level label.
var emailPattern = regexp.MustCompile(`^[\w\-.]+@([\w-]+\.)+[\w-]{2,4}$`)

// passwordSymbols is the fixed punctuation set of which a password must
// contain at least one character.
const passwordSymbols = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

const minPasswordLength = 6

// validateEmail returns ErrInvalidEmailFormat unless email matches the
// accepted address pattern.
func validateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmailFormat
	}
	return nil
}

// validatePassword enforces the password rule shared by registration and
// reset redemption: at least six characters with at least one uppercase
// letter, one lowercase letter, one digit, and one symbol from
// passwordSymbols.
//
// Go's regexp has no lookahead, so the character-class requirements are
// checked per rune instead of with a single pattern.
func validatePassword(password string) error {
	if len([]rune(password)) < minPasswordLength {
		return ErrInvalidPasswordFormat
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit || !hasSymbol {
		return ErrInvalidPasswordFormat
	}

	return nil
}
