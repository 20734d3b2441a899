// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mercadinho Contributors

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{name: "plain address", email: "ana@mercadinho.com.br", valid: true},
		{name: "dotted local part", email: "ana.souza@example.com", valid: true},
		{name: "hyphenated local part", email: "ana-souza@example.com", valid: true},
		{name: "subdomain", email: "ana@mail.example.com", valid: true},
		{name: "digits in domain", email: "ana@ex4mple.com", valid: true},

		{name: "empty", email: "", valid: false},
		{name: "missing at sign", email: "ana.example.com", valid: false},
		{name: "missing local part", email: "@example.com", valid: false},
		{name: "missing domain", email: "ana@", valid: false},
		{name: "missing dot in domain", email: "ana@example", valid: false},
		{name: "tld too short", email: "ana@example.c", valid: false},
		{name: "tld too long", email: "ana@example.museum", valid: false},
		{name: "space in local part", email: "ana souza@example.com", valid: false},
		{name: "double at sign", email: "ana@@example.com", valid: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateEmail(tc.email)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidEmailFormat)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "all classes present", password: "Abc123!x", valid: true},
		{name: "exactly six characters", password: "Ab1!cd", valid: true},
		{name: "symbol from the middle of the set", password: "Ab1;cdef", valid: true},
		{name: "backslash counts as symbol", password: `Ab1\cdef`, valid: true},

		{name: "empty", password: "", valid: false},
		{name: "too short", password: "Ab1!c", valid: false},
		{name: "no uppercase", password: "abc123!x", valid: false},
		{name: "no lowercase", password: "ABC123!X", valid: false},
		{name: "no digit", password: "Abcdef!x", valid: false},
		{name: "no symbol", password: "Abc123xy", valid: false},
		{name: "letters only", password: "Abcdefgh", valid: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validatePassword(tc.password)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidPasswordFormat)
			}
		})
	}
}
