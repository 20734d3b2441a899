// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mercadinho Contributors

package config

import "golang.org/x/crypto/bcrypt"

// minResetTokenLength is the smallest raw token size accepted; anything
// shorter does not carry enough entropy to stand in for a password check.
const minResetTokenLength = 16

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.BcryptCost < bcrypt.MinCost || cfg.Auth.BcryptCost > bcrypt.MaxCost {
		return ErrInvalidAuthConfigs
	}

	if cfg.Auth.SessionLifetime <= 0 || cfg.Auth.ResetTokenLifetime <= 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Auth.ResetTokenLength < minResetTokenLength {
		return ErrInvalidAuthConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
