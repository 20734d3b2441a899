package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Built-in defaults applied when no other configuration source provides a
// value. Lifetimes follow the product policy: week-long sessions, hour-long
// reset tokens.
const (
	DefaultSessionLifetime    = 7 * 24 * time.Hour
	DefaultResetTokenLifetime = time.Hour
	DefaultResetTokenLength   = 32

	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			BcryptCost:         bcrypt.DefaultCost,
			SessionLifetime:    DefaultSessionLifetime,
			ResetTokenLifetime: DefaultResetTokenLifetime,
			ResetTokenLength:   DefaultResetTokenLength,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Notifier: Notifier{
			Timeout: 15 * time.Second,
		},
	}
}
