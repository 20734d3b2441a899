package models

import "time"

// Credential is the identity anchor of the system: a registered
// email/password pair. Sensitive fields must never be exposed outside
// trusted boundaries.
type Credential struct {
	// ID is the opaque identifier assigned at creation. Immutable.
	ID string `json:"-"`

	// Email is the unique address the credential was registered with.
	// Stored case-sensitively.
	Email string `json:"email"`

	// PasswordHash is the salted one-way hash of the password.
	// This value MUST be a bcrypt hash, never plaintext, and is never
	// serialized to JSON.
	PasswordHash string `json:"-"`

	// Active reports whether the credential may be used to sign in.
	// Deactivation is a store-level concern; this core never flips it.
	Active bool `json:"-"`

	// CreatedAt is the timestamp the credential was registered.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Credential model.
func (c Credential) TableName() string {
	return "credentials"
}
