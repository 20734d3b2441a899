package models

import "time"

// Session is a time-bounded proof of a successful sign-in, referenced by an
// opaque id handed to the client inside a cookie.
type Session struct {
	// ID is the opaque session identifier assigned by the store.
	ID string `json:"-"`

	// CredentialID is the owning credential. Sessions cascade-delete with
	// their credential.
	CredentialID string `json:"-"`

	// CreatedAt is the issuance timestamp.
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt is the absolute expiry instant, fixed at issuance as
	// creation time plus the configured session lifetime. Never recomputed.
	ExpiresAt time.Time `json:"expires_at"`

	// Active reports whether the session is live. This core never revokes
	// sessions; server-side logout is out of scope.
	Active bool `json:"-"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
