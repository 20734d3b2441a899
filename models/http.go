package models

// CredentialRequest is the JSON body accepted by the registration and
// sign-in endpoints.
type CredentialRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetRequest is the JSON body accepted by the reset-request endpoint.
type ResetRequest struct {
	Email string `json:"email"`
}

// RedeemRequest is the JSON body accepted by the reset-redemption endpoint.
// The token itself arrives out-of-band as a query parameter.
type RedeemRequest struct {
	Password string `json:"password"`
}

// MessageResponse is the uniform JSON envelope for status and error
// messages.
type MessageResponse struct {
	Message string `json:"message"`
}
