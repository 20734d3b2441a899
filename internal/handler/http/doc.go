// Package http maps inbound HTTP requests to the credential and reset
// services and renders their results and typed errors as JSON responses.
// It owns every transport concern the services deliberately avoid: body
// decoding, the session cookie, status-code mapping, and request-scoped
// logging with trace ids.
package http
