// Package config loads and merges the auth service configuration from
// environment variables, command-line flags, an optional JSON file, and
// built-in defaults, in that priority order. The merged result is validated
// before use so the rest of the application can treat it as read-only,
// well-formed state.
package config
