// Package server owns the HTTP server lifecycle: construction from
// configuration, startup, and signal-driven graceful shutdown.
package server
