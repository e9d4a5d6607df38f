// Package server runs the stub letters API over HTTP.
//
// It owns the listener lifecycle: startup, stop on context cancellation and
// graceful shutdown.
package server
