// Package server runs the gateway's HTTP server.
//
// It owns the listener lifecycle: startup, signal handling and a bounded
// graceful shutdown.
package server
