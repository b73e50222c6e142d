// Package server runs the fixture users API.
//
// It owns the HTTP server lifecycle: startup, signal handling and graceful
// shutdown.
package server
