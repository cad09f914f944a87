// Package server owns the TCP listener and the per-connection request loop.
//
// Each accepted connection is handed to its own goroutine for its whole
// lifetime; the accept loop never blocks on connection processing.
// Connections share nothing but the immutable server configuration, so no
// cross-connection locking exists. A connection stays open across request
// cycles (keep-alive) until the peer stops speaking HTTP or the transport
// fails.
package server
