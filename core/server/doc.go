// Package server holds the management HTTP server configuration.
//
// The server itself is assembled in cmd/start.go; this package only defines
// the listen port and the optional API key consumed by the auth middleware.
package server
