// Package repository holds the in-memory data stores for the service.  All
// domain state is process-lifetime only: stores are seeded at startup and
// mutate under a mutex, with no persistence behind them.  Sentinel errors
// defined here let handlers map failures to HTTP status codes.
package repository

import "errors"

// ErrNotFound is returned when a lookup by identifier matches nothing.
// Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when registering an email that already has an
// account. Handlers should translate this into an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")

// ErrInvalidToken is returned when a refresh token is unknown, expired or
// revoked. Handlers should translate this into an HTTP 401 response.
var ErrInvalidToken = errors.New("invalid token")
