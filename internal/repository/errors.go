// Package repository implements the MySQL persistence layer.  Each
// repository holds a *sql.DB and exposes context-aware queries; methods
// consumed by the scheduling engine return the engine's typed errors for
// missing records so handlers can translate them uniformly.
package repository

import "errors"

// ErrEmailExists is returned when registering an account with an email
// that is already taken.  Handlers translate it to HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrUserNotFound is returned by user lookups when no matching account
// exists.  Handlers translate it to HTTP 401 or 404 depending on context.
var ErrUserNotFound = errors.New("user not found")
