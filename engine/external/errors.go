// SPDX-License-Identifier: MIT
// Package external: sentinel error set.

package external

import "errors"

var (
	// ErrUnknownKind indicates Lookup was asked for a Kind no backend has
	// registered under.
	ErrUnknownKind = errors.New("external: no backend registered for kind")

	// ErrAlreadyRegistered indicates Register was called twice for the
	// same Kind.
	ErrAlreadyRegistered = errors.New("external: backend already registered for kind")

	// ErrSchemaMismatch indicates a backend's declared OutputSchema
	// disagrees with the descriptor's own Schema field.
	ErrSchemaMismatch = errors.New("external: backend output schema does not match descriptor schema")
)
