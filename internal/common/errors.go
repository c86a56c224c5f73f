// Package common defines shared constants and sentinel errors used across
// qrforge components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Recoverable input problems; the user is re-prompted.
	ErrValidation = errors.New("validation error")

	// Uniqueness violations (username collisions, the reserved demo name).
	ErrConflict = errors.New("username is already taken")

	// Credential mismatch. Deliberately does not distinguish an unknown
	// user from a wrong password.
	ErrAuth = errors.New("invalid username or password")

	// Collaborator failures surfaced by the controller.
	ErrEncoding = errors.New("code generation failed")
	ErrDownload = errors.New("download failed")

	// State precondition: nothing has been generated since the last save
	// or discard.
	ErrNoCurrentCode = errors.New("no code has been generated")
)
