package services

import "errors"

// Sentinel errors raised by the service layer. Handlers translate them to
// HTTP statuses in one place; nothing here knows about HTTP.
var (
	// ErrEmailTaken is returned when registering with an email that already
	// has an account.
	ErrEmailTaken = errors.New("email already in use")

	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike, so callers cannot tell which part failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned when a user id has no row.
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionNotFound covers both a missing transaction and one owned
	// by a different user; ownership failures are indistinguishable from
	// absence.
	ErrTransactionNotFound = errors.New("transaction not found")
)
