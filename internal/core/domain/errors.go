package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig indicates a caller contract violation in
	// configuration, such as chunk overlap >= chunk size.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnsupportedType indicates an unknown connector type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrNotConnected indicates a source operation was attempted
	// before Connect or after Disconnect.
	ErrNotConnected = errors.New("source not connected")

	// ErrSourceUnavailable indicates a source failed to connect or fetch.
	// Sync skips the source and continues with the rest.
	ErrSourceUnavailable = errors.New("source unavailable")
)
