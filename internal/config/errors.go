package config

import "errors"

// Validation errors returned by [ClientConfig.validate]. Each covers one
// configuration group so a startup failure points straight at the section
// that needs fixing.
var (
	// ErrInvalidAppConfigs reports missing application-level settings,
	// most importantly the key-derivation domain.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdapterConfigs reports a missing server base URL or a zero
	// request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs reports an empty or in-memory cache DSN.
	// The metadata cache must survive restarts.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs reports a zero index refresh interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
