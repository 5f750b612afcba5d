package crypto

import "errors"

// The crypto package reports failures through a closed set of sentinel
// errors. Callers branch on them with errors.Is; none of them ever carries
// key material in its message.
var (
	// ErrConfiguration signals that an input violates a minimum-security
	// precondition (short salt, wrong key length). Fatal, never retried:
	// it indicates a deployment or server bug, not user action.
	ErrConfiguration = errors.New("crypto parameters violate minimum security requirements")

	// ErrMissingCredentials signals that an operation needing live key
	// material was attempted while the credential session is locked.
	// Recovered by prompting re-authentication and retrying once.
	ErrMissingCredentials = errors.New("no unlocked credentials in session")

	// ErrIntegrity signals that a key unwrap integrity check failed:
	// wrong wrapping key or corrupted key blob. Which of the two is never
	// disclosed.
	ErrIntegrity = errors.New("key unwrap integrity check failed")

	// ErrAuthentication signals an AEAD tag mismatch on a file envelope:
	// the ciphertext was tampered with or corrupted and no plaintext is
	// returned.
	ErrAuthentication = errors.New("file envelope authentication failed")
)
