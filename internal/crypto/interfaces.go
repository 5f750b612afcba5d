package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/keyvault_service_mock.go -package=mock

// KeyVaultService owns all client-side cryptography of the zero-knowledge
// scheme. It knows nothing about the network, the database or users; its
// single job is deriving, wrapping and applying keys.
//
// Key hierarchy:
//
//	Salt                 = DeriveSalt(CRV)                       (public)
//	mEncKey, hAuthKey    = DeriveKeys(password, Salt)            (step 1)
//	WrappedAccountKey    = WrapKey(AccountKey, mEncKey)          (step 2)
//	WrappedFileKey       = WrapKey(FileKey, AccountKey)          (step 3)
//	Envelope             = IV ‖ AES-256-GCM(FileKey, file)       (step 4)
//
// Only hAuthKey, CRV and the Wrapped* values ever reach the server.
type KeyVaultService interface {
	// GenerateClientRandomValue returns 12 fresh random bytes. Generated
	// once per account at signup, stored server-side in the clear, and
	// immutable thereafter.
	GenerateClientRandomValue() ([]byte, error)

	// GenerateKey returns a fresh 256-bit symmetric key, used for both
	// account keys and single-use file keys.
	GenerateKey() ([]byte, error)

	// GenerateIV returns a fresh 12-byte AES-GCM initialization vector.
	GenerateIV() ([]byte, error)

	// DeriveSalt turns the per-account CRV into a 32-byte domain-separated
	// salt: SHA-256 over the deployment domain string right-padded to 200
	// bytes, followed by the raw CRV. Pure and deterministic; the salt is
	// recomputed on demand, never stored.
	DeriveSalt(crv []byte) []byte

	// DeriveKeys stretches the password with the salt into the master
	// encryption key and the server-facing authentication credential.
	// PBKDF2-HMAC-SHA512 at 500 000 iterations; expect hundreds of
	// milliseconds of CPU. Salts shorter than 16 bytes are rejected with
	// ErrConfiguration before any derivation work begins.
	DeriveKeys(ctx context.Context, password string, salt []byte) (DerivedKeys, error)

	// WrapKey encrypts one 256-bit key under another using AES Key Wrap
	// (RFC 3394). Deterministic; the output is exactly len(key)+8 bytes.
	WrapKey(key, wrappingKey []byte) ([]byte, error)

	// UnwrapKey reverses WrapKey. A wrong wrapping key or a corrupted blob
	// fails with ErrIntegrity; non-key garbage is never returned.
	UnwrapKey(wrapped, wrappingKey []byte) ([]byte, error)

	// EncryptFile generates a fresh file key and IV, encrypts plaintext
	// with AES-256-GCM, and wraps the file key under accountKey. The
	// envelope layout IV(12) ‖ ciphertext+tag(16) is a wire contract.
	// The plaintext file key is destroyed before returning.
	EncryptFile(ctx context.Context, plaintext, accountKey []byte) (EncryptedFile, error)

	// DecryptFile unwraps the file key under accountKey (ErrIntegrity on
	// failure) and opens the envelope (ErrAuthentication on tag mismatch).
	DecryptFile(ctx context.Context, wrappedFileKey, accountKey, envelope []byte) ([]byte, error)

	// DecryptFileWithRawKey opens an envelope with an already-unwrapped
	// file key, as received out-of-band in a share link fragment. Same
	// envelope format, no account-key step.
	DecryptFileWithRawKey(ctx context.Context, fileKey, envelope []byte) ([]byte, error)
}

// DerivedKeys is the output of one key derivation run. MasterEncKey never
// leaves the client; AuthKey is the only part safe to transmit.
type DerivedKeys struct {
	// MasterEncKey is the 256-bit key-encrypting-key unlocking the account
	// key (bytes 0..31 of the PBKDF2 output).
	MasterEncKey []byte

	// AuthKey is the server-facing authentication credential: SHA-256 of
	// PBKDF2 output bytes 32..63. Key separation means leaking it to the
	// server reveals nothing about MasterEncKey.
	AuthKey []byte
}

// EncryptedFile is the result of one file encryption: the wrapped key goes
// to file metadata, the envelope to blob storage.
type EncryptedFile struct {
	// WrappedFileKey is the single-use file key wrapped under the account
	// key (40 bytes).
	WrappedFileKey []byte

	// Envelope is IV (12 bytes) followed by the AES-GCM ciphertext with
	// its 16-byte tag. The byte layout is bit-reproducible across
	// implementations.
	Envelope []byte
}
