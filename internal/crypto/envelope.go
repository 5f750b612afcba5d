// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// gcmTagLength is the size of the AES-GCM authentication tag appended to
// every envelope's ciphertext.
const gcmTagLength = 16

// EncryptFile implements [KeyVaultService]. One fresh file key, one fresh
// IV, one encryption: key/IV reuse is ruled out by construction. The file
// key is wrapped under accountKey and its plaintext form zeroed before the
// function returns.
func (k *keyVaultService) EncryptFile(ctx context.Context, plaintext, accountKey []byte) (EncryptedFile, error) {
	if err := ctx.Err(); err != nil {
		return EncryptedFile{}, err
	}

	fileKey, err := k.GenerateKey()
	if err != nil {
		return EncryptedFile{}, fmt.Errorf("generate file key: %w", err)
	}
	defer Zero(fileKey)

	iv, err := k.GenerateIV()
	if err != nil {
		return EncryptedFile{}, fmt.Errorf("generate iv: %w", err)
	}

	gcm, err := newGCM(fileKey)
	if err != nil {
		return EncryptedFile{}, err
	}

	// Envelope layout is a wire contract: IV (12 bytes) ‖ ciphertext+tag.
	envelope := make([]byte, ivLength, ivLength+len(plaintext)+gcmTagLength)
	copy(envelope, iv)
	envelope = gcm.Seal(envelope, iv, plaintext, nil)

	wrappedFileKey, err := k.WrapKey(fileKey, accountKey)
	if err != nil {
		return EncryptedFile{}, fmt.Errorf("wrap file key: %w", err)
	}

	return EncryptedFile{WrappedFileKey: wrappedFileKey, Envelope: envelope}, nil
}

// DecryptFile implements [KeyVaultService]. Unwrap failures propagate as
// ErrIntegrity (wrong account key or corrupted wrapped key); tag failures
// as ErrAuthentication. Partial or unauthenticated plaintext is never
// returned.
func (k *keyVaultService) DecryptFile(ctx context.Context, wrappedFileKey, accountKey, envelope []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fileKey, err := k.UnwrapKey(wrappedFileKey, accountKey)
	if err != nil {
		return nil, err
	}
	defer Zero(fileKey)

	return openEnvelope(fileKey, envelope)
}

// DecryptFileWithRawKey implements [KeyVaultService]. Used for link-based
// sharing where the recipient received the raw file key out-of-band and
// holds no account key.
func (k *keyVaultService) DecryptFileWithRawKey(ctx context.Context, fileKey, envelope []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return openEnvelope(fileKey, envelope)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid file key length %d", ErrConfiguration, len(key))
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// openEnvelope splits the first 12 bytes as IV and decrypts the remainder.
// An envelope shorter than IV+tag cannot contain even an empty file and is
// treated the same as a tag mismatch.
func openEnvelope(fileKey, envelope []byte) ([]byte, error) {
	gcm, err := newGCM(fileKey)
	if err != nil {
		return nil, err
	}

	if len(envelope) < ivLength+gcmTagLength {
		return nil, fmt.Errorf("%w: envelope of %d bytes is truncated", ErrAuthentication, len(envelope))
	}

	iv, ciphertext := envelope[:ivLength], envelope[ivLength:]
	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthentication
	}
	return plaintext, nil
}
