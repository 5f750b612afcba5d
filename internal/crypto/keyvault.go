// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// crvLength is the size of the per-account client random value.
	crvLength = 12
	// ivLength is the AES-GCM nonce size used in file envelopes.
	ivLength = 12
	// keyLength is the size of every symmetric key in the hierarchy.
	keyLength = 32
	// minSaltLength is the floor below which key derivation refuses to run.
	minSaltLength = 16

	// kdfIterations and kdfOutputLength are fixed per deployment. Changing
	// either silently breaks derivation for every existing account.
	kdfIterations   = 500_000
	kdfOutputLength = 64

	// domainPadLength and domainPadByte define the salt-derivation prefix:
	// the deployment domain right-padded with 'P' up to 200 bytes.
	domainPadLength = 200
	domainPadByte   = 'P'
)

// keyVaultService is the private implementation of [KeyVaultService].
type keyVaultService struct {
	// kdfDomain is the deployment base URL mixed into salt derivation so
	// that identical CRVs yield different salts across deployments.
	kdfDomain string
}

// NewKeyVaultService constructs a [KeyVaultService] bound to the given
// deployment domain string (typically the service base URL). All KDF and
// cipher parameters are fixed constants; see the package documentation for
// the compatibility implications.
func NewKeyVaultService(kdfDomain string) KeyVaultService {
	return &keyVaultService{kdfDomain: kdfDomain}
}

// GenerateClientRandomValue implements [KeyVaultService]. It reads 12 random
// bytes from the OS CSPRNG. Returns an error if the random read fails.
func (k *keyVaultService) GenerateClientRandomValue() ([]byte, error) {
	return k.randomBytes(crvLength)
}

// GenerateKey implements [KeyVaultService]. It reads 32 random bytes from
// the OS CSPRNG and returns them as a fresh symmetric key.
func (k *keyVaultService) GenerateKey() ([]byte, error) {
	return k.randomBytes(keyLength)
}

// GenerateIV implements [KeyVaultService]. It reads 12 random bytes from the
// OS CSPRNG and returns them as a fresh AES-GCM initialization vector.
func (k *keyVaultService) GenerateIV() ([]byte, error) {
	return k.randomBytes(ivLength)
}

func (k *keyVaultService) randomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, fmt.Errorf("read csprng: %w", err)
	}
	return buf, nil
}

// DeriveSalt implements [KeyVaultService]. The prefix domain-separates the
// hash: two deployments sharing a CRV still derive different salts. Pure
// function; the result is never persisted, only recomputed.
func (k *keyVaultService) DeriveSalt(crv []byte) []byte {
	prefix := make([]byte, domainPadLength, domainPadLength+len(crv))
	copy(prefix, k.kdfDomain)
	for i := len(k.kdfDomain); i < domainPadLength; i++ {
		prefix[i] = domainPadByte
	}

	digest := sha256.Sum256(append(prefix, crv...))
	return digest[:]
}

// DeriveKeys implements [KeyVaultService]. The salt-length precondition is
// checked before any derivation work so a misconfigured or truncated salt
// never weakens the KDF silently. The context is consulted before the
// blocking PBKDF2 stage; callers that need concurrency run this inside
// their own goroutine and treat the call as one unit of work.
func (k *keyVaultService) DeriveKeys(ctx context.Context, password string, salt []byte) (DerivedKeys, error) {
	if len(salt) < minSaltLength {
		return DerivedKeys{}, fmt.Errorf("%w: salt is %d bytes, need at least %d", ErrConfiguration, len(salt), minSaltLength)
	}
	if err := ctx.Err(); err != nil {
		return DerivedKeys{}, err
	}

	derived := pbkdf2.Key([]byte(password), salt, kdfIterations, kdfOutputLength, sha512.New)

	masterEncKey := make([]byte, keyLength)
	copy(masterEncKey, derived[:keyLength])

	// The second half is only a seed: it is hashed once more so the value
	// sent to the server shares no bytes with any encryption key.
	authKey := sha256.Sum256(derived[keyLength:])
	Zero(derived)

	return DerivedKeys{MasterEncKey: masterEncKey, AuthKey: authKey[:]}, nil
}

// Zero overwrites b in place. Go gives no erasure guarantee, but dropping
// plaintext key bytes as early as possible shrinks their window in memory.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
