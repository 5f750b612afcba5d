// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/aes"
	"crypto/subtle"
	"encoding/binary"
	"fmt"
)

// AES Key Wrap (RFC 3394). The construction is deterministic: all
// unpredictability comes from the wrapped key having been generated
// randomly beforehand. The 8-byte integrity check value is the only
// detector of a wrong wrapping key or a corrupted blob.

const (
	kwBlockSize = 8
	kwRounds    = 6
)

// kwIV is the initial value from RFC 3394 §2.2.3.1.
var kwIV = [kwBlockSize]byte{0xA6, 0xA6, 0xA6, 0xA6, 0xA6, 0xA6, 0xA6, 0xA6}

// WrapKey implements [KeyVaultService]. The key must be a multiple of 8
// bytes and at least 16; the wrapping key must be a valid AES-256 key.
// Output is exactly len(key)+8 bytes.
func (k *keyVaultService) WrapKey(key, wrappingKey []byte) ([]byte, error) {
	if len(key)%kwBlockSize != 0 || len(key) < 2*kwBlockSize {
		return nil, fmt.Errorf("%w: key length %d is not wrappable", ErrConfiguration, len(key))
	}
	block, err := aes.NewCipher(wrappingKey)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid wrapping key length %d", ErrConfiguration, len(wrappingKey))
	}

	n := len(key) / kwBlockSize
	var a [kwBlockSize]byte
	copy(a[:], kwIV[:])

	r := make([]byte, len(key))
	copy(r, key)

	buf := make([]byte, 2*kwBlockSize)
	for j := 0; j < kwRounds; j++ {
		for i := 0; i < n; i++ {
			copy(buf[:kwBlockSize], a[:])
			copy(buf[kwBlockSize:], r[i*kwBlockSize:(i+1)*kwBlockSize])
			block.Encrypt(buf, buf)

			t := uint64(n*j + i + 1)
			copy(a[:], buf[:kwBlockSize])
			xorCounter(&a, t)
			copy(r[i*kwBlockSize:(i+1)*kwBlockSize], buf[kwBlockSize:])
		}
	}

	return append(a[:], r...), nil
}

// UnwrapKey implements [KeyVaultService]. Any malformed length, wrong
// wrapping key, or corrupted ciphertext surfaces as ErrIntegrity; the
// distinction is deliberately not exposed to avoid oracle behaviour.
func (k *keyVaultService) UnwrapKey(wrapped, wrappingKey []byte) ([]byte, error) {
	if len(wrapped)%kwBlockSize != 0 || len(wrapped) < 3*kwBlockSize {
		return nil, fmt.Errorf("%w: wrapped blob length %d is malformed", ErrIntegrity, len(wrapped))
	}
	block, err := aes.NewCipher(wrappingKey)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid wrapping key length %d", ErrConfiguration, len(wrappingKey))
	}

	n := len(wrapped)/kwBlockSize - 1
	var a [kwBlockSize]byte
	copy(a[:], wrapped[:kwBlockSize])

	r := make([]byte, n*kwBlockSize)
	copy(r, wrapped[kwBlockSize:])

	buf := make([]byte, 2*kwBlockSize)
	for j := kwRounds - 1; j >= 0; j-- {
		for i := n - 1; i >= 0; i-- {
			t := uint64(n*j + i + 1)
			xorCounter(&a, t)
			copy(buf[:kwBlockSize], a[:])
			copy(buf[kwBlockSize:], r[i*kwBlockSize:(i+1)*kwBlockSize])
			block.Decrypt(buf, buf)

			copy(a[:], buf[:kwBlockSize])
			copy(r[i*kwBlockSize:(i+1)*kwBlockSize], buf[kwBlockSize:])
		}
	}

	if subtle.ConstantTimeCompare(a[:], kwIV[:]) != 1 {
		return nil, ErrIntegrity
	}
	return r, nil
}

func xorCounter(a *[kwBlockSize]byte, t uint64) {
	var tb [kwBlockSize]byte
	binary.BigEndian.PutUint64(tb[:], t)
	for i := range a {
		a[i] ^= tb[i]
	}
}
