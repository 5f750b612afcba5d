// SPDX-License-Identifier: Apache-2.0

package crypto

import "sync"

// CredentialSession holds the key material of the currently authenticated
// user. It lives only in process memory: a restart forces re-authentication
// before any encrypt/decrypt call can proceed, which is deliberate.
//
// Every Unlock and Clear bumps a generation counter. Operations take a
// Snapshot up front and may check StillValid before committing side effects,
// so an in-flight upload can never mix the master key of one login with the
// wrapped account key of another.
type CredentialSession struct {
	mu         sync.RWMutex
	generation uint64
	unlocked   bool

	password          string
	crv               []byte
	masterEncKey      []byte
	wrappedAccountKey []byte
	authKey           []byte
}

// UnlockMaterial is everything a successful login or re-authentication
// produces. Password is optional and kept only if the caller re-entered it.
type UnlockMaterial struct {
	Password          string
	CRV               []byte
	MasterEncKey      []byte
	WrappedAccountKey []byte
	AuthKey           []byte
}

// SessionSnapshot is a consistent copy of one session generation. All
// fields were set by the same Unlock call.
type SessionSnapshot struct {
	Generation        uint64
	CRV               []byte
	MasterEncKey      []byte
	WrappedAccountKey []byte
	AuthKey           []byte
}

// NewCredentialSession returns a locked session.
func NewCredentialSession() *CredentialSession {
	return &CredentialSession{}
}

// Unlock replaces the session contents with m and starts a new generation.
// The slices are copied so later mutation by the caller cannot corrupt the
// session.
func (s *CredentialSession) Unlock(m UnlockMaterial) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.zeroLocked()
	s.password = m.Password
	s.crv = cloneBytes(m.CRV)
	s.masterEncKey = cloneBytes(m.MasterEncKey)
	s.wrappedAccountKey = cloneBytes(m.WrappedAccountKey)
	s.authKey = cloneBytes(m.AuthKey)
	s.unlocked = true
	s.generation++
}

// Clear wipes all held material and starts a new generation. Called on
// logout; in-flight operations holding an older snapshot will see their
// generation as stale.
func (s *CredentialSession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.zeroLocked()
	s.unlocked = false
	s.generation++
}

// Snapshot returns a copy of the current session contents, or
// ErrMissingCredentials when the session is locked. The copies are owned by
// the caller.
func (s *CredentialSession) Snapshot() (SessionSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.unlocked {
		return SessionSnapshot{}, ErrMissingCredentials
	}
	return SessionSnapshot{
		Generation:        s.generation,
		CRV:               cloneBytes(s.crv),
		MasterEncKey:      cloneBytes(s.masterEncKey),
		WrappedAccountKey: cloneBytes(s.wrappedAccountKey),
		AuthKey:           cloneBytes(s.authKey),
	}, nil
}

// StillValid reports whether generation matches the live session, i.e. no
// Unlock or Clear happened since the snapshot was taken.
func (s *CredentialSession) StillValid(generation uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unlocked && s.generation == generation
}

// Unlocked reports whether key material is currently held.
func (s *CredentialSession) Unlocked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unlocked
}

// Password returns the re-entered password, if the user supplied one this
// generation.
func (s *CredentialSession) Password() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.password, s.unlocked && s.password != ""
}

func (s *CredentialSession) zeroLocked() {
	Zero(s.crv)
	Zero(s.masterEncKey)
	Zero(s.wrappedAccountKey)
	Zero(s.authKey)
	s.password = ""
	s.crv, s.masterEncKey, s.wrappedAccountKey, s.authKey = nil, nil, nil, nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
