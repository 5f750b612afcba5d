// Package service implements the client-side business logic of the
// zero-knowledge storage client: account lifecycle, file encryption
// round-trips, the local index cache, and share links.
//
// Services sit between the transport adapter and the crypto core. They own
// the ordering rules of the scheme: keys are derived before anything is
// sent, envelopes are sealed before upload, and plaintext never reaches the
// adapter.
package service

import (
	"context"
	"time"

	"github.com/reznik99/cloud-storage-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService owns the account lifecycle. It is the only component
// that ever sees the plaintext password, and it forgets it as soon as the
// credential session is populated.
type ClientAuthService interface {
	// Signup creates a new account: generates the client random value and
	// the account key, derives the key pair from the password, wraps the
	// account key, and registers the bundle with the server. On success the
	// credential session is unlocked.
	Signup(ctx context.Context, email, password string) error

	// Login authenticates an existing account: fetches the client random
	// value, re-derives the key pair, authenticates with the auth key, and
	// unwraps nothing yet; the wrapped account key returned by the server
	// is held in the session for later use. Returns ErrWrongPassword when
	// the server rejects the auth key.
	Login(ctx context.Context, email, password string) error

	// Logout clears the credential session and drops the bearer token. Any
	// in-flight operation holding an older session snapshot will fail its
	// generation check instead of committing.
	Logout(ctx context.Context) error

	// Reauthenticate re-derives credentials from the supplied password and
	// the cached client random value of the last login, then performs a
	// fresh login without a network round trip for the CRV.
	Reauthenticate(ctx context.Context, password string) error

	// CurrentUserID returns the account identifier of the authenticated
	// user, or ErrNotLoggedIn when no session is active.
	CurrentUserID() (int64, error)
}

// ClientFileService owns encrypted file round-trips and the local metadata
// cache. All methods require an unlocked credential session and return
// crypto.ErrMissingCredentials otherwise.
type ClientFileService interface {
	// Upload encrypts plaintext under a fresh file key, wraps the key under
	// the account key, sends the envelope to the server, and records the
	// returned metadata in the local cache. Nothing is recorded if the
	// context is cancelled or the session changed while the upload ran.
	Upload(ctx context.Context, name string, plaintext []byte) (models.FileObject, error)

	// Download fetches the envelope and wrapped file key for name, unwraps
	// the chain and returns the plaintext.
	Download(ctx context.Context, name string) ([]byte, error)

	// Delete removes the file on the server and drops the cached metadata
	// row.
	Delete(ctx context.Context, name string) error

	// List returns the locally cached metadata rows, refreshing them from
	// the server first when the cache is empty.
	List(ctx context.Context) ([]models.FileObject, error)

	// RefreshIndex replaces the local metadata cache with the server-side
	// file list. Called on login and periodically by the index worker.
	RefreshIndex(ctx context.Context) error

	// CreateShareLink builds a share URL for the named file. The raw file
	// key travels in the URL fragment, which browsers and proxies never
	// send to the server, so the link alone grants decryption.
	CreateShareLink(ctx context.Context, name string) (string, error)

	// OpenShareLink fetches a shared envelope and decrypts it with the raw
	// file key carried in the link fragment. Works without a session.
	OpenShareLink(ctx context.Context, link string) ([]byte, error)
}

// IndexRefreshJob is a background worker that keeps the local metadata
// cache close to the server state.
type IndexRefreshJob interface {
	// Start launches the background goroutine. It refreshes every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
