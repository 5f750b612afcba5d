// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating with
// the cloud storage server.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/reznik99/cloud-storage-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the cloud
// storage server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
//
// The server only ever sees wrapped keys and sealed envelopes; nothing passed
// through this interface is decryptable server-side.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. The user value carries the email, the
	// auth key, the client random value and the wrapped account key; the
	// plaintext password never leaves the client. On success the returned
	// bearer token is stored via SetToken and the session token is returned.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// GetClientRandomValue fetches the public client random value stored for
	// email during registration. The CRV is needed to derive the salt before
	// the auth key can be computed for Login. Returns a partial [models.User]
	// containing only Email and ClientRandomValue.
	GetClientRandomValue(ctx context.Context, email string) (models.User, error)

	// Login authenticates the user with the pre-computed auth key. On success
	// the returned bearer token is stored via SetToken and the fully populated
	// server-side user record (including the wrapped account key) is returned
	// alongside the session token.
	Login(ctx context.Context, user models.User) (models.User, models.Token, error)

	// UploadFile sends one sealed envelope together with its metadata and
	// wrapped file key to the server. Returns the stored metadata row as the
	// server recorded it, or [ErrConflict] (wrapped) if a file with the same
	// name already exists for the account.
	UploadFile(ctx context.Context, req models.UploadRequest) (models.FileObject, error)

	// DownloadFile retrieves the metadata row and the sealed envelope for
	// fileID. Returns [ErrNotFound] (wrapped) if the file does not exist or
	// belongs to another account.
	DownloadFile(ctx context.Context, fileID string) (models.DownloadResponse, error)

	// DownloadSharedFile retrieves the sealed envelope for a shared file
	// without authentication. Only the envelope is returned; metadata stays
	// private to the owner.
	DownloadSharedFile(ctx context.Context, fileID string) ([]byte, error)

	// ListFiles fetches metadata rows for every file owned by the
	// authenticated account. Wrapped file keys are included so a later
	// download needs only the blob.
	ListFiles(ctx context.Context) ([]models.FileObject, error)

	// DeleteFile removes the file identified by fileID from the server.
	// Returns [ErrNotFound] (wrapped) if the file does not exist.
	DeleteFile(ctx context.Context, fileID string) error
}
