// Package store implements the client-side metadata cache.
//
// The cache is an SQLite database holding one row per remote file: the
// server-assigned identifier, the user-visible name, the plaintext size and
// the wrapped file key. Envelope blobs are never cached locally; only
// metadata needed to list files and start a download without a round trip.
package store

import (
	"context"

	"github.com/reznik99/cloud-storage-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalFileRepository is the low-level repository over the local file
// metadata cache. All methods scope their queries by userID so that cache
// rows of different accounts sharing one device never mix.
type LocalFileRepository interface {
	// SaveFile inserts or replaces one metadata row.
	SaveFile(ctx context.Context, userID int64, file models.FileObject) error

	// GetFileByName returns the metadata row for the given file name.
	// Returns [ErrFileNotFound] if no such row exists.
	GetFileByName(ctx context.Context, userID int64, name string) (models.FileObject, error)

	// GetAllFiles returns every cached metadata row for the user, ordered by
	// name.
	GetAllFiles(ctx context.Context, userID int64) ([]models.FileObject, error)

	// DeleteFile removes the metadata row for the given file name. Deleting
	// a missing row is not an error.
	DeleteFile(ctx context.Context, userID int64, name string) error

	// ReplaceAll atomically swaps the user's cached rows for the given set.
	// Used by the index refresh worker after fetching the server-side list.
	ReplaceAll(ctx context.Context, userID int64, files []models.FileObject) error
}
