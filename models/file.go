// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// FileObject describes one encrypted file as the server and the local
// metadata cache see it. The content itself travels separately as an
// envelope blob; this struct never holds plaintext or an unwrapped key.
type FileObject struct {
	// FileID is the client-generated UUID identifying the blob on the
	// server. It doubles as the public identifier inside share links.
	FileID string `json:"file_id"`

	// UserID is the owning account. Not exposed via JSON; it is derived
	// server-side from the bearer token and locally from the session.
	UserID int64 `json:"-"`

	// Name is the user-visible file name, unique per account.
	Name string `json:"name"`

	// Size is the plaintext size in bytes, kept for listing display. The
	// stored blob is 28 bytes larger (12-byte IV plus 16-byte GCM tag).
	Size int64 `json:"size"`

	// WrappedFileKey is the base64-encoded single-use file key encrypted
	// under the account key. Stored as file metadata, never alongside an
	// unwrapped form.
	WrappedFileKey string `json:"wrapped_file_key"`

	// CreatedAt is when the file was first uploaded.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the file content was last replaced.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the local cache table associated with the
// FileObject model.
func (f FileObject) TableName() string {
	return "files"
}
