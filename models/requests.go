package models

// UploadRequest carries one encrypted file to the server. The envelope is
// base64-encoded for JSON transport; its decoded layout is fixed as
// IV (12 bytes) followed by AES-GCM ciphertext with the 16-byte tag.
type UploadRequest struct {
	// FileID is the client-generated UUID for the blob.
	FileID string `json:"file_id"`

	// Name is the user-visible file name.
	Name string `json:"name"`

	// Size is the plaintext size in bytes.
	Size int64 `json:"size"`

	// WrappedFileKey is the base64-encoded file key wrapped under the
	// account key. Goes to file metadata storage.
	WrappedFileKey string `json:"wrapped_file_key"`

	// Envelope is the base64-encoded IV-prefixed ciphertext. Goes to blob
	// storage.
	Envelope string `json:"envelope"`
}

// DownloadResponse is the server's answer to a file fetch: the metadata row
// and the envelope blob in one message.
type DownloadResponse struct {
	// File is the metadata row, including the wrapped file key.
	File FileObject `json:"file"`

	// Envelope is the base64-encoded IV-prefixed ciphertext.
	Envelope string `json:"envelope"`
}

// ListResponse contains the server-side state of every file that belongs to
// the user. The client uses it to rebuild its local metadata cache.
type ListResponse struct {
	// Files is the list of metadata rows. Wrapped keys are included so a
	// later download needs only the blob.
	Files []FileObject `json:"files"`

	// Length is the total number of entries in Files. Provided for
	// convenience so the client can pre-allocate or validate the response
	// without iterating the slice.
	Length int `json:"length"`
}
