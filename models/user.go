package models

import "time"

// User represents an account entity used for authentication and authorization.
// It carries only wrapped key material and derived credentials; the plaintext
// password and any unwrapped key must never be placed on this struct when it
// crosses a process boundary.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique account identifier used during authentication.
	Email string `json:"email"`

	// AuthKey is the base64-encoded server-facing authentication credential
	// (hAuthKey). It substitutes for the password on login and signup and
	// cannot be reversed into any encryption key.
	AuthKey string `json:"auth_key,omitempty"`

	// ClientRandomValue is the base64-encoded per-account public random
	// value (CRV) generated once at signup. It anchors deterministic salt
	// derivation and is stored server-side in the clear.
	ClientRandomValue string `json:"client_random_value,omitempty"`

	// WrappedAccountKey is the base64-encoded account key encrypted under
	// the password-derived master key. The server stores it but cannot
	// open it.
	WrappedAccountKey string `json:"wrapped_account_key,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
