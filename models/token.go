package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT session token with convenience accessors for the client
// authentication flow.
//
// It embeds [jwt.Token] for low-level token operations (parsing, claim
// inspection) and [jwt.RegisteredClaims] for standard claim access
// (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// UserID is a cached, parsed copy of the "sub" (subject) claim converted to
// int64. It is populated during token construction and avoids repeated
// string-to-int parsing.
type Token struct {
	// Token is the underlying JWT token used for claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject)
// claim. The parsed value is cached on the receiver so subsequent calls
// return it without re-parsing.
func (t *Token) GetUserID() (int64, error) {
	if t.UserID != 0 {
		return t.UserID, nil
	}

	sub, err := t.Claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error getting subject from token: %w", err)
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error parsing subject %q as user ID: %w", sub, err)
	}

	t.UserID = userID
	return userID, nil
}

// String returns the compact serialized form of the token.
func (t *Token) String() string {
	return t.SignedString
}
