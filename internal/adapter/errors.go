package adapter

import "errors"

var (
	// ErrBadRequest maps HTTP 400: the server rejected the request shape.
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized maps HTTP 401: the bearer token is missing, expired or
	// the auth key did not match.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrForbidden maps HTTP 403: the token is valid but does not grant
	// access to the resource.
	ErrForbidden = errors.New("access forbidden")

	// ErrNotFound maps HTTP 404: no such account or file.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict maps HTTP 409: the email or file name is already taken.
	ErrConflict = errors.New("resource conflict")

	// ErrInternalServerError maps HTTP 500.
	ErrInternalServerError = errors.New("internal server error")
)
