// SPDX-License-Identifier: Apache-2.0

// Package app contains shared application-layer constants used across the
// cloud storage client and the server API it talks to.
//
// All Msg* constants are human-readable message strings that the server
// writes into HTTP response bodies to describe the outcome of an operation.
// The client error mapper matches on them when translating transport errors
// into business errors, so consistent wording matters.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is returned when the supplied email/auth key
	// combination does not match any existing account.
	MsgInvalidCredentials = "invalid email or credentials"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgEmailAlreadyExists is returned when a signup request names an email
	// that is already registered.
	MsgEmailAlreadyExists = "email already exists"

	// MsgFileNameAlreadyExists is returned when an upload request names a
	// file that already exists for the account.
	MsgFileNameAlreadyExists = "file name already exists"

	// MsgAccountNotFound is returned when the client random value is
	// requested for an email that is not registered.
	MsgAccountNotFound = "account not found"

	// MsgFileNotFound is returned when a download or delete request targets
	// a file that does not exist or belongs to another account.
	MsgFileNotFound = "file not found"
)
