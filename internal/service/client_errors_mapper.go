// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"
	"strings"

	"github.com/reznik99/cloud-storage-client/internal/adapter"
	"github.com/reznik99/cloud-storage-client/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// business error.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if msg == app.MsgInvalidDataProvided {
			return ErrRegisterOnServer
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidCredentials:
			return ErrWrongPassword
		case app.MsgTokenIsExpired:
			return ErrTokenIsExpired
		case app.MsgTokenIsExpiredOrInvalid:
			return ErrTokenIsExpired
		}
		return ErrWrongPassword

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgAccountNotFound:
			return ErrAccountNotFound
		case app.MsgFileNotFound:
			return ErrFileNotFound
		}
		return ErrFileNotFound

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgEmailAlreadyExists:
			return ErrEmailAlreadyExists
		case app.MsgFileNameAlreadyExists:
			return ErrFileNameTaken
		}
	}

	return err
}

// extractBody extracts the body from a message of the form
// "bad request: <body>".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
