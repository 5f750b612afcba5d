package service

import "errors"

var (
	ErrRegisterOnServer = errors.New("registration failed on server")
	ErrLoginOnServer    = errors.New("login failed on server")
	ErrWrongPassword    = errors.New("wrong password")
	ErrNotLoggedIn      = errors.New("not logged in")

	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrAccountNotFound    = errors.New("account not found")

	ErrTokenIsExpired = errors.New("token is expired")

	ErrEmptyFileName    = errors.New("file name must not be empty")
	ErrFileNameTaken    = errors.New("file name already exists")
	ErrFileNotFound     = errors.New("file not found")
	ErrInvalidShareLink = errors.New("invalid share link")
)
