package service

import "errors"

// Validation errors, raised before any network call.
var (
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrPasswordTooShort = errors.New("password too short")
	ErrNameTooShort     = errors.New("name too short")
	ErrNoFileSelected   = errors.New("no file selected")
	ErrEmptyFileName    = errors.New("empty file name")
	ErrFileTooLarge     = errors.New("file size exceeds limit")
)

// Business errors mapped from transport failures.
var (
	ErrInvalidCredentials = errors.New("no account with these credentials")
	ErrAccountExists      = errors.New("account with these credentials exists")
	ErrServerUnavailable  = errors.New("server unavailable")
	ErrRequestFailed      = errors.New("request failed")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrFileNotFound       = errors.New("file not found")
)
