package service

import (
	"errors"
	"fmt"

	"github.com/imgautam07/share-in-web/internal/adapter"
)

// mapAuthError translates a transport error from a sign-in or sign-up call
// into the business error surfaced to the user. The backend answers 400 both
// for unknown credentials (sign-in) and duplicate accounts (sign-up), so the
// operation decides which business error a bad request means.
func mapAuthError(err error, signUp bool) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if signUp {
			return fmt.Errorf("%w: %v", ErrAccountExists, err)
		}
		return fmt.Errorf("%w: %v", ErrInvalidCredentials, err)

	case adapter.IsServerError(err):
		return fmt.Errorf("%w: %v", ErrServerUnavailable, err)

	default:
		// Includes network-level failures where no response arrived at all.
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
}

// mapFileError translates a transport error from a file operation into the
// business error surfaced to the user.
func mapFileError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %v", ErrNotAuthenticated, err)

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrFileNotFound, err)

	case adapter.IsServerError(err):
		return fmt.Errorf("%w: %v", ErrServerUnavailable, err)

	default:
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
}
