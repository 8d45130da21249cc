package service

import "errors"

// UserMessage translates a workflow error into the text shown to the user.
// Unrecognised errors collapse into the generic retry message so no raw
// transport detail leaks onto the screen.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidEmail):
		return "Please enter a valid email"
	case errors.Is(err, ErrPasswordTooShort):
		return "Password must have 6 characters minimum"
	case errors.Is(err, ErrNameTooShort):
		return "Name must have at least 3 characters"
	case errors.Is(err, ErrNoFileSelected):
		return "Please select a file"
	case errors.Is(err, ErrEmptyFileName):
		return "Please add a name to the file"
	case errors.Is(err, ErrFileTooLarge):
		return "File size exceeds 25MB limit"
	case errors.Is(err, ErrInvalidCredentials):
		return "There is no account with these credentials"
	case errors.Is(err, ErrAccountExists):
		return "There is an account with these credentials"
	case errors.Is(err, ErrServerUnavailable):
		return "Sorry! We're facing issues with our server."
	case errors.Is(err, ErrNotAuthenticated):
		return "You're not logged in!"
	case errors.Is(err, ErrFileNotFound):
		return "File not found"
	default:
		return "An error occurred. Please try again."
	}
}
