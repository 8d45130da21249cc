package store

import "errors"

// ErrNoToken is returned by Load when no session token is stored.
var ErrNoToken = errors.New("no stored session token")
