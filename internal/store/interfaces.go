// Package store holds the client-side persistence layer. The only durable
// state the client keeps is a single session-token slot; everything else is
// owned by the server.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_store_mock.go -package=mock

// CredentialStore persists the single session-token slot across restarts.
// All operations are synchronous and idempotent; Load has no side effects.
type CredentialStore interface {
	// Save replaces the stored token wholesale with the given value.
	Save(token string) error

	// Load returns the currently stored token, or ErrNoToken when the slot
	// is empty.
	Load() (string, error)

	// Clear empties the token slot. Clearing an already-empty slot is a
	// no-op, not an error.
	Clear() error
}
