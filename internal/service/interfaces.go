// Package service implements the client-side workflows of the share-in
// application on top of the transport adapter and the credential store.
package service

import (
	"context"

	"github.com/imgautam07/share-in-web/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// AuthService is the client-side contract for the session lifecycle: sign-in,
// sign-up, startup verification, and logout.
type AuthService interface {
	// SignIn authenticates with email and password. Validation (email syntax,
	// password length) happens before any network call. On success the issued
	// token is stored; on failure no state changes.
	SignIn(ctx context.Context, email, password string) error

	// SignUp creates an account. Validation (email syntax, name and password
	// length) happens before any network call. On success the issued token is
	// stored; on failure no state changes.
	SignUp(ctx context.Context, email, name, password string) error

	// Restore verifies the stored token against the server once at startup
	// (and again whenever the token changes). With no stored token it returns
	// an anonymous session immediately, without a network call. Any
	// verification failure clears the stored token and yields an anonymous
	// session; it is never retried automatically.
	Restore(ctx context.Context) (models.Identity, bool)

	// CurrentUser decodes the identity from the currently stored token.
	// The identity is always re-decoded, never cached, so it can never
	// diverge from the token. Returns ErrNotAuthenticated when no usable
	// token is stored.
	CurrentUser() (models.Identity, error)

	// Logout clears the stored token. Purely local, idempotent, no network.
	Logout()
}

// FileService is the client-side contract for remote file operations.
type FileService interface {
	// List fetches all files visible to the current user, in backend order.
	List(ctx context.Context) ([]models.FileRecord, error)

	// Search fetches files matching the filter (category AND text fragment,
	// both optional).
	Search(ctx context.Context, filter models.SearchFilter) ([]models.FileRecord, error)

	// Delete removes the file on the server. The caller drops the record
	// from its local list on success.
	Delete(ctx context.Context, fileID string) error

	// ShareViaEmail validates the address locally and triggers a server-side
	// share email.
	ShareViaEmail(ctx context.Context, fileID, emailAddress string) error

	// Fetch retrieves a single file record.
	Fetch(ctx context.Context, fileID string) (models.FileRecord, error)
}

// UploadService is the client-side contract for the upload workflow.
type UploadService interface {
	// Prepare inspects the selected file, enforces the size limit, and
	// returns a draft with the default display name (extension stripped).
	Prepare(path string) (models.UploadDraft, error)

	// Submit validates the draft and uploads it with an access list seeded
	// with the current user's ID. All validation happens before any network
	// call; on failure the draft stays intact for retry.
	Submit(ctx context.Context, draft models.UploadDraft) error
}

// RedeemService is the client-side contract for shared-link redemption.
type RedeemService interface {
	// Redeem grants the current user access to the file, fetches its record,
	// and downloads the payload into the configured download directory,
	// returning the record and the local path. Without a stored token it
	// aborts with ErrNotAuthenticated before any network call. The three
	// steps are sequential and not transactional: a grant that succeeded
	// stays granted even when a later step fails.
	Redeem(ctx context.Context, fileID string) (models.FileRecord, string, error)
}
