// Package adapter provides the transport layer for communicating with the
// share-in REST backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/imgautam07/share-in-web/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// TokenSource supplies the current session token for outbound requests.
// Implementations must return the live value on every call: the token slot
// can change between issuance and completion of an in-flight request, so the
// adapter never caches it.
type TokenSource interface {
	// Token returns the current session token, or an empty string when the
	// user has no session. Requests sent without a token are expected to be
	// rejected by the backend with an authorization failure.
	Token() string
}

// TokenSourceFunc adapts a plain function to the [TokenSource] interface.
type TokenSourceFunc func() string

// Token implements [TokenSource].
func (f TokenSourceFunc) Token() string { return f() }

// ServerAdapter defines transport-agnostic communication with the share-in
// backend. Implementations are responsible for serialisation, auth-header
// management, and mapping transport-level errors to the sentinel values
// defined in this package. Each method is a single backend round-trip.
type ServerAdapter interface {
	// SignIn authenticates with email and password via POST /api/auth/signin
	// and returns the issued session token. No auth header is attached.
	SignIn(ctx context.Context, user models.User) (string, error)

	// SignUp creates an account via POST /api/auth/signup and returns the
	// issued session token. No auth header is attached.
	SignUp(ctx context.Context, user models.User) (string, error)

	// VerifyToken asks the server to confirm the current session token via
	// POST /api/auth/verify-token. A nil return means the token is valid.
	VerifyToken(ctx context.Context) error

	// ListFiles fetches all files visible to the current user via
	// GET /api/files. Order is defined by the backend and preserved as is.
	ListFiles(ctx context.Context) ([]models.FileRecord, error)

	// SearchFiles fetches files matching the filter via GET /api/files with
	// "type" and/or "name" query parameters. Absent parts of the filter are
	// omitted from the query; when both are present the backend applies a
	// logical AND.
	SearchFiles(ctx context.Context, filter models.SearchFilter) ([]models.FileRecord, error)

	// DeleteFile removes the file via DELETE /api/files/{id}. The caller is
	// responsible for dropping the record from any local list on success.
	DeleteFile(ctx context.Context, fileID string) error

	// ShareViaEmail triggers a server-side share email for the file via
	// POST /api/files/{id}/share-email.
	ShareViaEmail(ctx context.Context, fileID, emailAddress string) error

	// UploadFile submits a new file via multipart POST /api/files/upload
	// with "file", "name" and JSON-encoded "access" parts.
	UploadFile(ctx context.Context, req models.UploadRequest) error

	// GrantAccess adds the current user to the file's access list via
	// PUT /api/files/{id}/access. Idempotent on the server side.
	GrantAccess(ctx context.Context, fileID string) error

	// GetFile fetches a single file record via GET /api/files/{id}.
	GetFile(ctx context.Context, fileID string) (models.FileRecord, error)

	// DownloadFile streams the payload at fileURL into destPath. fileURL is
	// the absolute download location from a [models.FileRecord]; no session
	// token is attached to the request.
	DownloadFile(ctx context.Context, fileURL, destPath string) error
}
