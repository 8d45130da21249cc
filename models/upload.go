package models

// UploadDraft is the locally prepared upload state: the selected payload and
// the caller-editable display name. It exists only between file selection and
// submission; a failed submission keeps the draft intact for retry.
type UploadDraft struct {
	// Path is the local filesystem path of the selected payload.
	Path string

	// OriginalName is the base name of the selected file, extension included.
	OriginalName string

	// Size is the payload size in bytes, captured at selection time.
	Size int64

	// DisplayName is the name the file will carry on the server. Defaults to
	// OriginalName with its final extension stripped.
	DisplayName string
}

// UploadRequest is the wire-level upload composite: the payload path, the
// chosen display name, and the access-control list seeded with the uploading
// user's own ID.
type UploadRequest struct {
	// FilePath is the local path of the payload to stream as the "file" part.
	FilePath string

	// Name is sent as the "name" form field.
	Name string

	// Access is JSON-encoded into the "access" form field.
	Access []string
}
