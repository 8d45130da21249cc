package models

// TokenResponse is the body returned by the sign-in and sign-up endpoints.
type TokenResponse struct {
	Token string `json:"token"`
}

// FileListResponse is the body returned by GET /api/files.
type FileListResponse struct {
	Files []FileRecord `json:"files"`
}

// FileResponse is the body returned by GET /api/files/{id}.
type FileResponse struct {
	File FileRecord `json:"file"`
}

// ShareEmailRequest is the body of POST /api/files/{id}/share-email.
type ShareEmailRequest struct {
	EmailAddress string `json:"emailAddress"`
}
