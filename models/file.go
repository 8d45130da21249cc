package models

import "time"

// FileType is the fixed category classification assigned to every stored file.
type FileType string

const (
	FileTypeDocs   FileType = "docs"
	FileTypeSheets FileType = "sheets"
	FileTypeMedia  FileType = "media"
	FileTypeOthers FileType = "others"
)

// CategoryAll is the pseudo-category meaning "no category filter". It is a UI
// value only and is never sent to the server.
const CategoryAll = "all"

// Categories lists the selectable filter categories in display order.
func Categories() []string {
	return []string{
		CategoryAll,
		string(FileTypeDocs),
		string(FileTypeSheets),
		string(FileTypeMedia),
		string(FileTypeOthers),
	}
}

// FileRecord is the server-owned file entity. The client never mutates it in
// place; deletes, shares and access grants are remote operations.
type FileRecord struct {
	// ID is the server-assigned file identifier.
	ID string `json:"id"`

	// Name is the display name chosen at upload time.
	Name string `json:"name"`

	// Type is the category the server assigned to the file.
	Type FileType `json:"type"`

	// Size is the payload size in bytes.
	Size int64 `json:"size"`

	// FileURL is the direct download location of the payload.
	FileURL string `json:"fileUrl"`

	// PreviewImage is an optional preview reference; empty when the server
	// produced none.
	PreviewImage string `json:"previewImage,omitempty"`

	// CreatedAt is the server-side creation timestamp.
	CreatedAt time.Time `json:"createdAt"`

	// Access lists the user IDs permitted to access the file.
	Access []string `json:"access,omitempty"`
}
