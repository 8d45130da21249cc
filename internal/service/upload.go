package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/imgautam07/share-in-web/internal/adapter"
	"github.com/imgautam07/share-in-web/internal/logger"
	"github.com/imgautam07/share-in-web/internal/utils"
	"github.com/imgautam07/share-in-web/models"
)

// MaxUploadSize is the hard payload limit. Larger files are rejected locally;
// there is no chunking or resumption.
const MaxUploadSize = 25 << 20 // 25 MiB

type uploadService struct {
	auth    AuthService
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewUploadService(auth AuthService, serverAdapter adapter.ServerAdapter, log *logger.Logger) UploadService {
	if log == nil {
		log = logger.Nop()
	}
	return &uploadService{auth: auth, adapter: serverAdapter, logger: log.GetChildLogger()}
}

// Prepare implements [UploadService].
func (u *uploadService) Prepare(path string) (models.UploadDraft, error) {
	if strings.TrimSpace(path) == "" {
		return models.UploadDraft{}, ErrNoFileSelected
	}

	info, err := os.Stat(path)
	if err != nil {
		return models.UploadDraft{}, fmt.Errorf("%w: %v", ErrNoFileSelected, err)
	}
	if info.IsDir() {
		return models.UploadDraft{}, fmt.Errorf("%w: %s is a directory", ErrNoFileSelected, path)
	}
	if info.Size() > MaxUploadSize {
		return models.UploadDraft{}, ErrFileTooLarge
	}

	original := filepath.Base(path)
	return models.UploadDraft{
		Path:         path,
		OriginalName: original,
		Size:         info.Size(),
		DisplayName:  utils.StripExtension(original),
	}, nil
}

// Submit implements [UploadService]. Every precondition is re-checked here so
// a caller-assembled draft cannot slip past the limits; nothing goes out on
// the wire until all checks pass.
func (u *uploadService) Submit(ctx context.Context, draft models.UploadDraft) error {
	if draft.Path == "" {
		return ErrNoFileSelected
	}

	name := strings.TrimSpace(draft.DisplayName)
	if name == "" {
		return ErrEmptyFileName
	}

	if draft.Size > MaxUploadSize {
		return ErrFileTooLarge
	}

	identity, err := u.auth.CurrentUser()
	if err != nil {
		return err
	}

	req := models.UploadRequest{
		FilePath: draft.Path,
		Name:     name,
		Access:   []string{identity.UserID},
	}
	if err = u.adapter.UploadFile(ctx, req); err != nil {
		// The draft stays untouched so the user can retry.
		return mapFileError(err)
	}

	u.logger.Info().Str("name", name).Int64("size", draft.Size).Msg("file uploaded")
	return nil
}
