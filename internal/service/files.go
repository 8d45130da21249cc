package service

import (
	"context"

	"github.com/imgautam07/share-in-web/internal/adapter"
	"github.com/imgautam07/share-in-web/internal/logger"
	"github.com/imgautam07/share-in-web/internal/utils"
	"github.com/imgautam07/share-in-web/models"
)

type fileService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewFileService(serverAdapter adapter.ServerAdapter, log *logger.Logger) FileService {
	if log == nil {
		log = logger.Nop()
	}
	return &fileService{adapter: serverAdapter, logger: log.GetChildLogger()}
}

// List implements [FileService]. The backend's ordering is preserved; the
// client never reorders or caches.
func (f *fileService) List(ctx context.Context) ([]models.FileRecord, error) {
	files, err := f.adapter.ListFiles(ctx)
	if err != nil {
		return nil, mapFileError(err)
	}
	return files, nil
}

// Search implements [FileService].
func (f *fileService) Search(ctx context.Context, filter models.SearchFilter) ([]models.FileRecord, error) {
	files, err := f.adapter.SearchFiles(ctx, filter)
	if err != nil {
		return nil, mapFileError(err)
	}
	return files, nil
}

// Delete implements [FileService].
func (f *fileService) Delete(ctx context.Context, fileID string) error {
	if err := f.adapter.DeleteFile(ctx, fileID); err != nil {
		return mapFileError(err)
	}
	f.logger.Info().Str("fileID", fileID).Msg("file deleted")
	return nil
}

// ShareViaEmail implements [FileService]. The address gets the same syntactic
// check as the auth forms before anything is sent.
func (f *fileService) ShareViaEmail(ctx context.Context, fileID, emailAddress string) error {
	if !utils.IsValidEmail(emailAddress) {
		return ErrInvalidEmail
	}

	if err := f.adapter.ShareViaEmail(ctx, fileID, emailAddress); err != nil {
		return mapFileError(err)
	}
	f.logger.Info().Str("fileID", fileID).Msg("share email dispatched")
	return nil
}

// Fetch implements [FileService].
func (f *fileService) Fetch(ctx context.Context, fileID string) (models.FileRecord, error) {
	record, err := f.adapter.GetFile(ctx, fileID)
	if err != nil {
		return models.FileRecord{}, mapFileError(err)
	}
	return record, nil
}
