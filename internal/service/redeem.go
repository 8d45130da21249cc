package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/imgautam07/share-in-web/internal/adapter"
	"github.com/imgautam07/share-in-web/internal/logger"
	"github.com/imgautam07/share-in-web/internal/store"
	"github.com/imgautam07/share-in-web/models"
)

type redeemService struct {
	creds       store.CredentialStore
	adapter     adapter.ServerAdapter
	downloadDir string
	logger      *logger.Logger
}

func NewRedeemService(creds store.CredentialStore, serverAdapter adapter.ServerAdapter, downloadDir string, log *logger.Logger) RedeemService {
	if log == nil {
		log = logger.Nop()
	}
	return &redeemService{
		creds:       creds,
		adapter:     serverAdapter,
		downloadDir: downloadDir,
		logger:      log.GetChildLogger(),
	}
}

// Redeem implements [RedeemService]. The steps run in order: grant access,
// fetch the record, download the payload. A grant that succeeded stays
// granted even when a later step fails, matching the server's idempotent
// access list.
func (r *redeemService) Redeem(ctx context.Context, fileID string) (models.FileRecord, string, error) {
	if _, err := r.creds.Load(); err != nil {
		return models.FileRecord{}, "", ErrNotAuthenticated
	}

	if err := r.adapter.GrantAccess(ctx, fileID); err != nil {
		return models.FileRecord{}, "", mapFileError(err)
	}

	record, err := r.adapter.GetFile(ctx, fileID)
	if err != nil {
		return models.FileRecord{}, "", mapFileError(err)
	}

	if err = os.MkdirAll(r.downloadDir, 0o755); err != nil {
		return models.FileRecord{}, "", fmt.Errorf("create download directory: %w", err)
	}

	destPath := filepath.Join(r.downloadDir, record.Name)
	if err = r.adapter.DownloadFile(ctx, record.FileURL, destPath); err != nil {
		return models.FileRecord{}, "", mapFileError(err)
	}

	r.logger.Info().Str("fileID", fileID).Str("path", destPath).Msg("shared file redeemed")
	return record, destPath, nil
}
