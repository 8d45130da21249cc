package service

import (
	"github.com/imgautam07/share-in-web/internal/adapter"
	"github.com/imgautam07/share-in-web/internal/config"
	"github.com/imgautam07/share-in-web/internal/logger"
	"github.com/imgautam07/share-in-web/internal/store"
)

// ClientServices bundles the client workflows behind one wiring point.
type ClientServices struct {
	Auth   AuthService
	Files  FileService
	Upload UploadService
	Redeem RedeemService
}

// NewClientServices wires the service layer on top of the credential store and
// the server adapter.
func NewClientServices(creds store.CredentialStore, serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, log *logger.Logger) *ClientServices {
	auth := NewAuthService(creds, serverAdapter, log)

	return &ClientServices{
		Auth:   auth,
		Files:  NewFileService(serverAdapter, log),
		Upload: NewUploadService(auth, serverAdapter, log),
		Redeem: NewRedeemService(creds, serverAdapter, cfg.App.DownloadDir, log),
	}
}
