package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/imgautam07/share-in-web/internal/adapter"
	"github.com/imgautam07/share-in-web/internal/logger"
	"github.com/imgautam07/share-in-web/internal/store"
	"github.com/imgautam07/share-in-web/internal/utils"
	"github.com/imgautam07/share-in-web/models"
)

const (
	minPasswordLen = 6
	minNameLen     = 3
)

type authService struct {
	creds   store.CredentialStore
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewAuthService(creds store.CredentialStore, serverAdapter adapter.ServerAdapter, log *logger.Logger) AuthService {
	if log == nil {
		log = logger.Nop()
	}
	return &authService{creds: creds, adapter: serverAdapter, logger: log.GetChildLogger()}
}

// SignIn implements [AuthService].
func (a *authService) SignIn(ctx context.Context, email, password string) error {
	if !utils.IsValidEmail(email) {
		return ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return ErrPasswordTooShort
	}

	token, err := a.adapter.SignIn(ctx, models.User{Email: email, Password: password})
	if err != nil {
		return mapAuthError(err, false)
	}

	return a.adoptToken(token)
}

// SignUp implements [AuthService].
func (a *authService) SignUp(ctx context.Context, email, name, password string) error {
	if !utils.IsValidEmail(email) {
		return ErrInvalidEmail
	}
	if len(strings.TrimSpace(name)) < minNameLen {
		return ErrNameTooShort
	}
	if len(password) < minPasswordLen {
		return ErrPasswordTooShort
	}

	token, err := a.adapter.SignUp(ctx, models.User{Email: email, Name: name, Password: password})
	if err != nil {
		return mapAuthError(err, true)
	}

	return a.adoptToken(token)
}

// adoptToken makes sure the token decodes to a usable identity before it
// replaces the stored one, so a failed call never leaves partial state.
func (a *authService) adoptToken(token string) error {
	if _, err := utils.DecodeIdentity(token); err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	if err := a.creds.Save(token); err != nil {
		return fmt.Errorf("save session token: %w", err)
	}
	return nil
}

// Restore implements [AuthService].
func (a *authService) Restore(ctx context.Context) (models.Identity, bool) {
	token, err := a.creds.Load()
	if err != nil {
		return models.Identity{}, false
	}

	if err = a.adapter.VerifyToken(ctx); err != nil {
		a.logger.Info().Err(err).Msg("stored token rejected, clearing session")
		a.clear()
		return models.Identity{}, false
	}

	identity, err := utils.DecodeIdentity(token)
	if err != nil {
		a.logger.Warn().Err(err).Msg("stored token undecodable, clearing session")
		a.clear()
		return models.Identity{}, false
	}

	return identity, true
}

// CurrentUser implements [AuthService].
func (a *authService) CurrentUser() (models.Identity, error) {
	token, err := a.creds.Load()
	if err != nil {
		return models.Identity{}, ErrNotAuthenticated
	}

	identity, err := utils.DecodeIdentity(token)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %v", ErrNotAuthenticated, err)
	}
	return identity, nil
}

// Logout implements [AuthService].
func (a *authService) Logout() {
	a.clear()
}

func (a *authService) clear() {
	if err := a.creds.Clear(); err != nil {
		a.logger.Error().Err(err).Msg("clear session token")
	}
}
