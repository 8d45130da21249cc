package client

import (
	"context"
	"errors"

	"github.com/imgautam07/share-in-web/internal/logger"
	"github.com/imgautam07/share-in-web/internal/service"
	"github.com/imgautam07/share-in-web/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if log == nil {
		log = logger.Nop()
	}
	return &App{services: services, tui: ui, logger: log.GetChildLogger()}, nil
}

// Run implements [Client]. A stored token is verified once at startup; if it
// does not hold up the user goes through the login flow. Logout from the
// dashboard returns to the login flow instead of exiting.
func (a *App) Run() error {
	ctx := context.Background()

	identity, ok := a.services.Auth.Restore(ctx)
	if !ok {
		var err error
		identity, err = a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	} else {
		a.logger.Info().Str("userID", identity.UserID).Msg("session restored")
	}

	logout, err := a.tui.MainLoop(ctx, identity)
	if err != nil {
		return err
	}
	if logout {
		a.services.Auth.Logout()
		return a.Run()
	}

	return nil
}
