package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imgautam07/share-in-web/internal/config"
	"github.com/imgautam07/share-in-web/internal/logger"
	"github.com/imgautam07/share-in-web/internal/service"
	"github.com/imgautam07/share-in-web/models"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services   *service.ClientServices
	webBaseURL string
}

func New(services *service.ClientServices, cfg *config.ClientConfig, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, webBaseURL: cfg.App.WebBaseURL}, nil
}

// LoginFlow runs the welcome/login/register screens until the user signs in
// or quits. On success it returns the authenticated identity.
func (t *TUI) LoginFlow(ctx context.Context) (models.Identity, error) {
	pages := map[string]tea.Model{
		"welcome":  NewWelcomeModel(),
		"login":    NewLoginModel(ctx, t.services.Auth),
		"register": NewRegisterModel(ctx, t.services.Auth),
	}

	root := NewRootModel(pages, "welcome")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Identity{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Identity{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Identity{}, ErrUserQuit
	}

	return result.resultIdentity, nil
}

// MainLoop runs the dashboard until the user quits or logs out.
func (t *TUI) MainLoop(ctx context.Context, identity models.Identity) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, identity, t.webBaseURL)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
