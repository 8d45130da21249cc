package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/imgautam07/share-in-web/models"
)

// NavigateTo switches the root router to another page. An optional Payload is
// re-dispatched into the new page after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// AuthResult finishes a login or registration attempt. The root router quits
// the login flow when Err is nil; the originating page shows Err otherwise.
type AuthResult struct {
	Identity models.Identity
	Err      error
}

