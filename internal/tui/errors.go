package tui

import (
	"strings"

	"github.com/imgautam07/share-in-web/internal/service"
)

// humanizeError turns a service error into the message shown on screen.
// Raw network failures get a generic connectivity hint instead of the
// transport-level text.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network connection or the server is unreachable"
	}

	return service.UserMessage(err)
}
