package models

import "strings"

// User carries the credentials sent to the auth endpoints. Name is only used
// during sign-up and is omitted from the sign-in payload.
// Password must never be logged or persisted on the client.
type User struct {
	// Email is the unique account identifier used during authentication.
	Email string `json:"email"`

	// Name is the display name of the user. Sign-up only.
	Name string `json:"name,omitempty"`

	// Password is the plaintext password forwarded to the server over TLS.
	Password string `json:"password"`
}

// Identity is the user identity decoded from the session token's claims.
// It is derived data: it lives exactly as long as the token it came from and
// is re-decoded whenever needed, never cached independently.
type Identity struct {
	// UserID is the server-side account identifier ("userId" or "id" claim).
	UserID string

	// Name is the display name embedded in the token ("name" claim).
	Name string
}

// DisplayName returns the identity's name, falling back to "User" when the
// token carried no usable name claim.
func (i Identity) DisplayName() string {
	if strings.TrimSpace(i.Name) == "" {
		return "User"
	}
	return i.Name
}
