package utils

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/imgautam07/share-in-web/models"
)

var ErrInvalidToken = errors.New("invalid session token")

// DecodeIdentity extracts the identity claims from a session token without
// verifying its signature. The server is the authority on token validity; the
// client only needs the embedded "userId"/"id" and "name" claims.
//
// Returns ErrInvalidToken (wrapped) if the token cannot be parsed or carries
// no usable user identifier.
func DecodeIdentity(tokenString string) (models.Identity, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Identity{}, fmt.Errorf("%w: unexpected claims type", ErrInvalidToken)
	}

	userID := stringClaim(claims, "userId")
	if userID == "" {
		userID = stringClaim(claims, "id")
	}
	if userID == "" {
		return models.Identity{}, fmt.Errorf("%w: missing user id claim", ErrInvalidToken)
	}

	return models.Identity{
		UserID: userID,
		Name:   stringClaim(claims, "name"),
	}, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	v, ok := claims[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}
