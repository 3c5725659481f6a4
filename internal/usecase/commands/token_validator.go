package commands

import (
	"facility-booking/internal/domain/user"
	"facility-booking/internal/pkg/jwt"
)

// TokenValidator adapts the JWT service for the auth middleware.
type TokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) *TokenValidator {
	return &TokenValidator{jwtService: jwtService}
}

func (v *TokenValidator) ValidateToken(token string) (int64, user.Role, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return 0, "", err
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return 0, "", err
	}
	return claims.UserID, role, nil
}
