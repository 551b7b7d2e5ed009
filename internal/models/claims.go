package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims is the authenticated caller identity carried in access tokens.
type UserClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
