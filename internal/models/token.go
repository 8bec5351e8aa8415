package models

import "github.com/golang-jwt/jwt/v5"

// JWTClaims is the signed identity payload. Email is the subject every guard
// and email-match check keys on.
type JWTClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}
