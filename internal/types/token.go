package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenUser is the user section of the token payload
type TokenUser struct {
	ID string `json:"id"`
}

// TokenClaims represents the claims in a JWT token: {"user":{"id":...}} plus iat/exp
type TokenClaims struct {
	User TokenUser `json:"user"`
	jwt.RegisteredClaims
}
