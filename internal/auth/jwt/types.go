package jwt

import (
	jwtx "github.com/golang-jwt/jwt/v4"
)

// Claims represents the JWT claims carried by ByteRank access and refresh tokens.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwtx.RegisteredClaims
}

// CreateJwtParams holds the identity fields baked into a freshly issued token pair.
type CreateJwtParams struct {
	UserID   string
	Username string
}
