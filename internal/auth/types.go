package auth

import (
	"context"

	authdb "github.com/byterank/byterank-backend/internal/auth/gen"
)

// ProfileGetter exposes profile lookups to other services without coupling them
// to the auth repository.
type ProfileGetter interface {
	GetProfileByUsername(ctx context.Context, username string) (*authdb.Profile, error)
}

// CallbackResponseData is returned after a successful OAuth callback exchange.
type CallbackResponseData struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	AvatarURL    string `json:"avatar_url,omitempty"`
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshRequest is the payload for rotating an access/refresh token pair.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshResponseData carries a freshly rotated token pair.
type RefreshResponseData struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}
