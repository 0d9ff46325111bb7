package auth

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	authdb "github.com/byterank/byterank-backend/internal/auth/gen"
	"github.com/byterank/byterank-backend/internal/auth/jwt"
	"github.com/byterank/byterank-backend/internal/auth/provider"
	apiErrors "github.com/byterank/byterank-backend/internal/errors"
	"github.com/sirupsen/logrus"
)

// AuthService provides authentication logic using an OAuth provider, profile repository, and JWT manager.
// It encapsulates all business logic for login and session management.
type AuthService struct {
	provider    provider.OAuthProvider
	profileRepo authdb.Querier
	jwter       *jwt.Manager
	logger      *logrus.Logger
}

// NewAuthService creates a new AuthService with the given provider, repository, and JWT manager.
// This enables dependency injection and testability.
func NewAuthService(provider provider.OAuthProvider, repository authdb.Querier, jwter *jwt.Manager, logger *logrus.Logger) *AuthService {
	return &AuthService{
		provider:    provider,
		profileRepo: repository,
		jwter:       jwter,
		logger:      logger,
	}
}

// GetLoginURL returns the OAuth provider's login URL for the given state.
// Used to initiate browser-based OAuth login.
func (s *AuthService) GetLoginURL(state string) string {
	return s.provider.GetAuthURL(state)
}

// HandleCallback processes the OAuth callback, upserts the profile, and returns
// the profile together with a fresh access/refresh token pair.
func (s *AuthService) HandleCallback(ctx context.Context, code string) (*CallbackResponseData, error) {
	token, err := s.provider.ExchangeCode(ctx, code)
	if err != nil {
		s.logger.Errorf("Exchange code error: %v", err)
		return nil, fmt.Errorf("exchange code failed: %w", err)
	}

	userInfo, err := s.provider.GetUserInfo(ctx, token)
	if err != nil {
		s.logger.Errorf("Get user info error: %v", err)
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}

	// Upsert profile in database (create on first login, refresh avatar after)
	params := authdb.UpsertProfileParams{
		Username: userInfo.Username,
		AvatarUrl: sql.NullString{
			String: userInfo.AvatarURL,
			Valid:  userInfo.AvatarURL != "",
		},
		Provider:   userInfo.Provider,
		ProviderID: strconv.FormatInt(userInfo.ProviderID, 10),
	}
	s.logger.WithFields(logrus.Fields{
		"provider":    params.Provider,
		"provider_id": params.ProviderID,
		"username":    params.Username,
	}).Info("Upserting profile after OAuth callback")

	profile, err := s.profileRepo.UpsertProfile(ctx, params)
	if err != nil {
		s.logger.Errorf("Profile upsert error: %v", err)
		return nil, err
	}

	createJwtParams := jwt.CreateJwtParams{
		UserID:   profile.ID.String(),
		Username: profile.Username,
	}
	tokenStr, err := s.jwter.Generate(createJwtParams)
	if err != nil {
		s.logger.Errorf("JWT generation error: %v", err)
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}
	refreshToken, err := s.jwter.GenerateRefresh(createJwtParams)
	if err != nil {
		s.logger.Errorf("Refresh token generation error: %v", err)
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	s.logger.Infof("Tokens generated for user_id=%s", profile.ID.String())

	return &CallbackResponseData{
		UserID:       profile.ID.String(),
		Username:     profile.Username,
		AvatarURL:    profile.AvatarUrl.String,
		Token:        tokenStr,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshTokens validates the refresh token and issues new access and refresh tokens.
// Used for session renewal and token rotation.
func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := s.jwter.Verify(refreshToken)
	if err != nil {
		if err == apiErrors.ErrExpiredToken {
			s.logger.Warn("Refresh token expired")
			return "", "", apiErrors.ErrExpiredToken
		}
		s.logger.Warnf("Invalid refresh token: %v", err)
		return "", "", apiErrors.ErrInvalidToken
	}
	params := jwt.CreateJwtParams{
		UserID:   claims.UserID,
		Username: claims.Username,
	}
	token, err := s.jwter.Generate(params)
	if err != nil {
		s.logger.Errorf("JWT generation error: %v", err)
		return "", "", err
	}
	newRefreshToken, err := s.jwter.GenerateRefresh(params)
	if err != nil {
		s.logger.Errorf("Refresh token generation error: %v", err)
		return "", "", err
	}
	s.logger.Infof("Refreshed tokens for user_id=%s", claims.UserID)
	return token, newRefreshToken, nil
}

// GetProfileByUsername looks up a profile by its GitHub username.
// Implements ProfileGetter for services that resolve usernames to identities.
func (s *AuthService) GetProfileByUsername(ctx context.Context, username string) (*authdb.Profile, error) {
	profile, err := s.profileRepo.GetProfileByUsername(ctx, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apiErrors.ErrProfileNotFound
		}
		s.logger.WithFields(logrus.Fields{
			"username": username,
			"error":    err.Error(),
		}).Error("Failed to fetch profile by username")
		return nil, err
	}
	return &profile, nil
}
