package auth

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"testing"
	"time"

	authdb "github.com/byterank/byterank-backend/internal/auth/gen"
	"github.com/byterank/byterank-backend/internal/auth/jwt"
	"github.com/byterank/byterank-backend/internal/auth/provider"
	apiErrors "github.com/byterank/byterank-backend/internal/errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOAuthProvider is a mock implementation of the OAuthProvider interface.
type MockOAuthProvider struct {
	mock.Mock
}

func (m *MockOAuthProvider) GetAuthURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *MockOAuthProvider) ExchangeCode(ctx context.Context, code string) (*provider.OAuthToken, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.OAuthToken), args.Error(1)
}

func (m *MockOAuthProvider) GetUserInfo(ctx context.Context, token *provider.OAuthToken) (*provider.UserInfo, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.UserInfo), args.Error(1)
}

// MockAuthRepository is a mock implementation of the auth Querier interface.
type MockAuthRepository struct {
	mock.Mock
}

func (m *MockAuthRepository) GetProfileByID(ctx context.Context, id uuid.UUID) (authdb.Profile, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(authdb.Profile), args.Error(1)
}

func (m *MockAuthRepository) GetProfileByUsername(ctx context.Context, username string) (authdb.Profile, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(authdb.Profile), args.Error(1)
}

func (m *MockAuthRepository) UpsertProfile(ctx context.Context, arg authdb.UpsertProfileParams) (authdb.Profile, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(authdb.Profile), args.Error(1)
}

var _ authdb.Querier = (*MockAuthRepository)(nil)

func newTestAuthService(oauth *MockOAuthProvider, repo *MockAuthRepository) *AuthService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	jwter := jwt.NewManager("test-secret", 15*time.Minute, 24*time.Hour)
	return NewAuthService(oauth, repo, jwter, logger)
}

func TestHandleCallback(t *testing.T) {
	userID := uuid.New()
	oauthToken := &provider.OAuthToken{AccessToken: "gho_test", TokenType: "bearer"}

	tests := []struct {
		name       string
		setupMocks func(oauth *MockOAuthProvider, repo *MockAuthRepository)
		wantErr    bool
	}{
		{
			name: "Success - profile upserted and tokens issued",
			setupMocks: func(oauth *MockOAuthProvider, repo *MockAuthRepository) {
				oauth.On("ExchangeCode", mock.Anything, "oauth-code").Return(oauthToken, nil)
				oauth.On("GetUserInfo", mock.Anything, oauthToken).Return(&provider.UserInfo{
					Provider:   "github",
					ProviderID: 583231,
					Username:   "octocat",
					AvatarURL:  "https://avatars.githubusercontent.com/u/583231",
				}, nil)
				repo.On("UpsertProfile", mock.Anything, authdb.UpsertProfileParams{
					Username:   "octocat",
					AvatarUrl:  sql.NullString{String: "https://avatars.githubusercontent.com/u/583231", Valid: true},
					Provider:   "github",
					ProviderID: "583231",
				}).Return(authdb.Profile{
					ID:        userID,
					Username:  "octocat",
					AvatarUrl: sql.NullString{String: "https://avatars.githubusercontent.com/u/583231", Valid: true},
				}, nil)
			},
		},
		{
			name: "Error - code exchange rejected",
			setupMocks: func(oauth *MockOAuthProvider, repo *MockAuthRepository) {
				oauth.On("ExchangeCode", mock.Anything, "oauth-code").
					Return(nil, errors.New("bad_verification_code"))
			},
			wantErr: true,
		},
		{
			name: "Error - upsert failure",
			setupMocks: func(oauth *MockOAuthProvider, repo *MockAuthRepository) {
				oauth.On("ExchangeCode", mock.Anything, "oauth-code").Return(oauthToken, nil)
				oauth.On("GetUserInfo", mock.Anything, oauthToken).Return(&provider.UserInfo{
					Provider:   "github",
					ProviderID: 583231,
					Username:   "octocat",
				}, nil)
				repo.On("UpsertProfile", mock.Anything, mock.Anything).
					Return(authdb.Profile{}, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oauth := &MockOAuthProvider{}
			repo := &MockAuthRepository{}
			tt.setupMocks(oauth, repo)
			service := newTestAuthService(oauth, repo)

			resp, err := service.HandleCallback(context.Background(), "oauth-code")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, resp)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, userID.String(), resp.UserID)
				assert.Equal(t, "octocat", resp.Username)
				assert.NotEmpty(t, resp.Token)
				assert.NotEmpty(t, resp.RefreshToken)
			}
			oauth.AssertExpectations(t)
			repo.AssertExpectations(t)
		})
	}
}

func TestRefreshTokens(t *testing.T) {
	service := newTestAuthService(&MockOAuthProvider{}, &MockAuthRepository{})
	jwter := jwt.NewManager("test-secret", 15*time.Minute, 24*time.Hour)

	refresh, err := jwter.GenerateRefresh(jwt.CreateJwtParams{UserID: "user-1", Username: "octocat"})
	require.NoError(t, err)

	token, newRefresh, err := service.RefreshTokens(context.Background(), refresh)

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, newRefresh)
}

func TestRefreshTokensRejectsGarbage(t *testing.T) {
	service := newTestAuthService(&MockOAuthProvider{}, &MockAuthRepository{})

	_, _, err := service.RefreshTokens(context.Background(), "not.a.token")

	assert.ErrorIs(t, err, apiErrors.ErrInvalidToken)
}

func TestGetProfileByUsername(t *testing.T) {
	repo := &MockAuthRepository{}
	repo.On("GetProfileByUsername", mock.Anything, "ghost").
		Return(authdb.Profile{}, sql.ErrNoRows)
	service := newTestAuthService(&MockOAuthProvider{}, repo)

	profile, err := service.GetProfileByUsername(context.Background(), "ghost")

	assert.ErrorIs(t, err, apiErrors.ErrProfileNotFound)
	assert.Nil(t, profile)
	repo.AssertExpectations(t)
}
