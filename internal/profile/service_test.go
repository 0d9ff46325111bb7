package profile

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"testing"

	apiErrors "github.com/byterank/byterank-backend/internal/errors"
	profiledb "github.com/byterank/byterank-backend/internal/profile/gen"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockContributionCounter is a mock implementation of the ContributionCounter
// interface.
type MockContributionCounter struct {
	mock.Mock
}

func (m *MockContributionCounter) CountCommits(ctx context.Context, username string) (int, error) {
	args := m.Called(ctx, username)
	return args.Int(0), args.Error(1)
}

func newTestProfileService(repo *MockProfileRepository, counter *MockContributionCounter) *ProfileService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewProfileService(logger, repo, counter, nil, "avatars")
}

func TestGetProfile(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		userID        string
		setupMocks    func(repo *MockProfileRepository)
		expectedError error
	}{
		{
			name:   "Success - profile found",
			userID: userID.String(),
			setupMocks: func(repo *MockProfileRepository) {
				repo.On("GetProfile", mock.Anything, userID).
					Return(profiledb.Profile{ID: userID, Username: "octocat"}, nil)
			},
		},
		{
			name:   "Error - no row",
			userID: userID.String(),
			setupMocks: func(repo *MockProfileRepository) {
				repo.On("GetProfile", mock.Anything, userID).
					Return(profiledb.Profile{}, sql.ErrNoRows)
			},
			expectedError: apiErrors.ErrProfileNotFound,
		},
		{
			name:          "Error - malformed id never reaches the repository",
			userID:        "not-a-uuid",
			setupMocks:    func(repo *MockProfileRepository) {},
			expectedError: apiErrors.ErrProfileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockProfileRepository{}
			tt.setupMocks(repo)
			service := newTestProfileService(repo, &MockContributionCounter{})

			prof, err := service.GetProfile(context.Background(), tt.userID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, prof)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "octocat", prof.Username)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	userID := uuid.New()
	req := UpdateProfileRequest{
		Username:  "octocat",
		GithubURL: "https://github.com/octocat",
	}

	tests := []struct {
		name          string
		setupMocks    func(repo *MockProfileRepository)
		expectedError error
	}{
		{
			name: "Success - empty optional fields stored as null",
			setupMocks: func(repo *MockProfileRepository) {
				repo.On("UpdateProfile", mock.Anything, profiledb.UpdateProfileParams{
					ID:        userID,
					Username:  "octocat",
					GithubUrl: sql.NullString{String: "https://github.com/octocat", Valid: true},
				}).Return(profiledb.Profile{ID: userID, Username: "octocat"}, nil)
			},
		},
		{
			name: "Error - username already taken",
			setupMocks: func(repo *MockProfileRepository) {
				repo.On("UpdateProfile", mock.Anything, mock.Anything).
					Return(profiledb.Profile{}, &pq.Error{Code: "23505"})
			},
			expectedError: apiErrors.ErrDuplicateUsername,
		},
		{
			name: "Error - profile gone",
			setupMocks: func(repo *MockProfileRepository) {
				repo.On("UpdateProfile", mock.Anything, mock.Anything).
					Return(profiledb.Profile{}, sql.ErrNoRows)
			},
			expectedError: apiErrors.ErrProfileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockProfileRepository{}
			tt.setupMocks(repo)
			service := newTestProfileService(repo, &MockContributionCounter{})

			prof, err := service.UpdateProfile(context.Background(), userID.String(), req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, prof)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "octocat", prof.Username)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestRefreshContributions(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		setupMocks    func(repo *MockProfileRepository, counter *MockContributionCounter)
		expectedError error
	}{
		{
			name: "Success - new total persisted",
			setupMocks: func(repo *MockProfileRepository, counter *MockContributionCounter) {
				repo.On("GetProfile", mock.Anything, userID).
					Return(profiledb.Profile{ID: userID, Username: "octocat", NumContributions: 10}, nil)
				counter.On("CountCommits", mock.Anything, "octocat").Return(1337, nil)
				repo.On("UpdateContributions", mock.Anything, profiledb.UpdateContributionsParams{
					ID:               userID,
					NumContributions: 1337,
				}).Return(profiledb.Profile{ID: userID, Username: "octocat", NumContributions: 1337}, nil)
			},
		},
		{
			name: "Error - counter failure leaves the stored total untouched",
			setupMocks: func(repo *MockProfileRepository, counter *MockContributionCounter) {
				repo.On("GetProfile", mock.Anything, userID).
					Return(profiledb.Profile{ID: userID, Username: "octocat"}, nil)
				counter.On("CountCommits", mock.Anything, "octocat").
					Return(0, errors.New("api rate limit exceeded"))
			},
			expectedError: errors.New("api rate limit exceeded"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockProfileRepository{}
			counter := &MockContributionCounter{}
			tt.setupMocks(repo, counter)
			service := newTestProfileService(repo, counter)

			prof, err := service.RefreshContributions(context.Background(), userID.String())

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, prof)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int32(1337), prof.NumContributions)
			}
			repo.AssertExpectations(t)
			counter.AssertExpectations(t)
		})
	}
}

func TestLeaderboard(t *testing.T) {
	first := uuid.New()
	second := uuid.New()

	repo := &MockProfileRepository{}
	repo.On("ListTopProfiles", mock.Anything, int32(2)).
		Return([]profiledb.Profile{
			{ID: first, Username: "alice", NumContributions: 200},
			{ID: second, Username: "bob", NumContributions: 100},
		}, nil)
	service := newTestProfileService(repo, &MockContributionCounter{})

	entries, err := service.Leaderboard(context.Background(), 2)

	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "alice", entries[0].Username)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, int32(100), entries[1].NumContributions)
	repo.AssertExpectations(t)
}

func TestLeaderboardClampsLimit(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		expectedLimit int32
	}{
		{name: "zero falls back to the default", limit: 0, expectedLimit: defaultLeaderboardSize},
		{name: "negative falls back to the default", limit: -5, expectedLimit: defaultLeaderboardSize},
		{name: "oversized falls back to the default", limit: 500, expectedLimit: defaultLeaderboardSize},
		{name: "in-range passes through", limit: 10, expectedLimit: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockProfileRepository{}
			repo.On("ListTopProfiles", mock.Anything, tt.expectedLimit).
				Return([]profiledb.Profile{}, nil)
			service := newTestProfileService(repo, &MockContributionCounter{})

			_, err := service.Leaderboard(context.Background(), tt.limit)

			assert.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}
