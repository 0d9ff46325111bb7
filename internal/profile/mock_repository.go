package profile

import (
	"context"

	profiledb "github.com/byterank/byterank-backend/internal/profile/gen"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProfileRepository is a mock implementation of the profile Repository
// interface for testing purposes using testify/mock.
type MockProfileRepository struct {
	mock.Mock
}

// GetProfile mocks the GetProfile method
func (m *MockProfileRepository) GetProfile(ctx context.Context, id uuid.UUID) (profiledb.Profile, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(profiledb.Profile), args.Error(1)
}

// GetProfileByUsername mocks the GetProfileByUsername method
func (m *MockProfileRepository) GetProfileByUsername(ctx context.Context, username string) (profiledb.Profile, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(profiledb.Profile), args.Error(1)
}

// ListTopProfiles mocks the ListTopProfiles method
func (m *MockProfileRepository) ListTopProfiles(ctx context.Context, limit int32) ([]profiledb.Profile, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]profiledb.Profile), args.Error(1)
}

// UpdateAvatarUrl mocks the UpdateAvatarUrl method
func (m *MockProfileRepository) UpdateAvatarUrl(ctx context.Context, arg profiledb.UpdateAvatarUrlParams) error {
	args := m.Called(ctx, arg)
	return args.Error(0)
}

// UpdateContributions mocks the UpdateContributions method
func (m *MockProfileRepository) UpdateContributions(ctx context.Context, arg profiledb.UpdateContributionsParams) (profiledb.Profile, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(profiledb.Profile), args.Error(1)
}

// UpdateProfile mocks the UpdateProfile method
func (m *MockProfileRepository) UpdateProfile(ctx context.Context, arg profiledb.UpdateProfileParams) (profiledb.Profile, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(profiledb.Profile), args.Error(1)
}

var _ Repository = (*MockProfileRepository)(nil)
