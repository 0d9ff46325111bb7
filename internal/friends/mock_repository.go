package friends

import (
	"context"
	"database/sql"

	friendsdb "github.com/byterank/byterank-backend/internal/friends/gen"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockFriendRepository is a mock implementation of the friend Repository
// interface for testing purposes using testify/mock.
type MockFriendRepository struct {
	mock.Mock
}

// CreateFriendRequest mocks the CreateFriendRequest method
func (m *MockFriendRepository) CreateFriendRequest(ctx context.Context, arg friendsdb.CreateFriendRequestParams) (friendsdb.FriendRequest, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(friendsdb.FriendRequest), args.Error(1)
}

// CreateFriendship mocks the CreateFriendship method
func (m *MockFriendRepository) CreateFriendship(ctx context.Context, arg friendsdb.CreateFriendshipParams) error {
	args := m.Called(ctx, arg)
	return args.Error(0)
}

// DeleteFriendRequest mocks the DeleteFriendRequest method
func (m *MockFriendRepository) DeleteFriendRequest(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// DeleteFriendship mocks the DeleteFriendship method
func (m *MockFriendRepository) DeleteFriendship(ctx context.Context, arg friendsdb.DeleteFriendshipParams) (sql.Result, error) {
	args := m.Called(ctx, arg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(sql.Result), args.Error(1)
}

// DeletePendingRequestsBetween mocks the DeletePendingRequestsBetween method
func (m *MockFriendRepository) DeletePendingRequestsBetween(ctx context.Context, arg friendsdb.DeletePendingRequestsBetweenParams) error {
	args := m.Called(ctx, arg)
	return args.Error(0)
}

// GetFriendRequest mocks the GetFriendRequest method
func (m *MockFriendRepository) GetFriendRequest(ctx context.Context, id uuid.UUID) (friendsdb.FriendRequest, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(friendsdb.FriendRequest), args.Error(1)
}

// GetFriendship mocks the GetFriendship method
func (m *MockFriendRepository) GetFriendship(ctx context.Context, arg friendsdb.GetFriendshipParams) (friendsdb.Friendship, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(friendsdb.Friendship), args.Error(1)
}

// GetPendingRequestBetween mocks the GetPendingRequestBetween method
func (m *MockFriendRepository) GetPendingRequestBetween(ctx context.Context, arg friendsdb.GetPendingRequestBetweenParams) (friendsdb.FriendRequest, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(friendsdb.FriendRequest), args.Error(1)
}

// ListFriendRequestsForUser mocks the ListFriendRequestsForUser method
func (m *MockFriendRepository) ListFriendRequestsForUser(ctx context.Context, userID uuid.UUID) ([]friendsdb.ListFriendRequestsForUserRow, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]friendsdb.ListFriendRequestsForUserRow), args.Error(1)
}

// ListFriends mocks the ListFriends method
func (m *MockFriendRepository) ListFriends(ctx context.Context, userID uuid.UUID) ([]friendsdb.ListFriendsRow, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]friendsdb.ListFriendsRow), args.Error(1)
}

// AcceptFriendRequestTx mocks the AcceptFriendRequestTx method
func (m *MockFriendRepository) AcceptFriendRequestTx(ctx context.Context, arg AcceptFriendRequestTxParams) error {
	args := m.Called(ctx, arg)
	return args.Error(0)
}

// AutoAcceptTx mocks the AutoAcceptTx method
func (m *MockFriendRepository) AutoAcceptTx(ctx context.Context, arg AutoAcceptTxParams) error {
	args := m.Called(ctx, arg)
	return args.Error(0)
}

var _ Repository = (*MockFriendRepository)(nil)
