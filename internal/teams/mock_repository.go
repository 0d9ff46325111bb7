package teams

import (
	"context"
	"database/sql"

	teamsdb "github.com/byterank/byterank-backend/internal/teams/gen"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTeamRepository is a mock implementation of the team Repository
// interface for testing purposes using testify/mock.
type MockTeamRepository struct {
	mock.Mock
}

// AddGroupMember mocks the AddGroupMember method
func (m *MockTeamRepository) AddGroupMember(ctx context.Context, arg teamsdb.AddGroupMemberParams) error {
	args := m.Called(ctx, arg)
	return args.Error(0)
}

// CountGroupOwners mocks the CountGroupOwners method
func (m *MockTeamRepository) CountGroupOwners(ctx context.Context, groupID uuid.UUID) (int64, error) {
	args := m.Called(ctx, groupID)
	return args.Get(0).(int64), args.Error(1)
}

// CreateGroup mocks the CreateGroup method
func (m *MockTeamRepository) CreateGroup(ctx context.Context, arg teamsdb.CreateGroupParams) (teamsdb.Group, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(teamsdb.Group), args.Error(1)
}

// DeleteGroup mocks the DeleteGroup method
func (m *MockTeamRepository) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// GetGroup mocks the GetGroup method
func (m *MockTeamRepository) GetGroup(ctx context.Context, id uuid.UUID) (teamsdb.Group, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(teamsdb.Group), args.Error(1)
}

// GetGroupForUpdate mocks the GetGroupForUpdate method
func (m *MockTeamRepository) GetGroupForUpdate(ctx context.Context, id uuid.UUID) (teamsdb.Group, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(teamsdb.Group), args.Error(1)
}

// GetGroupMember mocks the GetGroupMember method
func (m *MockTeamRepository) GetGroupMember(ctx context.Context, arg teamsdb.GetGroupMemberParams) (teamsdb.GroupMember, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(teamsdb.GroupMember), args.Error(1)
}

// ListGroupMembers mocks the ListGroupMembers method
func (m *MockTeamRepository) ListGroupMembers(ctx context.Context, groupID uuid.UUID) ([]teamsdb.ListGroupMembersRow, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]teamsdb.ListGroupMembersRow), args.Error(1)
}

// ListGroups mocks the ListGroups method
func (m *MockTeamRepository) ListGroups(ctx context.Context) ([]teamsdb.ListGroupsRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]teamsdb.ListGroupsRow), args.Error(1)
}

// ListGroupsForUser mocks the ListGroupsForUser method
func (m *MockTeamRepository) ListGroupsForUser(ctx context.Context, userID uuid.UUID) ([]teamsdb.ListGroupsForUserRow, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]teamsdb.ListGroupsForUserRow), args.Error(1)
}

// RemoveGroupMember mocks the RemoveGroupMember method
func (m *MockTeamRepository) RemoveGroupMember(ctx context.Context, arg teamsdb.RemoveGroupMemberParams) (sql.Result, error) {
	args := m.Called(ctx, arg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(sql.Result), args.Error(1)
}

// UpdateGroup mocks the UpdateGroup method
func (m *MockTeamRepository) UpdateGroup(ctx context.Context, arg teamsdb.UpdateGroupParams) (teamsdb.Group, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(teamsdb.Group), args.Error(1)
}

// UpdateGroupAvatar mocks the UpdateGroupAvatar method
func (m *MockTeamRepository) UpdateGroupAvatar(ctx context.Context, arg teamsdb.UpdateGroupAvatarParams) error {
	args := m.Called(ctx, arg)
	return args.Error(0)
}

// CreateGroupWithOwnerTx mocks the CreateGroupWithOwnerTx method
func (m *MockTeamRepository) CreateGroupWithOwnerTx(ctx context.Context, arg CreateGroupWithOwnerTxParams) (teamsdb.Group, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(teamsdb.Group), args.Error(1)
}

// LeaveGroupTx mocks the LeaveGroupTx method
func (m *MockTeamRepository) LeaveGroupTx(ctx context.Context, arg LeaveGroupTxParams) error {
	args := m.Called(ctx, arg)
	return args.Error(0)
}

var _ Repository = (*MockTeamRepository)(nil)
