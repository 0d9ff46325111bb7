package invites

import (
	"context"

	invitesdb "github.com/byterank/byterank-backend/internal/invites/gen"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockInviteRepository is a mock implementation of the invite Repository
// interface for testing purposes using testify/mock.
type MockInviteRepository struct {
	mock.Mock
}

// AddGroupMember mocks the AddGroupMember method
func (m *MockInviteRepository) AddGroupMember(ctx context.Context, arg invitesdb.AddGroupMemberParams) error {
	args := m.Called(ctx, arg)
	return args.Error(0)
}

// CreateInvitation mocks the CreateInvitation method
func (m *MockInviteRepository) CreateInvitation(ctx context.Context, arg invitesdb.CreateInvitationParams) (invitesdb.GroupInvitation, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(invitesdb.GroupInvitation), args.Error(1)
}

// CreateJoinRequest mocks the CreateJoinRequest method
func (m *MockInviteRepository) CreateJoinRequest(ctx context.Context, arg invitesdb.CreateJoinRequestParams) (invitesdb.GroupJoinRequest, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(invitesdb.GroupJoinRequest), args.Error(1)
}

// DeleteInvitation mocks the DeleteInvitation method
func (m *MockInviteRepository) DeleteInvitation(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// DeleteJoinRequest mocks the DeleteJoinRequest method
func (m *MockInviteRepository) DeleteJoinRequest(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// GetInvitation mocks the GetInvitation method
func (m *MockInviteRepository) GetInvitation(ctx context.Context, id uuid.UUID) (invitesdb.GroupInvitation, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(invitesdb.GroupInvitation), args.Error(1)
}

// GetJoinRequest mocks the GetJoinRequest method
func (m *MockInviteRepository) GetJoinRequest(ctx context.Context, id uuid.UUID) (invitesdb.GroupJoinRequest, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(invitesdb.GroupJoinRequest), args.Error(1)
}

// GetPendingInvitation mocks the GetPendingInvitation method
func (m *MockInviteRepository) GetPendingInvitation(ctx context.Context, arg invitesdb.GetPendingInvitationParams) (invitesdb.GroupInvitation, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(invitesdb.GroupInvitation), args.Error(1)
}

// ListInvitationsForGroup mocks the ListInvitationsForGroup method
func (m *MockInviteRepository) ListInvitationsForGroup(ctx context.Context, groupID uuid.UUID) ([]invitesdb.ListInvitationsForGroupRow, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]invitesdb.ListInvitationsForGroupRow), args.Error(1)
}

// ListInvitationsForUser mocks the ListInvitationsForUser method
func (m *MockInviteRepository) ListInvitationsForUser(ctx context.Context, invitedUser uuid.UUID) ([]invitesdb.ListInvitationsForUserRow, error) {
	args := m.Called(ctx, invitedUser)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]invitesdb.ListInvitationsForUserRow), args.Error(1)
}

// ListJoinRequestsForGroup mocks the ListJoinRequestsForGroup method
func (m *MockInviteRepository) ListJoinRequestsForGroup(ctx context.Context, groupID uuid.UUID) ([]invitesdb.ListJoinRequestsForGroupRow, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]invitesdb.ListJoinRequestsForGroupRow), args.Error(1)
}

// ListJoinRequestsForUser mocks the ListJoinRequestsForUser method
func (m *MockInviteRepository) ListJoinRequestsForUser(ctx context.Context, requesterID uuid.UUID) ([]invitesdb.ListJoinRequestsForUserRow, error) {
	args := m.Called(ctx, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]invitesdb.ListJoinRequestsForUserRow), args.Error(1)
}

// UpdateInvitationStatus mocks the UpdateInvitationStatus method
func (m *MockInviteRepository) UpdateInvitationStatus(ctx context.Context, arg invitesdb.UpdateInvitationStatusParams) (invitesdb.GroupInvitation, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(invitesdb.GroupInvitation), args.Error(1)
}

// UpdateJoinRequestStatus mocks the UpdateJoinRequestStatus method
func (m *MockInviteRepository) UpdateJoinRequestStatus(ctx context.Context, arg invitesdb.UpdateJoinRequestStatusParams) (invitesdb.GroupJoinRequest, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(invitesdb.GroupJoinRequest), args.Error(1)
}

// AcceptInvitationTx mocks the AcceptInvitationTx method
func (m *MockInviteRepository) AcceptInvitationTx(ctx context.Context, arg AcceptInvitationTxParams) error {
	args := m.Called(ctx, arg)
	return args.Error(0)
}

// ApproveJoinRequestTx mocks the ApproveJoinRequestTx method
func (m *MockInviteRepository) ApproveJoinRequestTx(ctx context.Context, arg ApproveJoinRequestTxParams) error {
	args := m.Called(ctx, arg)
	return args.Error(0)
}

var _ Repository = (*MockInviteRepository)(nil)
