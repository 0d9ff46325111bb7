package invites

import (
	"context"
	"database/sql"
	"io"
	"testing"

	authdb "github.com/byterank/byterank-backend/internal/auth/gen"
	"github.com/byterank/byterank-backend/internal/authz"
	apiErrors "github.com/byterank/byterank-backend/internal/errors"
	invitesdb "github.com/byterank/byterank-backend/internal/invites/gen"
	teamsdb "github.com/byterank/byterank-backend/internal/teams/gen"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockTeamDirectory is a mock implementation of the TeamDirectory interface.
type MockTeamDirectory struct {
	mock.Mock
}

func (m *MockTeamDirectory) GetTeam(ctx context.Context, teamID string) (*teamsdb.Group, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*teamsdb.Group), args.Error(1)
}

func (m *MockTeamDirectory) GetMember(ctx context.Context, teamID, userID string) (*teamsdb.GroupMember, error) {
	args := m.Called(ctx, teamID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*teamsdb.GroupMember), args.Error(1)
}

// MockProfileDirectory is a mock implementation of the ProfileDirectory interface.
type MockProfileDirectory struct {
	mock.Mock
}

func (m *MockProfileDirectory) GetProfileByUsername(ctx context.Context, username string) (*authdb.Profile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authdb.Profile), args.Error(1)
}

func newTestInviteService(repo *MockInviteRepository, enforcer *authz.MockEnforcer, teams *MockTeamDirectory, profiles *MockProfileDirectory) *InviteService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewInviteService(logger, repo, enforcer, teams, profiles)
}

func TestInviteUser(t *testing.T) {
	teamID := uuid.New()
	actorID := uuid.New()
	invitedID := uuid.New()

	tests := []struct {
		name          string
		setupMocks    func(repo *MockInviteRepository, enforcer *authz.MockEnforcer, teams *MockTeamDirectory, profiles *MockProfileDirectory)
		expectedError error
	}{
		{
			name: "Success - invitation created",
			setupMocks: func(repo *MockInviteRepository, enforcer *authz.MockEnforcer, teams *MockTeamDirectory, profiles *MockProfileDirectory) {
				teams.On("GetTeam", mock.Anything, teamID.String()).
					Return(&teamsdb.Group{ID: teamID, AccessPolicy: teamsdb.AccessPolicyClosed}, nil)
				enforcer.On("Can", actorID.String(), teamID.String(), authz.ActionManageMembers).Return(true, nil)
				profiles.On("GetProfileByUsername", mock.Anything, "octocat").
					Return(&authdb.Profile{ID: invitedID, Username: "octocat"}, nil)
				teams.On("GetMember", mock.Anything, teamID.String(), invitedID.String()).
					Return(nil, apiErrors.ErrMembershipNotFound)
				repo.On("GetPendingInvitation", mock.Anything, invitesdb.GetPendingInvitationParams{
					GroupID:     teamID,
					InvitedUser: invitedID,
				}).Return(invitesdb.GroupInvitation{}, sql.ErrNoRows)
				repo.On("CreateInvitation", mock.Anything, invitesdb.CreateInvitationParams{
					GroupID:     teamID,
					CreatedBy:   actorID,
					InvitedUser: invitedID,
				}).Return(invitesdb.GroupInvitation{
					ID:          uuid.New(),
					GroupID:     teamID,
					CreatedBy:   actorID,
					InvitedUser: invitedID,
					Status:      invitesdb.InvitationStatusPending,
				}, nil)
			},
		},
		{
			name: "Error - plain member cannot invite",
			setupMocks: func(repo *MockInviteRepository, enforcer *authz.MockEnforcer, teams *MockTeamDirectory, profiles *MockProfileDirectory) {
				teams.On("GetTeam", mock.Anything, teamID.String()).
					Return(&teamsdb.Group{ID: teamID}, nil)
				enforcer.On("Can", actorID.String(), teamID.String(), authz.ActionManageMembers).Return(false, nil)
			},
			expectedError: apiErrors.ErrForbidden,
		},
		{
			name: "Error - invited user is already a member",
			setupMocks: func(repo *MockInviteRepository, enforcer *authz.MockEnforcer, teams *MockTeamDirectory, profiles *MockProfileDirectory) {
				teams.On("GetTeam", mock.Anything, teamID.String()).
					Return(&teamsdb.Group{ID: teamID}, nil)
				enforcer.On("Can", actorID.String(), teamID.String(), authz.ActionManageMembers).Return(true, nil)
				profiles.On("GetProfileByUsername", mock.Anything, "octocat").
					Return(&authdb.Profile{ID: invitedID, Username: "octocat"}, nil)
				teams.On("GetMember", mock.Anything, teamID.String(), invitedID.String()).
					Return(&teamsdb.GroupMember{GroupID: teamID, UserID: invitedID}, nil)
			},
			expectedError: apiErrors.ErrAlreadyMember,
		},
		{
			name: "Error - pending invitation already exists",
			setupMocks: func(repo *MockInviteRepository, enforcer *authz.MockEnforcer, teams *MockTeamDirectory, profiles *MockProfileDirectory) {
				teams.On("GetTeam", mock.Anything, teamID.String()).
					Return(&teamsdb.Group{ID: teamID}, nil)
				enforcer.On("Can", actorID.String(), teamID.String(), authz.ActionManageMembers).Return(true, nil)
				profiles.On("GetProfileByUsername", mock.Anything, "octocat").
					Return(&authdb.Profile{ID: invitedID, Username: "octocat"}, nil)
				teams.On("GetMember", mock.Anything, teamID.String(), invitedID.String()).
					Return(nil, apiErrors.ErrMembershipNotFound)
				repo.On("GetPendingInvitation", mock.Anything, invitesdb.GetPendingInvitationParams{
					GroupID:     teamID,
					InvitedUser: invitedID,
				}).Return(invitesdb.GroupInvitation{
					ID:          uuid.New(),
					GroupID:     teamID,
					InvitedUser: invitedID,
					Status:      invitesdb.InvitationStatusPending,
				}, nil)
			},
			expectedError: apiErrors.ErrDuplicateInvitation,
		},
		{
			name: "Error - concurrent duplicate caught at insert",
			setupMocks: func(repo *MockInviteRepository, enforcer *authz.MockEnforcer, teams *MockTeamDirectory, profiles *MockProfileDirectory) {
				teams.On("GetTeam", mock.Anything, teamID.String()).
					Return(&teamsdb.Group{ID: teamID}, nil)
				enforcer.On("Can", actorID.String(), teamID.String(), authz.ActionManageMembers).Return(true, nil)
				profiles.On("GetProfileByUsername", mock.Anything, "octocat").
					Return(&authdb.Profile{ID: invitedID, Username: "octocat"}, nil)
				teams.On("GetMember", mock.Anything, teamID.String(), invitedID.String()).
					Return(nil, apiErrors.ErrMembershipNotFound)
				repo.On("GetPendingInvitation", mock.Anything, mock.Anything).
					Return(invitesdb.GroupInvitation{}, sql.ErrNoRows)
				repo.On("CreateInvitation", mock.Anything, mock.Anything).
					Return(invitesdb.GroupInvitation{}, &pq.Error{Code: "23505"})
			},
			expectedError: apiErrors.ErrDuplicateInvitation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockInviteRepository{}
			enforcer := &authz.MockEnforcer{}
			teams := &MockTeamDirectory{}
			profiles := &MockProfileDirectory{}
			tt.setupMocks(repo, enforcer, teams, profiles)
			service := newTestInviteService(repo, enforcer, teams, profiles)

			invitation, err := service.InviteUser(context.Background(), teamID.String(), actorID.String(), "octocat")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, invitation)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, invitesdb.InvitationStatusPending, invitation.Status)
			}
			repo.AssertExpectations(t)
			enforcer.AssertExpectations(t)
			teams.AssertExpectations(t)
			profiles.AssertExpectations(t)
		})
	}
}

func TestAcceptInvitation(t *testing.T) {
	teamID := uuid.New()
	invitedID := uuid.New()
	invitationID := uuid.New()

	tests := []struct {
		name          string
		actorID       string
		status        invitesdb.InvitationStatus
		setupMocks    func(repo *MockInviteRepository, enforcer *authz.MockEnforcer)
		expectedError error
	}{
		{
			name:    "Success - membership and status change in one transaction",
			actorID: invitedID.String(),
			status:  invitesdb.InvitationStatusPending,
			setupMocks: func(repo *MockInviteRepository, enforcer *authz.MockEnforcer) {
				repo.On("AcceptInvitationTx", mock.Anything, AcceptInvitationTxParams{
					InvitationID: invitationID,
					GroupID:      teamID,
					UserID:       invitedID,
				}).Return(nil)
				enforcer.On("AddTeamRole", invitedID.String(), teamID.String(), "member").Return(nil)
			},
		},
		{
			name:          "Error - only the invited user may accept",
			actorID:       uuid.New().String(),
			status:        invitesdb.InvitationStatusPending,
			setupMocks:    func(repo *MockInviteRepository, enforcer *authz.MockEnforcer) {},
			expectedError: apiErrors.ErrForbidden,
		},
		{
			name:          "Error - invitation already decided",
			actorID:       invitedID.String(),
			status:        invitesdb.InvitationStatusDeclined,
			setupMocks:    func(repo *MockInviteRepository, enforcer *authz.MockEnforcer) {},
			expectedError: apiErrors.ErrInvitationDecided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockInviteRepository{}
			enforcer := &authz.MockEnforcer{}
			repo.On("GetInvitation", mock.Anything, invitationID).
				Return(invitesdb.GroupInvitation{
					ID:          invitationID,
					GroupID:     teamID,
					InvitedUser: invitedID,
					Status:      tt.status,
				}, nil)
			tt.setupMocks(repo, enforcer)
			service := newTestInviteService(repo, enforcer, &MockTeamDirectory{}, &MockProfileDirectory{})

			err := service.AcceptInvitation(context.Background(), invitationID.String(), tt.actorID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
			enforcer.AssertExpectations(t)
		})
	}
}

func TestRequestToJoin(t *testing.T) {
	teamID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name          string
		setupMocks    func(repo *MockInviteRepository, teams *MockTeamDirectory)
		expectedError error
	}{
		{
			name: "Success - request created against closed team",
			setupMocks: func(repo *MockInviteRepository, teams *MockTeamDirectory) {
				teams.On("GetTeam", mock.Anything, teamID.String()).
					Return(&teamsdb.Group{ID: teamID, AccessPolicy: teamsdb.AccessPolicyClosed}, nil)
				teams.On("GetMember", mock.Anything, teamID.String(), userID.String()).
					Return(nil, apiErrors.ErrMembershipNotFound)
				repo.On("CreateJoinRequest", mock.Anything, invitesdb.CreateJoinRequestParams{
					GroupID:     teamID,
					RequesterID: userID,
				}).Return(invitesdb.GroupJoinRequest{
					ID:          uuid.New(),
					GroupID:     teamID,
					RequesterID: userID,
					Status:      invitesdb.JoinRequestStatusPending,
				}, nil)
			},
		},
		{
			name: "Error - open team must be joined directly",
			setupMocks: func(repo *MockInviteRepository, teams *MockTeamDirectory) {
				teams.On("GetTeam", mock.Anything, teamID.String()).
					Return(&teamsdb.Group{ID: teamID, AccessPolicy: teamsdb.AccessPolicyOpen}, nil)
			},
			expectedError: apiErrors.ErrTeamOpen,
		},
		{
			name: "Error - duplicate pending request",
			setupMocks: func(repo *MockInviteRepository, teams *MockTeamDirectory) {
				teams.On("GetTeam", mock.Anything, teamID.String()).
					Return(&teamsdb.Group{ID: teamID, AccessPolicy: teamsdb.AccessPolicyClosed}, nil)
				teams.On("GetMember", mock.Anything, teamID.String(), userID.String()).
					Return(nil, apiErrors.ErrMembershipNotFound)
				repo.On("CreateJoinRequest", mock.Anything, mock.Anything).
					Return(invitesdb.GroupJoinRequest{}, &pq.Error{Code: "23505"})
			},
			expectedError: apiErrors.ErrDuplicateJoinRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockInviteRepository{}
			teams := &MockTeamDirectory{}
			tt.setupMocks(repo, teams)
			service := newTestInviteService(repo, &authz.MockEnforcer{}, teams, &MockProfileDirectory{})

			request, err := service.RequestToJoin(context.Background(), teamID.String(), userID.String())

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, request)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, invitesdb.JoinRequestStatusPending, request.Status)
			}
			repo.AssertExpectations(t)
			teams.AssertExpectations(t)
		})
	}
}

func TestApproveJoinRequest(t *testing.T) {
	teamID := uuid.New()
	requesterID := uuid.New()
	actorID := uuid.New()
	requestID := uuid.New()

	tests := []struct {
		name          string
		status        invitesdb.JoinRequestStatus
		setupMocks    func(repo *MockInviteRepository, enforcer *authz.MockEnforcer)
		expectedError error
	}{
		{
			name:   "Success - approval adds membership",
			status: invitesdb.JoinRequestStatusPending,
			setupMocks: func(repo *MockInviteRepository, enforcer *authz.MockEnforcer) {
				enforcer.On("Can", actorID.String(), teamID.String(), authz.ActionManageMembers).Return(true, nil)
				repo.On("ApproveJoinRequestTx", mock.Anything, ApproveJoinRequestTxParams{
					RequestID:   requestID,
					GroupID:     teamID,
					RequesterID: requesterID,
					DecidedBy:   actorID,
				}).Return(nil)
				enforcer.On("AddTeamRole", requesterID.String(), teamID.String(), "member").Return(nil)
			},
		},
		{
			name:   "Error - request already decided",
			status: invitesdb.JoinRequestStatusApproved,
			setupMocks: func(repo *MockInviteRepository, enforcer *authz.MockEnforcer) {
				enforcer.On("Can", actorID.String(), teamID.String(), authz.ActionManageMembers).Return(true, nil)
			},
			expectedError: apiErrors.ErrJoinRequestDecided,
		},
		{
			name:   "Error - plain member cannot approve",
			status: invitesdb.JoinRequestStatusPending,
			setupMocks: func(repo *MockInviteRepository, enforcer *authz.MockEnforcer) {
				enforcer.On("Can", actorID.String(), teamID.String(), authz.ActionManageMembers).Return(false, nil)
			},
			expectedError: apiErrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockInviteRepository{}
			enforcer := &authz.MockEnforcer{}
			repo.On("GetJoinRequest", mock.Anything, requestID).
				Return(invitesdb.GroupJoinRequest{
					ID:          requestID,
					GroupID:     teamID,
					RequesterID: requesterID,
					Status:      tt.status,
				}, nil)
			tt.setupMocks(repo, enforcer)
			service := newTestInviteService(repo, enforcer, &MockTeamDirectory{}, &MockProfileDirectory{})

			err := service.ApproveJoinRequest(context.Background(), requestID.String(), actorID.String())

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
			enforcer.AssertExpectations(t)
		})
	}
}

func TestCancelJoinRequestRequesterOnly(t *testing.T) {
	requestID := uuid.New()
	requesterID := uuid.New()

	repo := &MockInviteRepository{}
	repo.On("GetJoinRequest", mock.Anything, requestID).
		Return(invitesdb.GroupJoinRequest{
			ID:          requestID,
			RequesterID: requesterID,
			Status:      invitesdb.JoinRequestStatusPending,
		}, nil)
	service := newTestInviteService(repo, &authz.MockEnforcer{}, &MockTeamDirectory{}, &MockProfileDirectory{})

	err := service.CancelJoinRequest(context.Background(), requestID.String(), uuid.New().String())

	assert.ErrorIs(t, err, apiErrors.ErrForbidden)
}
