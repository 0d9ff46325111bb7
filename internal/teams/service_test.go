package teams

import (
	"context"
	"database/sql"
	"io"
	"testing"

	"github.com/byterank/byterank-backend/internal/authz"
	apiErrors "github.com/byterank/byterank-backend/internal/errors"
	teamsdb "github.com/byterank/byterank-backend/internal/teams/gen"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestTeamService(repo *MockTeamRepository, enforcer *authz.MockEnforcer) *TeamService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewTeamService(logger, repo, enforcer, nil, "team-logos")
}

type fakeResult struct {
	rows int64
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, nil }

func TestCreateTeam(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name          string
		request       CreateTeamRequest
		setupMocks    func(repo *MockTeamRepository, enforcer *authz.MockEnforcer)
		wantPolicy    teamsdb.AccessPolicy
		expectedError error
	}{
		{
			name:    "Success - defaults to closed and registers owner role",
			request: CreateTeamRequest{Name: "gophers"},
			setupMocks: func(repo *MockTeamRepository, enforcer *authz.MockEnforcer) {
				repo.On("CreateGroupWithOwnerTx", mock.Anything, mock.MatchedBy(func(arg CreateGroupWithOwnerTxParams) bool {
					return arg.Name == "gophers" && arg.OwnerID == ownerID && arg.AccessPolicy == teamsdb.AccessPolicyClosed
				})).Return(teamsdb.Group{
					ID:           uuid.New(),
					Name:         "gophers",
					OwnerID:      ownerID,
					AccessPolicy: teamsdb.AccessPolicyClosed,
				}, nil)
				enforcer.On("AddTeamRole", ownerID.String(), mock.AnythingOfType("string"), "owner").Return(nil)
			},
			wantPolicy: teamsdb.AccessPolicyClosed,
		},
		{
			name:    "Success - open team",
			request: CreateTeamRequest{Name: "gophers", AccessPolicy: "open"},
			setupMocks: func(repo *MockTeamRepository, enforcer *authz.MockEnforcer) {
				repo.On("CreateGroupWithOwnerTx", mock.Anything, mock.MatchedBy(func(arg CreateGroupWithOwnerTxParams) bool {
					return arg.AccessPolicy == teamsdb.AccessPolicyOpen
				})).Return(teamsdb.Group{
					ID:           uuid.New(),
					Name:         "gophers",
					OwnerID:      ownerID,
					AccessPolicy: teamsdb.AccessPolicyOpen,
				}, nil)
				enforcer.On("AddTeamRole", ownerID.String(), mock.AnythingOfType("string"), "owner").Return(nil)
			},
			wantPolicy: teamsdb.AccessPolicyOpen,
		},
		{
			name:    "Success - avatar set at creation",
			request: CreateTeamRequest{Name: "gophers", AvatarURL: "https://cdn.byterank.dev/logos/gophers.png"},
			setupMocks: func(repo *MockTeamRepository, enforcer *authz.MockEnforcer) {
				repo.On("CreateGroupWithOwnerTx", mock.Anything, mock.MatchedBy(func(arg CreateGroupWithOwnerTxParams) bool {
					return arg.AvatarUrl == sql.NullString{String: "https://cdn.byterank.dev/logos/gophers.png", Valid: true}
				})).Return(teamsdb.Group{
					ID:           uuid.New(),
					Name:         "gophers",
					AvatarUrl:    sql.NullString{String: "https://cdn.byterank.dev/logos/gophers.png", Valid: true},
					OwnerID:      ownerID,
					AccessPolicy: teamsdb.AccessPolicyClosed,
				}, nil)
				enforcer.On("AddTeamRole", ownerID.String(), mock.AnythingOfType("string"), "owner").Return(nil)
			},
			wantPolicy: teamsdb.AccessPolicyClosed,
		},
		{
			name:    "Error - owner profile missing",
			request: CreateTeamRequest{Name: "gophers"},
			setupMocks: func(repo *MockTeamRepository, enforcer *authz.MockEnforcer) {
				repo.On("CreateGroupWithOwnerTx", mock.Anything, mock.Anything).
					Return(teamsdb.Group{}, &pq.Error{Code: "23503"})
			},
			expectedError: apiErrors.ErrProfileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockTeamRepository{}
			enforcer := &authz.MockEnforcer{}
			tt.setupMocks(repo, enforcer)
			service := newTestTeamService(repo, enforcer)

			group, err := service.CreateTeam(context.Background(), ownerID.String(), tt.request)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, group)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantPolicy, group.AccessPolicy)
			}
			repo.AssertExpectations(t)
			enforcer.AssertExpectations(t)
		})
	}
}

func TestJoinTeam(t *testing.T) {
	teamID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name          string
		setupMocks    func(repo *MockTeamRepository, enforcer *authz.MockEnforcer)
		expectedError error
	}{
		{
			name: "Success - open team",
			setupMocks: func(repo *MockTeamRepository, enforcer *authz.MockEnforcer) {
				repo.On("GetGroup", mock.Anything, teamID).
					Return(teamsdb.Group{ID: teamID, AccessPolicy: teamsdb.AccessPolicyOpen}, nil)
				repo.On("AddGroupMember", mock.Anything, teamsdb.AddGroupMemberParams{
					GroupID: teamID,
					UserID:  userID,
					Role:    teamsdb.MemberRoleMember,
				}).Return(nil)
				enforcer.On("AddTeamRole", userID.String(), teamID.String(), "member").Return(nil)
			},
		},
		{
			name: "Success - joining twice is a no-op",
			setupMocks: func(repo *MockTeamRepository, enforcer *authz.MockEnforcer) {
				repo.On("GetGroup", mock.Anything, teamID).
					Return(teamsdb.Group{ID: teamID, AccessPolicy: teamsdb.AccessPolicyOpen}, nil)
				repo.On("AddGroupMember", mock.Anything, mock.Anything).
					Return(&pq.Error{Code: "23505"})
			},
		},
		{
			name: "Error - closed team rejects direct join",
			setupMocks: func(repo *MockTeamRepository, enforcer *authz.MockEnforcer) {
				repo.On("GetGroup", mock.Anything, teamID).
					Return(teamsdb.Group{ID: teamID, AccessPolicy: teamsdb.AccessPolicyClosed}, nil)
			},
			expectedError: apiErrors.ErrTeamClosed,
		},
		{
			name: "Error - team does not exist",
			setupMocks: func(repo *MockTeamRepository, enforcer *authz.MockEnforcer) {
				repo.On("GetGroup", mock.Anything, teamID).
					Return(teamsdb.Group{}, sql.ErrNoRows)
			},
			expectedError: apiErrors.ErrTeamNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockTeamRepository{}
			enforcer := &authz.MockEnforcer{}
			tt.setupMocks(repo, enforcer)
			service := newTestTeamService(repo, enforcer)

			err := service.JoinTeam(context.Background(), teamID.String(), userID.String())

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

func TestLeaveTeam(t *testing.T) {
	teamID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name          string
		setupMocks    func(repo *MockTeamRepository, enforcer *authz.MockEnforcer)
		expectedError error
	}{
		{
			name: "Success - membership removed in one transaction",
			setupMocks: func(repo *MockTeamRepository, enforcer *authz.MockEnforcer) {
				repo.On("LeaveGroupTx", mock.Anything, LeaveGroupTxParams{GroupID: teamID, UserID: userID}).
					Return(nil)
				enforcer.On("RemoveUserFromTeam", userID.String(), teamID.String()).Return(nil)
			},
		},
		{
			name: "Error - last owner cannot leave",
			setupMocks: func(repo *MockTeamRepository, enforcer *authz.MockEnforcer) {
				repo.On("LeaveGroupTx", mock.Anything, LeaveGroupTxParams{GroupID: teamID, UserID: userID}).
					Return(apiErrors.ErrLastOwner)
			},
			expectedError: apiErrors.ErrLastOwner,
		},
		{
			name: "Error - not a member",
			setupMocks: func(repo *MockTeamRepository, enforcer *authz.MockEnforcer) {
				repo.On("LeaveGroupTx", mock.Anything, mock.Anything).
					Return(sql.ErrNoRows)
			},
			expectedError: apiErrors.ErrMembershipNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockTeamRepository{}
			enforcer := &authz.MockEnforcer{}
			tt.setupMocks(repo, enforcer)
			service := newTestTeamService(repo, enforcer)

			err := service.LeaveTeam(context.Background(), teamID.String(), userID.String())

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

func TestRemoveMember(t *testing.T) {
	teamID := uuid.New()
	actorID := uuid.New()
	targetID := uuid.New()

	tests := []struct {
		name          string
		setupMocks    func(repo *MockTeamRepository, enforcer *authz.MockEnforcer)
		expectedError error
	}{
		{
			name: "Success - admin removes member",
			setupMocks: func(repo *MockTeamRepository, enforcer *authz.MockEnforcer) {
				enforcer.On("Can", actorID.String(), teamID.String(), authz.ActionManageMembers).Return(true, nil)
				repo.On("GetGroupMember", mock.Anything, teamsdb.GetGroupMemberParams{GroupID: teamID, UserID: actorID}).
					Return(teamsdb.GroupMember{Role: teamsdb.MemberRoleAdmin}, nil)
				repo.On("GetGroupMember", mock.Anything, teamsdb.GetGroupMemberParams{GroupID: teamID, UserID: targetID}).
					Return(teamsdb.GroupMember{Role: teamsdb.MemberRoleMember}, nil)
				repo.On("RemoveGroupMember", mock.Anything, teamsdb.RemoveGroupMemberParams{GroupID: teamID, UserID: targetID}).
					Return(fakeResult{rows: 1}, nil)
				enforcer.On("RemoveUserFromTeam", targetID.String(), teamID.String()).Return(nil)
			},
		},
		{
			name: "Error - admin cannot remove another admin",
			setupMocks: func(repo *MockTeamRepository, enforcer *authz.MockEnforcer) {
				enforcer.On("Can", actorID.String(), teamID.String(), authz.ActionManageMembers).Return(true, nil)
				repo.On("GetGroupMember", mock.Anything, teamsdb.GetGroupMemberParams{GroupID: teamID, UserID: actorID}).
					Return(teamsdb.GroupMember{Role: teamsdb.MemberRoleAdmin}, nil)
				repo.On("GetGroupMember", mock.Anything, teamsdb.GetGroupMemberParams{GroupID: teamID, UserID: targetID}).
					Return(teamsdb.GroupMember{Role: teamsdb.MemberRoleAdmin}, nil)
			},
			expectedError: apiErrors.ErrForbidden,
		},
		{
			name: "Error - plain member lacks permission",
			setupMocks: func(repo *MockTeamRepository, enforcer *authz.MockEnforcer) {
				enforcer.On("Can", actorID.String(), teamID.String(), authz.ActionManageMembers).Return(false, nil)
			},
			expectedError: apiErrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockTeamRepository{}
			enforcer := &authz.MockEnforcer{}
			tt.setupMocks(repo, enforcer)
			service := newTestTeamService(repo, enforcer)

			err := service.RemoveMember(context.Background(), teamID.String(), actorID.String(), targetID.String())

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

func TestUpdateTeamRequiresManageTeam(t *testing.T) {
	teamID := uuid.New()
	actorID := uuid.New()

	repo := &MockTeamRepository{}
	enforcer := &authz.MockEnforcer{}
	enforcer.On("Can", actorID.String(), teamID.String(), authz.ActionManageTeam).Return(false, nil)
	service := newTestTeamService(repo, enforcer)

	_, err := service.UpdateTeam(context.Background(), teamID.String(), actorID.String(), UpdateTeamRequest{
		Name:         "renamed",
		AccessPolicy: "open",
	})

	assert.ErrorIs(t, err, apiErrors.ErrForbidden)
	enforcer.AssertExpectations(t)
}

func TestDeleteTeamClearsAuthorizer(t *testing.T) {
	teamID := uuid.New()
	actorID := uuid.New()

	repo := &MockTeamRepository{}
	enforcer := &authz.MockEnforcer{}
	enforcer.On("Can", actorID.String(), teamID.String(), authz.ActionManageTeam).Return(true, nil)
	repo.On("GetGroup", mock.Anything, teamID).Return(teamsdb.Group{ID: teamID}, nil)
	repo.On("DeleteGroup", mock.Anything, teamID).Return(nil)
	enforcer.On("DeleteTeam", teamID.String()).Return(nil)
	service := newTestTeamService(repo, enforcer)

	err := service.DeleteTeam(context.Background(), teamID.String(), actorID.String())

	assert.NoError(t, err)
	repo.AssertExpectations(t)
	enforcer.AssertExpectations(t)
}
