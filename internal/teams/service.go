package teams

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"path"

	"github.com/byterank/byterank-backend/internal/authz"
	apiErrors "github.com/byterank/byterank-backend/internal/errors"
	teamsdb "github.com/byterank/byterank-backend/internal/teams/gen"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// LogoUploader stores a team logo and returns its public URL.
type LogoUploader interface {
	Upload(ctx context.Context, bucket, object, contentType string, body io.Reader) (string, error)
}

// roleRank orders member roles for removal checks. A member may only be
// removed by someone of strictly higher rank.
var roleRank = map[teamsdb.MemberRole]int{
	teamsdb.MemberRoleOwner:  3,
	teamsdb.MemberRoleAdmin:  2,
	teamsdb.MemberRoleMember: 1,
}

// TeamService provides business logic for team management: lifecycle,
// membership and the team leaderboard.
type TeamService struct {
	logger     *logrus.Logger
	teamRepo   Repository
	authorizer authz.Authorizer
	uploader   LogoUploader
	logoBucket string
}

// NewTeamService creates a new TeamService instance with the provided dependencies.
func NewTeamService(logger *logrus.Logger, teamRepo Repository, authorizer authz.Authorizer, uploader LogoUploader, logoBucket string) *TeamService {
	return &TeamService{
		logger:     logger,
		teamRepo:   teamRepo,
		authorizer: authorizer,
		uploader:   uploader,
		logoBucket: logoBucket,
	}
}

// CreateTeam creates a team with the caller as owner. The group row and the
// owner membership are written in one transaction, then the owner role is
// registered with the authorizer.
func (s *TeamService) CreateTeam(ctx context.Context, ownerID string, req CreateTeamRequest) (*teamsdb.Group, error) {
	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, apiErrors.ErrProfileNotFound
	}

	policy := teamsdb.AccessPolicyClosed
	if req.AccessPolicy == string(teamsdb.AccessPolicyOpen) {
		policy = teamsdb.AccessPolicyOpen
	}

	group, err := s.teamRepo.CreateGroupWithOwnerTx(ctx, CreateGroupWithOwnerTxParams{
		Name:         req.Name,
		Description:  toNullString(req.Description),
		AvatarUrl:    toNullString(req.AvatarURL),
		OwnerID:      owner,
		AccessPolicy: policy,
	})
	if err != nil {
		if apiErrors.IsForeignKeyViolation(err) {
			return nil, apiErrors.ErrProfileNotFound
		}
		s.logger.WithFields(logrus.Fields{
			"ownerID": ownerID,
			"name":    req.Name,
			"error":   err.Error(),
		}).Error("Failed to create team")
		return nil, err
	}

	if err := s.authorizer.AddTeamRole(ownerID, group.ID.String(), string(teamsdb.MemberRoleOwner)); err != nil {
		// Membership rows are the source of truth; the enforcer is resynced at
		// startup, so a failed grant is logged rather than unwinding the team.
		s.logger.WithFields(logrus.Fields{
			"teamID": group.ID.String(),
			"userID": ownerID,
			"error":  err.Error(),
		}).Error("Failed to register owner role with authorizer")
	}

	s.logger.WithFields(logrus.Fields{
		"teamID":  group.ID.String(),
		"ownerID": ownerID,
		"name":    group.Name,
	}).Info("Team created")
	return &group, nil
}

// GetTeam returns a single team by id.
func (s *TeamService) GetTeam(ctx context.Context, teamID string) (*teamsdb.Group, error) {
	id, err := uuid.Parse(teamID)
	if err != nil {
		return nil, apiErrors.ErrTeamNotFound
	}
	group, err := s.teamRepo.GetGroup(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apiErrors.ErrTeamNotFound
		}
		return nil, err
	}
	return &group, nil
}

// GetMember returns the membership row for a user in a team.
func (s *TeamService) GetMember(ctx context.Context, teamID, userID string) (*teamsdb.GroupMember, error) {
	tid, err := uuid.Parse(teamID)
	if err != nil {
		return nil, apiErrors.ErrTeamNotFound
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, apiErrors.ErrMembershipNotFound
	}
	member, err := s.teamRepo.GetGroupMember(ctx, teamsdb.GetGroupMemberParams{
		GroupID: tid,
		UserID:  uid,
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apiErrors.ErrMembershipNotFound
		}
		return nil, err
	}
	return &member, nil
}

// ListTeams returns every team with aggregate member count and commit total,
// ordered for the team leaderboard.
func (s *TeamService) ListTeams(ctx context.Context) ([]teamsdb.ListGroupsRow, error) {
	groups, err := s.teamRepo.ListGroups(ctx)
	if err != nil {
		s.logger.WithField("error", err.Error()).Error("Failed to list teams")
		return nil, err
	}
	return groups, nil
}

// ListTeamsForUser returns the teams the user belongs to, with the user's role.
func (s *TeamService) ListTeamsForUser(ctx context.Context, userID string) ([]teamsdb.ListGroupsForUserRow, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apiErrors.ErrProfileNotFound
	}
	groups, err := s.teamRepo.ListGroupsForUser(ctx, id)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"userID": userID,
			"error":  err.Error(),
		}).Error("Failed to list teams for user")
		return nil, err
	}
	return groups, nil
}

// UpdateTeam updates a team's name, description and access policy. Requires
// the manage_team permission, held by owners only.
func (s *TeamService) UpdateTeam(ctx context.Context, teamID, actorID string, req UpdateTeamRequest) (*teamsdb.Group, error) {
	id, err := uuid.Parse(teamID)
	if err != nil {
		return nil, apiErrors.ErrTeamNotFound
	}

	allowed, err := s.authorizer.Can(actorID, teamID, authz.ActionManageTeam)
	if err != nil {
		return nil, err
	}
	if !allowed {
		s.logger.WithFields(logrus.Fields{
			"teamID":  teamID,
			"actorID": actorID,
		}).Warn("Team update rejected: insufficient permissions")
		return nil, apiErrors.ErrForbidden
	}

	group, err := s.teamRepo.UpdateGroup(ctx, teamsdb.UpdateGroupParams{
		ID:           id,
		Name:         req.Name,
		Description:  toNullString(req.Description),
		AccessPolicy: teamsdb.AccessPolicy(req.AccessPolicy),
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apiErrors.ErrTeamNotFound
		}
		s.logger.WithFields(logrus.Fields{
			"teamID": teamID,
			"error":  err.Error(),
		}).Error("Failed to update team")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"teamID":  teamID,
		"actorID": actorID,
	}).Info("Team updated")
	return &group, nil
}

// DeleteTeam removes a team and all dependent rows (memberships, invitations
// and join requests cascade). Requires the manage_team permission.
func (s *TeamService) DeleteTeam(ctx context.Context, teamID, actorID string) error {
	id, err := uuid.Parse(teamID)
	if err != nil {
		return apiErrors.ErrTeamNotFound
	}

	allowed, err := s.authorizer.Can(actorID, teamID, authz.ActionManageTeam)
	if err != nil {
		return err
	}
	if !allowed {
		return apiErrors.ErrForbidden
	}

	if _, err := s.teamRepo.GetGroup(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return apiErrors.ErrTeamNotFound
		}
		return err
	}

	if err := s.teamRepo.DeleteGroup(ctx, id); err != nil {
		s.logger.WithFields(logrus.Fields{
			"teamID": teamID,
			"error":  err.Error(),
		}).Error("Failed to delete team")
		return err
	}

	if err := s.authorizer.DeleteTeam(teamID); err != nil {
		s.logger.WithFields(logrus.Fields{
			"teamID": teamID,
			"error":  err.Error(),
		}).Error("Failed to clear authorizer policies for deleted team")
	}

	s.logger.WithFields(logrus.Fields{
		"teamID":  teamID,
		"actorID": actorID,
	}).Info("Team deleted")
	return nil
}

// JoinTeam adds the caller to an open team as a member. Closed teams reject
// direct joins; joining a team you already belong to is a benign no-op.
func (s *TeamService) JoinTeam(ctx context.Context, teamID, userID string) error {
	tid, err := uuid.Parse(teamID)
	if err != nil {
		return apiErrors.ErrTeamNotFound
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return apiErrors.ErrProfileNotFound
	}

	group, err := s.teamRepo.GetGroup(ctx, tid)
	if err != nil {
		if err == sql.ErrNoRows {
			return apiErrors.ErrTeamNotFound
		}
		return err
	}
	if group.AccessPolicy != teamsdb.AccessPolicyOpen {
		s.logger.WithFields(logrus.Fields{
			"teamID": teamID,
			"userID": userID,
		}).Warn("Direct join rejected: team is closed")
		return apiErrors.ErrTeamClosed
	}

	err = s.teamRepo.AddGroupMember(ctx, teamsdb.AddGroupMemberParams{
		GroupID: tid,
		UserID:  uid,
		Role:    teamsdb.MemberRoleMember,
	})
	if err != nil {
		if apiErrors.IsUniqueViolation(err) {
			// Already a member.
			return nil
		}
		if apiErrors.IsForeignKeyViolation(err) {
			return apiErrors.ErrProfileNotFound
		}
		s.logger.WithFields(logrus.Fields{
			"teamID": teamID,
			"userID": userID,
			"error":  err.Error(),
		}).Error("Failed to join team")
		return err
	}

	if err := s.authorizer.AddTeamRole(userID, teamID, string(teamsdb.MemberRoleMember)); err != nil {
		s.logger.WithFields(logrus.Fields{
			"teamID": teamID,
			"userID": userID,
			"error":  err.Error(),
		}).Error("Failed to register member role with authorizer")
	}

	s.logger.WithFields(logrus.Fields{
		"teamID": teamID,
		"userID": userID,
	}).Info("User joined open team")
	return nil
}

// LeaveTeam removes the caller from a team. The last remaining owner cannot
// leave; the team must be deleted or another owner appointed first.
func (s *TeamService) LeaveTeam(ctx context.Context, teamID, userID string) error {
	tid, err := uuid.Parse(teamID)
	if err != nil {
		return apiErrors.ErrTeamNotFound
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return apiErrors.ErrProfileNotFound
	}

	// The membership delete and the remaining-owner count run in one
	// transaction so two owners leaving at once cannot both slip past the
	// last-owner check.
	if err := s.teamRepo.LeaveGroupTx(ctx, LeaveGroupTxParams{
		GroupID: tid,
		UserID:  uid,
	}); err != nil {
		if err == sql.ErrNoRows {
			return apiErrors.ErrMembershipNotFound
		}
		if err == apiErrors.ErrLastOwner {
			s.logger.WithFields(logrus.Fields{
				"teamID": teamID,
				"userID": userID,
			}).Warn("Leave rejected: user is the last owner")
			return err
		}
		s.logger.WithFields(logrus.Fields{
			"teamID": teamID,
			"userID": userID,
			"error":  err.Error(),
		}).Error("Failed to leave team")
		return err
	}

	if err := s.authorizer.RemoveUserFromTeam(userID, teamID); err != nil {
		s.logger.WithFields(logrus.Fields{
			"teamID": teamID,
			"userID": userID,
			"error":  err.Error(),
		}).Error("Failed to revoke team role in authorizer")
	}

	s.logger.WithFields(logrus.Fields{
		"teamID": teamID,
		"userID": userID,
	}).Info("User left team")
	return nil
}

// RemoveMember removes another user from a team. Requires the manage_members
// permission, and the target must hold a strictly lower role than the actor.
func (s *TeamService) RemoveMember(ctx context.Context, teamID, actorID, targetID string) error {
	tid, err := uuid.Parse(teamID)
	if err != nil {
		return apiErrors.ErrTeamNotFound
	}
	target, err := uuid.Parse(targetID)
	if err != nil {
		return apiErrors.ErrMembershipNotFound
	}
	if actorID == targetID {
		return s.LeaveTeam(ctx, teamID, actorID)
	}

	allowed, err := s.authorizer.Can(actorID, teamID, authz.ActionManageMembers)
	if err != nil {
		return err
	}
	if !allowed {
		return apiErrors.ErrForbidden
	}

	actorMember, err := s.GetMember(ctx, teamID, actorID)
	if err != nil {
		return err
	}
	targetMember, err := s.teamRepo.GetGroupMember(ctx, teamsdb.GetGroupMemberParams{
		GroupID: tid,
		UserID:  target,
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return apiErrors.ErrMembershipNotFound
		}
		return err
	}
	if roleRank[targetMember.Role] >= roleRank[actorMember.Role] {
		s.logger.WithFields(logrus.Fields{
			"teamID":     teamID,
			"actorID":    actorID,
			"targetID":   targetID,
			"actorRole":  string(actorMember.Role),
			"targetRole": string(targetMember.Role),
		}).Warn("Member removal rejected: target role is not below actor role")
		return apiErrors.ErrForbidden
	}

	if err := s.removeMembership(ctx, tid, target); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"teamID":   teamID,
		"actorID":  actorID,
		"targetID": targetID,
	}).Info("Member removed from team")
	return nil
}

// removeMembership deletes a membership row and the matching authorizer
// grouping policy.
func (s *TeamService) removeMembership(ctx context.Context, teamID, userID uuid.UUID) error {
	res, err := s.teamRepo.RemoveGroupMember(ctx, teamsdb.RemoveGroupMemberParams{
		GroupID: teamID,
		UserID:  userID,
	})
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"teamID": teamID.String(),
			"userID": userID.String(),
			"error":  err.Error(),
		}).Error("Failed to remove group member")
		return err
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return apiErrors.ErrMembershipNotFound
	}

	if err := s.authorizer.RemoveUserFromTeam(userID.String(), teamID.String()); err != nil {
		s.logger.WithFields(logrus.Fields{
			"teamID": teamID.String(),
			"userID": userID.String(),
			"error":  err.Error(),
		}).Error("Failed to revoke team role in authorizer")
	}
	return nil
}

// ListMembers returns the team roster ordered by commit count.
func (s *TeamService) ListMembers(ctx context.Context, teamID string) ([]teamsdb.ListGroupMembersRow, error) {
	id, err := uuid.Parse(teamID)
	if err != nil {
		return nil, apiErrors.ErrTeamNotFound
	}
	if _, err := s.teamRepo.GetGroup(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apiErrors.ErrTeamNotFound
		}
		return nil, err
	}
	members, err := s.teamRepo.ListGroupMembers(ctx, id)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"teamID": teamID,
			"error":  err.Error(),
		}).Error("Failed to list team members")
		return nil, err
	}
	return members, nil
}

// UploadLogo stores a new team logo and points the team at its public URL.
// Requires the manage_team permission.
func (s *TeamService) UploadLogo(ctx context.Context, teamID, actorID, filename, contentType string, body io.Reader) (string, error) {
	id, err := uuid.Parse(teamID)
	if err != nil {
		return "", apiErrors.ErrTeamNotFound
	}

	allowed, err := s.authorizer.Can(actorID, teamID, authz.ActionManageTeam)
	if err != nil {
		return "", err
	}
	if !allowed {
		return "", apiErrors.ErrForbidden
	}

	object := fmt.Sprintf("%s/%s%s", teamID, uuid.New().String(), path.Ext(filename))
	url, err := s.uploader.Upload(ctx, s.logoBucket, object, contentType, body)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"teamID": teamID,
			"error":  err.Error(),
		}).Error("Failed to upload team logo")
		return "", err
	}

	if err := s.teamRepo.UpdateGroupAvatar(ctx, teamsdb.UpdateGroupAvatarParams{
		ID:        id,
		AvatarUrl: sql.NullString{String: url, Valid: true},
	}); err != nil {
		s.logger.WithFields(logrus.Fields{
			"teamID": teamID,
			"error":  err.Error(),
		}).Error("Failed to store team logo URL")
		return "", err
	}

	s.logger.WithFields(logrus.Fields{
		"teamID":  teamID,
		"actorID": actorID,
	}).Info("Team logo updated")
	return url, nil
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
