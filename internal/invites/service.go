package invites

import (
	"context"
	"database/sql"

	"github.com/byterank/byterank-backend/internal/authz"
	apiErrors "github.com/byterank/byterank-backend/internal/errors"
	invitesdb "github.com/byterank/byterank-backend/internal/invites/gen"
	teamsdb "github.com/byterank/byterank-backend/internal/teams/gen"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// InviteService provides business logic for the two paths into a closed team:
// invitations issued by admins and join requests raised by users.
type InviteService struct {
	logger     *logrus.Logger
	inviteRepo Repository
	authorizer authz.Authorizer
	teams      TeamDirectory
	profiles   ProfileDirectory
}

// NewInviteService creates a new InviteService instance with the provided dependencies.
func NewInviteService(logger *logrus.Logger, inviteRepo Repository, authorizer authz.Authorizer, teams TeamDirectory, profiles ProfileDirectory) *InviteService {
	return &InviteService{
		logger:     logger,
		inviteRepo: inviteRepo,
		authorizer: authorizer,
		teams:      teams,
		profiles:   profiles,
	}
}

// InviteUser creates a pending invitation for the named user. Requires the
// manage_members permission on the team.
func (s *InviteService) InviteUser(ctx context.Context, teamID, actorID, username string) (*invitesdb.GroupInvitation, error) {
	team, err := s.teams.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.authorizer.Can(actorID, teamID, authz.ActionManageMembers)
	if err != nil {
		return nil, err
	}
	if !allowed {
		s.logger.WithFields(logrus.Fields{
			"teamID":  teamID,
			"actorID": actorID,
		}).Warn("Invitation rejected: insufficient permissions")
		return nil, apiErrors.ErrForbidden
	}

	profile, err := s.profiles.GetProfileByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	_, err = s.teams.GetMember(ctx, teamID, profile.ID.String())
	if err == nil {
		return nil, apiErrors.ErrAlreadyMember
	}
	if err != apiErrors.ErrMembershipNotFound {
		return nil, err
	}

	// Pending invitation already outstanding? A declined or accepted one does
	// not block re-inviting.
	_, err = s.inviteRepo.GetPendingInvitation(ctx, invitesdb.GetPendingInvitationParams{
		GroupID:     team.ID,
		InvitedUser: profile.ID,
	})
	if err == nil {
		s.logger.WithFields(logrus.Fields{
			"teamID":   teamID,
			"username": username,
		}).Warn("Invitation rejected: pending invitation already exists")
		return nil, apiErrors.ErrDuplicateInvitation
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	actor, err := uuid.Parse(actorID)
	if err != nil {
		return nil, apiErrors.ErrProfileNotFound
	}
	invitation, err := s.inviteRepo.CreateInvitation(ctx, invitesdb.CreateInvitationParams{
		GroupID:     team.ID,
		CreatedBy:   actor,
		InvitedUser: profile.ID,
	})
	if err != nil {
		if apiErrors.IsUniqueViolation(err) {
			return nil, apiErrors.ErrDuplicateInvitation
		}
		if apiErrors.IsForeignKeyViolation(err) {
			return nil, apiErrors.ErrProfileNotFound
		}
		s.logger.WithFields(logrus.Fields{
			"teamID":   teamID,
			"username": username,
			"error":    err.Error(),
		}).Error("Failed to create invitation")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"invitationID": invitation.ID.String(),
		"teamID":       teamID,
		"invitedUser":  profile.ID.String(),
	}).Info("Invitation created")
	return &invitation, nil
}

// AcceptInvitation turns a pending invitation into a membership. Only the
// invited user may accept; the status flip and the membership insert happen
// in one transaction.
func (s *InviteService) AcceptInvitation(ctx context.Context, invitationID, actorID string) error {
	invitation, err := s.getInvitation(ctx, invitationID)
	if err != nil {
		return err
	}
	if invitation.InvitedUser.String() != actorID {
		return apiErrors.ErrForbidden
	}
	if invitation.Status != invitesdb.InvitationStatusPending {
		return apiErrors.ErrInvitationDecided
	}

	if err := s.inviteRepo.AcceptInvitationTx(ctx, AcceptInvitationTxParams{
		InvitationID: invitation.ID,
		GroupID:      invitation.GroupID,
		UserID:       invitation.InvitedUser,
	}); err != nil {
		s.logger.WithFields(logrus.Fields{
			"invitationID": invitationID,
			"error":        err.Error(),
		}).Error("Failed to accept invitation")
		return err
	}

	if err := s.authorizer.AddTeamRole(actorID, invitation.GroupID.String(), string(invitesdb.MemberRoleMember)); err != nil {
		s.logger.WithFields(logrus.Fields{
			"teamID": invitation.GroupID.String(),
			"userID": actorID,
			"error":  err.Error(),
		}).Error("Failed to register member role with authorizer")
	}

	s.logger.WithFields(logrus.Fields{
		"invitationID": invitationID,
		"teamID":       invitation.GroupID.String(),
		"userID":       actorID,
	}).Info("Invitation accepted")
	return nil
}

// DeclineInvitation marks a pending invitation declined. Only the invited
// user may decline.
func (s *InviteService) DeclineInvitation(ctx context.Context, invitationID, actorID string) error {
	invitation, err := s.getInvitation(ctx, invitationID)
	if err != nil {
		return err
	}
	if invitation.InvitedUser.String() != actorID {
		return apiErrors.ErrForbidden
	}
	if invitation.Status != invitesdb.InvitationStatusPending {
		return apiErrors.ErrInvitationDecided
	}

	if _, err := s.inviteRepo.UpdateInvitationStatus(ctx, invitesdb.UpdateInvitationStatusParams{
		ID:     invitation.ID,
		Status: invitesdb.InvitationStatusDeclined,
	}); err != nil {
		s.logger.WithFields(logrus.Fields{
			"invitationID": invitationID,
			"error":        err.Error(),
		}).Error("Failed to decline invitation")
		return err
	}

	s.logger.WithField("invitationID", invitationID).Info("Invitation declined")
	return nil
}

// CancelInvitation withdraws a pending invitation. Requires the
// manage_members permission on the team.
func (s *InviteService) CancelInvitation(ctx context.Context, invitationID, actorID string) error {
	invitation, err := s.getInvitation(ctx, invitationID)
	if err != nil {
		return err
	}

	allowed, err := s.authorizer.Can(actorID, invitation.GroupID.String(), authz.ActionManageMembers)
	if err != nil {
		return err
	}
	if !allowed {
		return apiErrors.ErrForbidden
	}
	if invitation.Status != invitesdb.InvitationStatusPending {
		return apiErrors.ErrInvitationDecided
	}

	if err := s.inviteRepo.DeleteInvitation(ctx, invitation.ID); err != nil {
		s.logger.WithFields(logrus.Fields{
			"invitationID": invitationID,
			"error":        err.Error(),
		}).Error("Failed to cancel invitation")
		return err
	}

	s.logger.WithField("invitationID", invitationID).Info("Invitation cancelled")
	return nil
}

// ListTeamInvitations returns every invitation for a team. Requires the
// manage_members permission.
func (s *InviteService) ListTeamInvitations(ctx context.Context, teamID, actorID string) ([]invitesdb.ListInvitationsForGroupRow, error) {
	team, err := s.teams.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	allowed, err := s.authorizer.Can(actorID, teamID, authz.ActionManageMembers)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apiErrors.ErrForbidden
	}
	return s.inviteRepo.ListInvitationsForGroup(ctx, team.ID)
}

// ListMyInvitations returns every invitation addressed to the user.
func (s *InviteService) ListMyInvitations(ctx context.Context, userID string) ([]invitesdb.ListInvitationsForUserRow, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apiErrors.ErrProfileNotFound
	}
	return s.inviteRepo.ListInvitationsForUser(ctx, id)
}

// RequestToJoin creates a pending join request against a closed team. Open
// teams are joined directly instead.
func (s *InviteService) RequestToJoin(ctx context.Context, teamID, userID string) (*invitesdb.GroupJoinRequest, error) {
	team, err := s.teams.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.AccessPolicy == teamsdb.AccessPolicyOpen {
		s.logger.WithFields(logrus.Fields{
			"teamID": teamID,
			"userID": userID,
		}).Warn("Join request rejected: team is open, join directly")
		return nil, apiErrors.ErrTeamOpen
	}

	_, err = s.teams.GetMember(ctx, teamID, userID)
	if err == nil {
		return nil, apiErrors.ErrAlreadyMember
	}
	if err != apiErrors.ErrMembershipNotFound {
		return nil, err
	}

	requester, err := uuid.Parse(userID)
	if err != nil {
		return nil, apiErrors.ErrProfileNotFound
	}
	request, err := s.inviteRepo.CreateJoinRequest(ctx, invitesdb.CreateJoinRequestParams{
		GroupID:     team.ID,
		RequesterID: requester,
	})
	if err != nil {
		if apiErrors.IsUniqueViolation(err) {
			return nil, apiErrors.ErrDuplicateJoinRequest
		}
		if apiErrors.IsForeignKeyViolation(err) {
			return nil, apiErrors.ErrProfileNotFound
		}
		s.logger.WithFields(logrus.Fields{
			"teamID": teamID,
			"userID": userID,
			"error":  err.Error(),
		}).Error("Failed to create join request")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"requestID": request.ID.String(),
		"teamID":    teamID,
		"userID":    userID,
	}).Info("Join request created")
	return &request, nil
}

// ApproveJoinRequest turns a pending join request into a membership. Requires
// the manage_members permission; the status flip and the membership insert
// happen in one transaction.
func (s *InviteService) ApproveJoinRequest(ctx context.Context, requestID, actorID string) error {
	request, err := s.getJoinRequest(ctx, requestID)
	if err != nil {
		return err
	}

	allowed, err := s.authorizer.Can(actorID, request.GroupID.String(), authz.ActionManageMembers)
	if err != nil {
		return err
	}
	if !allowed {
		return apiErrors.ErrForbidden
	}
	if request.Status != invitesdb.JoinRequestStatusPending {
		return apiErrors.ErrJoinRequestDecided
	}

	actor, err := uuid.Parse(actorID)
	if err != nil {
		return apiErrors.ErrProfileNotFound
	}
	if err := s.inviteRepo.ApproveJoinRequestTx(ctx, ApproveJoinRequestTxParams{
		RequestID:   request.ID,
		GroupID:     request.GroupID,
		RequesterID: request.RequesterID,
		DecidedBy:   actor,
	}); err != nil {
		s.logger.WithFields(logrus.Fields{
			"requestID": requestID,
			"error":     err.Error(),
		}).Error("Failed to approve join request")
		return err
	}

	if err := s.authorizer.AddTeamRole(request.RequesterID.String(), request.GroupID.String(), string(invitesdb.MemberRoleMember)); err != nil {
		s.logger.WithFields(logrus.Fields{
			"teamID": request.GroupID.String(),
			"userID": request.RequesterID.String(),
			"error":  err.Error(),
		}).Error("Failed to register member role with authorizer")
	}

	s.logger.WithFields(logrus.Fields{
		"requestID": requestID,
		"teamID":    request.GroupID.String(),
		"actorID":   actorID,
	}).Info("Join request approved")
	return nil
}

// RejectJoinRequest marks a pending join request rejected. Requires the
// manage_members permission.
func (s *InviteService) RejectJoinRequest(ctx context.Context, requestID, actorID string) error {
	request, err := s.getJoinRequest(ctx, requestID)
	if err != nil {
		return err
	}

	allowed, err := s.authorizer.Can(actorID, request.GroupID.String(), authz.ActionManageMembers)
	if err != nil {
		return err
	}
	if !allowed {
		return apiErrors.ErrForbidden
	}
	if request.Status != invitesdb.JoinRequestStatusPending {
		return apiErrors.ErrJoinRequestDecided
	}

	actor, err := uuid.Parse(actorID)
	if err != nil {
		return apiErrors.ErrProfileNotFound
	}
	if _, err := s.inviteRepo.UpdateJoinRequestStatus(ctx, invitesdb.UpdateJoinRequestStatusParams{
		ID:        request.ID,
		Status:    invitesdb.JoinRequestStatusRejected,
		DecidedBy: uuid.NullUUID{UUID: actor, Valid: true},
	}); err != nil {
		s.logger.WithFields(logrus.Fields{
			"requestID": requestID,
			"error":     err.Error(),
		}).Error("Failed to reject join request")
		return err
	}

	s.logger.WithField("requestID", requestID).Info("Join request rejected")
	return nil
}

// CancelJoinRequest withdraws a pending join request. Only the requester may
// cancel.
func (s *InviteService) CancelJoinRequest(ctx context.Context, requestID, actorID string) error {
	request, err := s.getJoinRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request.RequesterID.String() != actorID {
		return apiErrors.ErrForbidden
	}
	if request.Status != invitesdb.JoinRequestStatusPending {
		return apiErrors.ErrJoinRequestDecided
	}

	if err := s.inviteRepo.DeleteJoinRequest(ctx, request.ID); err != nil {
		s.logger.WithFields(logrus.Fields{
			"requestID": requestID,
			"error":     err.Error(),
		}).Error("Failed to cancel join request")
		return err
	}

	s.logger.WithField("requestID", requestID).Info("Join request cancelled")
	return nil
}

// ListTeamJoinRequests returns every join request for a team. Requires the
// manage_members permission.
func (s *InviteService) ListTeamJoinRequests(ctx context.Context, teamID, actorID string) ([]invitesdb.ListJoinRequestsForGroupRow, error) {
	team, err := s.teams.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	allowed, err := s.authorizer.Can(actorID, teamID, authz.ActionManageMembers)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apiErrors.ErrForbidden
	}
	return s.inviteRepo.ListJoinRequestsForGroup(ctx, team.ID)
}

// ListMyJoinRequests returns every join request raised by the user.
func (s *InviteService) ListMyJoinRequests(ctx context.Context, userID string) ([]invitesdb.ListJoinRequestsForUserRow, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apiErrors.ErrProfileNotFound
	}
	return s.inviteRepo.ListJoinRequestsForUser(ctx, id)
}

func (s *InviteService) getInvitation(ctx context.Context, invitationID string) (*invitesdb.GroupInvitation, error) {
	id, err := uuid.Parse(invitationID)
	if err != nil {
		return nil, apiErrors.ErrInvitationNotFound
	}
	invitation, err := s.inviteRepo.GetInvitation(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apiErrors.ErrInvitationNotFound
		}
		return nil, err
	}
	return &invitation, nil
}

func (s *InviteService) getJoinRequest(ctx context.Context, requestID string) (*invitesdb.GroupJoinRequest, error) {
	id, err := uuid.Parse(requestID)
	if err != nil {
		return nil, apiErrors.ErrJoinRequestNotFound
	}
	request, err := s.inviteRepo.GetJoinRequest(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apiErrors.ErrJoinRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}
