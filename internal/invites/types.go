package invites

import (
	"context"
	"time"

	authdb "github.com/byterank/byterank-backend/internal/auth/gen"
	invitesdb "github.com/byterank/byterank-backend/internal/invites/gen"
	teamsdb "github.com/byterank/byterank-backend/internal/teams/gen"
)

// Repository is the persistence surface the invite service depends on:
// the generated queries plus the transactional workflows from Store.
type Repository interface {
	invitesdb.Querier
	AcceptInvitationTx(ctx context.Context, arg AcceptInvitationTxParams) error
	ApproveJoinRequestTx(ctx context.Context, arg ApproveJoinRequestTxParams) error
}

// TeamDirectory resolves teams and memberships. The team service implements it.
type TeamDirectory interface {
	GetTeam(ctx context.Context, teamID string) (*teamsdb.Group, error)
	GetMember(ctx context.Context, teamID, userID string) (*teamsdb.GroupMember, error)
}

// ProfileDirectory resolves profiles by username. The auth service implements it.
type ProfileDirectory interface {
	GetProfileByUsername(ctx context.Context, username string) (*authdb.Profile, error)
}

// InviteUserRequest is the payload for inviting a user to a team by username.
type InviteUserRequest struct {
	Username string `json:"username" binding:"required"`
}

// InvitationResponseData represents an invitation in API responses.
type InvitationResponseData struct {
	ID               string     `json:"id"`
	TeamID           string     `json:"team_id"`
	CreatedBy        string     `json:"created_by"`
	InvitedUser      string     `json:"invited_user"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	RespondedAt      *time.Time `json:"responded_at,omitempty"`
	TeamName         string     `json:"team_name,omitempty"`
	TeamAvatarURL    string     `json:"team_avatar_url,omitempty"`
	InviterUsername  string     `json:"inviter_username,omitempty"`
	InvitedUsername  string     `json:"invited_username,omitempty"`
	InvitedAvatarURL string     `json:"invited_avatar_url,omitempty"`
}

// JoinRequestResponseData represents a join request in API responses.
type JoinRequestResponseData struct {
	ID                 string     `json:"id"`
	TeamID             string     `json:"team_id"`
	RequesterID        string     `json:"requester_id"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
	DecidedAt          *time.Time `json:"decided_at,omitempty"`
	DecidedBy          string     `json:"decided_by,omitempty"`
	TeamName           string     `json:"team_name,omitempty"`
	TeamAvatarURL      string     `json:"team_avatar_url,omitempty"`
	RequesterUsername  string     `json:"requester_username,omitempty"`
	RequesterAvatarURL string     `json:"requester_avatar_url,omitempty"`
}
