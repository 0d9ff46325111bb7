package teams

import (
	"context"
	"time"

	teamsdb "github.com/byterank/byterank-backend/internal/teams/gen"
)

// Repository is the persistence surface the team service depends on:
// the generated queries plus the transactional workflows from Store.
type Repository interface {
	teamsdb.Querier
	CreateGroupWithOwnerTx(ctx context.Context, arg CreateGroupWithOwnerTxParams) (teamsdb.Group, error)
	LeaveGroupTx(ctx context.Context, arg LeaveGroupTxParams) error
}

// CreateTeamRequest is the payload for creating a team.
type CreateTeamRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	AvatarURL    string `json:"avatar_url" binding:"omitempty,url"`
	AccessPolicy string `json:"access_policy" binding:"omitempty,oneof=open closed"`
}

// UpdateTeamRequest is the payload for updating a team's attributes.
type UpdateTeamRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	AccessPolicy string `json:"access_policy" binding:"required,oneof=open closed"`
}

// TeamResponseData represents a team in API responses.
type TeamResponseData struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	OwnerID      string    `json:"owner_id"`
	AccessPolicy string    `json:"access_policy"`
	CreatedAt    time.Time `json:"created_at"`
	MemberCount  int64     `json:"member_count,omitempty"`
	TotalCommits int64     `json:"total_commits,omitempty"`
	Role         string    `json:"role,omitempty"`
}

// TeamMemberResponseData represents one member in a team roster listing.
type TeamMemberResponseData struct {
	UserID       string    `json:"user_id"`
	Username     string    `json:"username"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	Role         string    `json:"role"`
	TotalCommits int32     `json:"total_commits"`
	JoinedAt     time.Time `json:"joined_at"`
}
