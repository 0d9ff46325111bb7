package profile

import (
	"context"
	"time"

	profiledb "github.com/byterank/byterank-backend/internal/profile/gen"
)

// Repository is the persistence surface the profile service depends on.
type Repository interface {
	profiledb.Querier
}

// ContributionCounter reports the lifetime commit count for a GitHub user.
type ContributionCounter interface {
	CountCommits(ctx context.Context, username string) (int, error)
}

// UpdateProfileRequest is the payload for editing the caller's profile.
type UpdateProfileRequest struct {
	Username    string `json:"username" binding:"required"`
	Description string `json:"description"`
	GithubURL   string `json:"github_url" binding:"omitempty,url"`
	LinkedinURL string `json:"linkedin_url" binding:"omitempty,url"`
}

// ProfileResponseData represents a profile in API responses.
type ProfileResponseData struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	AvatarURL        string    `json:"avatar_url,omitempty"`
	Description      string    `json:"description,omitempty"`
	GithubURL        string    `json:"github_url,omitempty"`
	LinkedinURL      string    `json:"linkedin_url,omitempty"`
	NumContributions int32     `json:"num_contributions"`
	CreatedAt        time.Time `json:"created_at"`
}

// LeaderboardEntry is one ranked row of the global leaderboard.
type LeaderboardEntry struct {
	Rank             int    `json:"rank"`
	ID               string `json:"id"`
	Username         string `json:"username"`
	AvatarURL        string `json:"avatar_url,omitempty"`
	NumContributions int32  `json:"num_contributions"`
}
