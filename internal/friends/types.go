package friends

import (
	"context"
	"time"

	friendsdb "github.com/byterank/byterank-backend/internal/friends/gen"
)

// Repository is the persistence surface the friend service depends on:
// the generated queries plus the transactional workflows from Store.
type Repository interface {
	friendsdb.Querier
	AcceptFriendRequestTx(ctx context.Context, arg AcceptFriendRequestTxParams) error
	AutoAcceptTx(ctx context.Context, arg AutoAcceptTxParams) error
}

// SendFriendRequestRequest is the payload for sending a friend request.
type SendFriendRequestRequest struct {
	RecipientID string `json:"recipient_id" binding:"required"`
}

// FriendRequestResponseData represents a friend request in API responses.
type FriendRequestResponseData struct {
	ID                 string    `json:"id"`
	RequesterID        string    `json:"requester_id"`
	RecipientID        string    `json:"recipient_id"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	RequesterUsername  string    `json:"requester_username,omitempty"`
	RequesterAvatarURL string    `json:"requester_avatar_url,omitempty"`
	RecipientUsername  string    `json:"recipient_username,omitempty"`
	RecipientAvatarURL string    `json:"recipient_avatar_url,omitempty"`
}

// SendFriendRequestResponseData reports the outcome of sending a request.
// Accepted is true when a reciprocal pending request existed and the pair
// became friends directly.
type SendFriendRequestResponseData struct {
	Accepted bool                       `json:"accepted"`
	Request  *FriendRequestResponseData `json:"request,omitempty"`
}

// FriendResponseData represents one friend in a friend listing.
type FriendResponseData struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	AvatarURL        string    `json:"avatar_url,omitempty"`
	NumContributions int32     `json:"num_contributions"`
	FriendsSince     time.Time `json:"friends_since"`
}
