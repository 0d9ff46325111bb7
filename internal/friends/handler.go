package friends

import (
	"net/http"

	apiErrors "github.com/byterank/byterank-backend/internal/errors"
	friendsdb "github.com/byterank/byterank-backend/internal/friends/gen"
	"github.com/byterank/byterank-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// FriendHandler handles HTTP requests for friendships and friend requests.
type FriendHandler struct {
	logger        *logrus.Logger
	friendService *FriendService
}

// NewFriendHandler creates a new FriendHandler instance with the provided logger and service.
func NewFriendHandler(logger *logrus.Logger, friendService *FriendService) *FriendHandler {
	return &FriendHandler{
		logger:        logger,
		friendService: friendService,
	}
}

// RegisterFriendRoutes registers friendship and friend request routes.
// All routes require an authenticated user.
func RegisterFriendRoutes(handler *FriendHandler, routerGroup *gin.RouterGroup) {
	friendGroup := routerGroup.Group("/friends")
	friendGroup.GET("/", handler.ListFriends)
	friendGroup.DELETE("/:userID", handler.RemoveFriend)

	requestGroup := routerGroup.Group("/friend-requests")
	requestGroup.GET("/", handler.ListFriendRequests)
	requestGroup.POST("/", handler.SendFriendRequest)
	requestGroup.POST("/:requestID/accept", handler.AcceptFriendRequest)
	requestGroup.POST("/:requestID/decline", handler.DeclineFriendRequest)
}

// ToFriendRequestResponseData converts a database FriendRequest to a response DTO.
func ToFriendRequestResponseData(request *friendsdb.FriendRequest) FriendRequestResponseData {
	return FriendRequestResponseData{
		ID:          request.ID.String(),
		RequesterID: request.RequesterID.String(),
		RecipientID: request.RecipientID.String(),
		Status:      string(request.Status),
		CreatedAt:   request.CreatedAt,
	}
}

// ToFriendRequestListItem converts a listing row to a response DTO with
// counterpart display data.
func ToFriendRequestListItem(row friendsdb.ListFriendRequestsForUserRow) FriendRequestResponseData {
	return FriendRequestResponseData{
		ID:                 row.ID.String(),
		RequesterID:        row.RequesterID.String(),
		RecipientID:        row.RecipientID.String(),
		Status:             string(row.Status),
		CreatedAt:          row.CreatedAt,
		RequesterUsername:  row.RequesterUsername,
		RequesterAvatarURL: row.RequesterAvatarUrl.String,
		RecipientUsername:  row.RecipientUsername,
		RecipientAvatarURL: row.RecipientAvatarUrl.String,
	}
}

// ToFriendResponseData converts a friend listing row to a response DTO.
func ToFriendResponseData(row friendsdb.ListFriendsRow) FriendResponseData {
	return FriendResponseData{
		ID:               row.ID.String(),
		Username:         row.Username,
		AvatarURL:        row.AvatarUrl.String,
		NumContributions: row.NumContributions,
		FriendsSince:     row.FriendsSince,
	}
}

// respondServiceError maps a service error to the standard error envelope.
func (h *FriendHandler) respondServiceError(c *gin.Context, err error) {
	if apiErr, ok := err.(*apiErrors.APIError); ok {
		utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
		return
	}
	utils.RespondError(c, http.StatusInternalServerError, apiErrors.ErrInternalServer.Code, apiErrors.ErrInternalServer.Message)
}

// SendFriendRequest handles POST requests to create a friend request.
// A reciprocal pending request is accepted directly instead.
func (h *FriendHandler) SendFriendRequest(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SendFriendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithFields(logrus.Fields{
			"userID": userID,
			"error":  err.Error(),
		}).Warn("Invalid request payload for sending friend request")
		utils.RespondError(c, http.StatusBadRequest, "bad_request", "invalid request payload")
		return
	}

	request, accepted, err := h.friendService.SendFriendRequest(c.Request.Context(), userID, req.RecipientID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	data := SendFriendRequestResponseData{Accepted: accepted}
	if request != nil {
		reqData := ToFriendRequestResponseData(request)
		data.Request = &reqData
	}
	utils.RespondSuccess(c, http.StatusCreated, data)
}

// AcceptFriendRequest handles POST requests to accept a pending friend request.
func (h *FriendHandler) AcceptFriendRequest(c *gin.Context) {
	userID := c.GetString("user_id")
	requestID := c.Param("requestID")

	if err := h.friendService.AcceptFriendRequest(c.Request.Context(), requestID, userID); err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"accepted": true})
}

// DeclineFriendRequest handles POST requests to decline a pending friend request.
func (h *FriendHandler) DeclineFriendRequest(c *gin.Context) {
	userID := c.GetString("user_id")
	requestID := c.Param("requestID")

	if err := h.friendService.DeclineFriendRequest(c.Request.Context(), requestID, userID); err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"declined": true})
}

// RemoveFriend handles DELETE requests to remove a friendship.
func (h *FriendHandler) RemoveFriend(c *gin.Context) {
	userID := c.GetString("user_id")
	otherUserID := c.Param("userID")

	if err := h.friendService.RemoveFriend(c.Request.Context(), userID, otherUserID); err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"removed": true})
}

// ListFriends handles GET requests to list the authenticated user's friends.
func (h *FriendHandler) ListFriends(c *gin.Context) {
	userID := c.GetString("user_id")

	rows, err := h.friendService.ListFriends(c.Request.Context(), userID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	data := make([]FriendResponseData, 0, len(rows))
	for _, row := range rows {
		data = append(data, ToFriendResponseData(row))
	}
	utils.RespondSuccess(c, http.StatusOK, data)
}

// ListFriendRequests handles GET requests to list friend requests involving
// the authenticated user.
func (h *FriendHandler) ListFriendRequests(c *gin.Context) {
	userID := c.GetString("user_id")

	rows, err := h.friendService.ListFriendRequests(c.Request.Context(), userID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	data := make([]FriendRequestResponseData, 0, len(rows))
	for _, row := range rows {
		data = append(data, ToFriendRequestListItem(row))
	}
	utils.RespondSuccess(c, http.StatusOK, data)
}
