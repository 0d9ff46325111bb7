package invites

import (
	"net/http"
	"time"

	apiErrors "github.com/byterank/byterank-backend/internal/errors"
	invitesdb "github.com/byterank/byterank-backend/internal/invites/gen"
	"github.com/byterank/byterank-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// InviteHandler handles HTTP requests for invitations and join requests.
type InviteHandler struct {
	logger        *logrus.Logger
	inviteService *InviteService
}

// NewInviteHandler creates a new InviteHandler instance with the provided logger and service.
func NewInviteHandler(logger *logrus.Logger, inviteService *InviteService) *InviteHandler {
	return &InviteHandler{
		logger:        logger,
		inviteService: inviteService,
	}
}

// RegisterInviteRoutes registers invitation and join request routes.
// All routes require an authenticated user.
func RegisterInviteRoutes(handler *InviteHandler, routerGroup *gin.RouterGroup) {
	teamGroup := routerGroup.Group("/teams/:teamID")
	teamGroup.POST("/invitations", handler.InviteUser)
	teamGroup.GET("/invitations", handler.ListTeamInvitations)
	teamGroup.POST("/join-requests", handler.RequestToJoin)
	teamGroup.GET("/join-requests", handler.ListTeamJoinRequests)

	invitationGroup := routerGroup.Group("/invitations")
	invitationGroup.GET("/", handler.ListMyInvitations)
	invitationGroup.POST("/:invitationID/accept", handler.AcceptInvitation)
	invitationGroup.POST("/:invitationID/decline", handler.DeclineInvitation)
	invitationGroup.DELETE("/:invitationID", handler.CancelInvitation)

	requestGroup := routerGroup.Group("/join-requests")
	requestGroup.GET("/", handler.ListMyJoinRequests)
	requestGroup.POST("/:requestID/approve", handler.ApproveJoinRequest)
	requestGroup.POST("/:requestID/reject", handler.RejectJoinRequest)
	requestGroup.DELETE("/:requestID", handler.CancelJoinRequest)
}

// ToInvitationResponseData converts a database GroupInvitation to a response DTO.
func ToInvitationResponseData(invitation *invitesdb.GroupInvitation) InvitationResponseData {
	return InvitationResponseData{
		ID:          invitation.ID.String(),
		TeamID:      invitation.GroupID.String(),
		CreatedBy:   invitation.CreatedBy.String(),
		InvitedUser: invitation.InvitedUser.String(),
		Status:      string(invitation.Status),
		CreatedAt:   invitation.CreatedAt,
		RespondedAt: nullTimePtr(invitation.RespondedAt.Time, invitation.RespondedAt.Valid),
	}
}

// ToTeamInvitationListItem converts a team invitation listing row to a response DTO.
func ToTeamInvitationListItem(row invitesdb.ListInvitationsForGroupRow) InvitationResponseData {
	return InvitationResponseData{
		ID:               row.ID.String(),
		TeamID:           row.GroupID.String(),
		CreatedBy:        row.CreatedBy.String(),
		InvitedUser:      row.InvitedUser.String(),
		Status:           string(row.Status),
		CreatedAt:        row.CreatedAt,
		RespondedAt:      nullTimePtr(row.RespondedAt.Time, row.RespondedAt.Valid),
		InvitedUsername:  row.InvitedUsername,
		InvitedAvatarURL: row.InvitedAvatarUrl.String,
	}
}

// ToMyInvitationListItem converts a user invitation listing row to a response DTO.
func ToMyInvitationListItem(row invitesdb.ListInvitationsForUserRow) InvitationResponseData {
	return InvitationResponseData{
		ID:              row.ID.String(),
		TeamID:          row.GroupID.String(),
		CreatedBy:       row.CreatedBy.String(),
		InvitedUser:     row.InvitedUser.String(),
		Status:          string(row.Status),
		CreatedAt:       row.CreatedAt,
		RespondedAt:     nullTimePtr(row.RespondedAt.Time, row.RespondedAt.Valid),
		TeamName:        row.GroupName,
		TeamAvatarURL:   row.GroupAvatarUrl.String,
		InviterUsername: row.InviterUsername,
	}
}

// ToJoinRequestResponseData converts a database GroupJoinRequest to a response DTO.
func ToJoinRequestResponseData(request *invitesdb.GroupJoinRequest) JoinRequestResponseData {
	data := JoinRequestResponseData{
		ID:          request.ID.String(),
		TeamID:      request.GroupID.String(),
		RequesterID: request.RequesterID.String(),
		Status:      string(request.Status),
		CreatedAt:   request.CreatedAt,
		DecidedAt:   nullTimePtr(request.DecidedAt.Time, request.DecidedAt.Valid),
	}
	if request.DecidedBy.Valid {
		data.DecidedBy = request.DecidedBy.UUID.String()
	}
	return data
}

// ToTeamJoinRequestListItem converts a team join request listing row to a response DTO.
func ToTeamJoinRequestListItem(row invitesdb.ListJoinRequestsForGroupRow) JoinRequestResponseData {
	data := JoinRequestResponseData{
		ID:                 row.ID.String(),
		TeamID:             row.GroupID.String(),
		RequesterID:        row.RequesterID.String(),
		Status:             string(row.Status),
		CreatedAt:          row.CreatedAt,
		DecidedAt:          nullTimePtr(row.DecidedAt.Time, row.DecidedAt.Valid),
		RequesterUsername:  row.RequesterUsername,
		RequesterAvatarURL: row.RequesterAvatarUrl.String,
	}
	if row.DecidedBy.Valid {
		data.DecidedBy = row.DecidedBy.UUID.String()
	}
	return data
}

// ToMyJoinRequestListItem converts a user join request listing row to a response DTO.
func ToMyJoinRequestListItem(row invitesdb.ListJoinRequestsForUserRow) JoinRequestResponseData {
	data := JoinRequestResponseData{
		ID:            row.ID.String(),
		TeamID:        row.GroupID.String(),
		RequesterID:   row.RequesterID.String(),
		Status:        string(row.Status),
		CreatedAt:     row.CreatedAt,
		DecidedAt:     nullTimePtr(row.DecidedAt.Time, row.DecidedAt.Valid),
		TeamName:      row.GroupName,
		TeamAvatarURL: row.GroupAvatarUrl.String,
	}
	if row.DecidedBy.Valid {
		data.DecidedBy = row.DecidedBy.UUID.String()
	}
	return data
}

func nullTimePtr(t time.Time, valid bool) *time.Time {
	if !valid {
		return nil
	}
	return &t
}

// respondServiceError maps a service error to the standard error envelope.
func (h *InviteHandler) respondServiceError(c *gin.Context, err error) {
	if apiErr, ok := err.(*apiErrors.APIError); ok {
		utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
		return
	}
	utils.RespondError(c, http.StatusInternalServerError, apiErrors.ErrInternalServer.Code, apiErrors.ErrInternalServer.Message)
}

// InviteUser handles POST requests to invite a user to a team by username.
func (h *InviteHandler) InviteUser(c *gin.Context) {
	userID := c.GetString("user_id")
	teamID := c.Param("teamID")

	var req InviteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithFields(logrus.Fields{
			"userID": userID,
			"teamID": teamID,
			"error":  err.Error(),
		}).Warn("Invalid request payload for inviting user")
		utils.RespondError(c, http.StatusBadRequest, "bad_request", "invalid request payload")
		return
	}

	invitation, err := h.inviteService.InviteUser(c.Request.Context(), teamID, userID, req.Username)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, ToInvitationResponseData(invitation))
}

// AcceptInvitation handles POST requests to accept a pending invitation.
func (h *InviteHandler) AcceptInvitation(c *gin.Context) {
	userID := c.GetString("user_id")
	invitationID := c.Param("invitationID")

	if err := h.inviteService.AcceptInvitation(c.Request.Context(), invitationID, userID); err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"accepted": true})
}

// DeclineInvitation handles POST requests to decline a pending invitation.
func (h *InviteHandler) DeclineInvitation(c *gin.Context) {
	userID := c.GetString("user_id")
	invitationID := c.Param("invitationID")

	if err := h.inviteService.DeclineInvitation(c.Request.Context(), invitationID, userID); err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"declined": true})
}

// CancelInvitation handles DELETE requests to withdraw a pending invitation.
func (h *InviteHandler) CancelInvitation(c *gin.Context) {
	userID := c.GetString("user_id")
	invitationID := c.Param("invitationID")

	if err := h.inviteService.CancelInvitation(c.Request.Context(), invitationID, userID); err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"cancelled": true})
}

// ListTeamInvitations handles GET requests for a team's invitations.
func (h *InviteHandler) ListTeamInvitations(c *gin.Context) {
	userID := c.GetString("user_id")
	teamID := c.Param("teamID")

	rows, err := h.inviteService.ListTeamInvitations(c.Request.Context(), teamID, userID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	data := make([]InvitationResponseData, 0, len(rows))
	for _, row := range rows {
		data = append(data, ToTeamInvitationListItem(row))
	}
	utils.RespondSuccess(c, http.StatusOK, data)
}

// ListMyInvitations handles GET requests for the caller's invitations.
func (h *InviteHandler) ListMyInvitations(c *gin.Context) {
	userID := c.GetString("user_id")

	rows, err := h.inviteService.ListMyInvitations(c.Request.Context(), userID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	data := make([]InvitationResponseData, 0, len(rows))
	for _, row := range rows {
		data = append(data, ToMyInvitationListItem(row))
	}
	utils.RespondSuccess(c, http.StatusOK, data)
}

// RequestToJoin handles POST requests to ask for membership in a closed team.
func (h *InviteHandler) RequestToJoin(c *gin.Context) {
	userID := c.GetString("user_id")
	teamID := c.Param("teamID")

	request, err := h.inviteService.RequestToJoin(c.Request.Context(), teamID, userID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, ToJoinRequestResponseData(request))
}

// ApproveJoinRequest handles POST requests to approve a pending join request.
func (h *InviteHandler) ApproveJoinRequest(c *gin.Context) {
	userID := c.GetString("user_id")
	requestID := c.Param("requestID")

	if err := h.inviteService.ApproveJoinRequest(c.Request.Context(), requestID, userID); err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"approved": true})
}

// RejectJoinRequest handles POST requests to reject a pending join request.
func (h *InviteHandler) RejectJoinRequest(c *gin.Context) {
	userID := c.GetString("user_id")
	requestID := c.Param("requestID")

	if err := h.inviteService.RejectJoinRequest(c.Request.Context(), requestID, userID); err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"rejected": true})
}

// CancelJoinRequest handles DELETE requests to withdraw a pending join request.
func (h *InviteHandler) CancelJoinRequest(c *gin.Context) {
	userID := c.GetString("user_id")
	requestID := c.Param("requestID")

	if err := h.inviteService.CancelJoinRequest(c.Request.Context(), requestID, userID); err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"cancelled": true})
}

// ListTeamJoinRequests handles GET requests for a team's join requests.
func (h *InviteHandler) ListTeamJoinRequests(c *gin.Context) {
	userID := c.GetString("user_id")
	teamID := c.Param("teamID")

	rows, err := h.inviteService.ListTeamJoinRequests(c.Request.Context(), teamID, userID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	data := make([]JoinRequestResponseData, 0, len(rows))
	for _, row := range rows {
		data = append(data, ToTeamJoinRequestListItem(row))
	}
	utils.RespondSuccess(c, http.StatusOK, data)
}

// ListMyJoinRequests handles GET requests for the caller's join requests.
func (h *InviteHandler) ListMyJoinRequests(c *gin.Context) {
	userID := c.GetString("user_id")

	rows, err := h.inviteService.ListMyJoinRequests(c.Request.Context(), userID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	data := make([]JoinRequestResponseData, 0, len(rows))
	for _, row := range rows {
		data = append(data, ToMyJoinRequestListItem(row))
	}
	utils.RespondSuccess(c, http.StatusOK, data)
}
