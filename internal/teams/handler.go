package teams

import (
	"net/http"

	apiErrors "github.com/byterank/byterank-backend/internal/errors"
	"github.com/byterank/byterank-backend/internal/storage"
	teamsdb "github.com/byterank/byterank-backend/internal/teams/gen"
	"github.com/byterank/byterank-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// TeamHandler handles HTTP requests for team management.
type TeamHandler struct {
	logger      *logrus.Logger
	teamService *TeamService
}

// NewTeamHandler creates a new TeamHandler instance with the provided logger and service.
func NewTeamHandler(logger *logrus.Logger, teamService *TeamService) *TeamHandler {
	return &TeamHandler{
		logger:      logger,
		teamService: teamService,
	}
}

// RegisterTeamRoutes registers team management routes.
// All routes require an authenticated user.
func RegisterTeamRoutes(handler *TeamHandler, routerGroup *gin.RouterGroup) {
	teamGroup := routerGroup.Group("/teams")
	teamGroup.GET("/", handler.ListTeams)
	teamGroup.POST("/", handler.CreateTeam)
	teamGroup.GET("/mine", handler.ListMyTeams)
	teamGroup.GET("/:teamID", handler.GetTeam)
	teamGroup.PATCH("/:teamID", handler.UpdateTeam)
	teamGroup.DELETE("/:teamID", handler.DeleteTeam)
	teamGroup.POST("/:teamID/join", handler.JoinTeam)
	teamGroup.POST("/:teamID/leave", handler.LeaveTeam)
	teamGroup.GET("/:teamID/members", handler.ListMembers)
	teamGroup.DELETE("/:teamID/members/:userID", handler.RemoveMember)
	teamGroup.POST("/:teamID/logo", handler.UploadLogo)
}

// ToTeamResponseData converts a database Group to a response DTO.
func ToTeamResponseData(group *teamsdb.Group) TeamResponseData {
	return TeamResponseData{
		ID:           group.ID.String(),
		Name:         group.Name,
		Description:  group.Description.String,
		AvatarURL:    group.AvatarUrl.String,
		OwnerID:      group.OwnerID.String(),
		AccessPolicy: string(group.AccessPolicy),
		CreatedAt:    group.CreatedAt,
	}
}

// ToTeamListItem converts a leaderboard listing row to a response DTO.
func ToTeamListItem(row teamsdb.ListGroupsRow) TeamResponseData {
	return TeamResponseData{
		ID:           row.ID.String(),
		Name:         row.Name,
		Description:  row.Description.String,
		AvatarURL:    row.AvatarUrl.String,
		OwnerID:      row.OwnerID.String(),
		AccessPolicy: string(row.AccessPolicy),
		CreatedAt:    row.CreatedAt,
		MemberCount:  row.MemberCount,
		TotalCommits: row.TotalCommits,
	}
}

// ToMyTeamListItem converts a membership listing row to a response DTO.
func ToMyTeamListItem(row teamsdb.ListGroupsForUserRow) TeamResponseData {
	return TeamResponseData{
		ID:           row.ID.String(),
		Name:         row.Name,
		Description:  row.Description.String,
		AvatarURL:    row.AvatarUrl.String,
		OwnerID:      row.OwnerID.String(),
		AccessPolicy: string(row.AccessPolicy),
		CreatedAt:    row.CreatedAt,
		Role:         string(row.Role),
	}
}

// ToTeamMemberResponseData converts a roster row to a response DTO.
func ToTeamMemberResponseData(row teamsdb.ListGroupMembersRow) TeamMemberResponseData {
	return TeamMemberResponseData{
		UserID:       row.UserID.String(),
		Username:     row.Username,
		AvatarURL:    row.AvatarUrl.String,
		Role:         string(row.Role),
		TotalCommits: row.TotalCommits,
		JoinedAt:     row.CreatedAt,
	}
}

// respondServiceError maps a service error to the standard error envelope.
func (h *TeamHandler) respondServiceError(c *gin.Context, err error) {
	if apiErr, ok := err.(*apiErrors.APIError); ok {
		utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
		return
	}
	utils.RespondError(c, http.StatusInternalServerError, apiErrors.ErrInternalServer.Code, apiErrors.ErrInternalServer.Message)
}

// CreateTeam handles POST requests to create a team owned by the caller.
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithFields(logrus.Fields{
			"userID": userID,
			"error":  err.Error(),
		}).Warn("Invalid request payload for creating team")
		utils.RespondError(c, http.StatusBadRequest, "bad_request", "invalid request payload")
		return
	}

	group, err := h.teamService.CreateTeam(c.Request.Context(), userID, req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, ToTeamResponseData(group))
}

// GetTeam handles GET requests for a single team.
func (h *TeamHandler) GetTeam(c *gin.Context) {
	group, err := h.teamService.GetTeam(c.Request.Context(), c.Param("teamID"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, ToTeamResponseData(group))
}

// ListTeams handles GET requests for the team leaderboard.
func (h *TeamHandler) ListTeams(c *gin.Context) {
	rows, err := h.teamService.ListTeams(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	data := make([]TeamResponseData, 0, len(rows))
	for _, row := range rows {
		data = append(data, ToTeamListItem(row))
	}
	utils.RespondSuccess(c, http.StatusOK, data)
}

// ListMyTeams handles GET requests for the caller's team memberships.
func (h *TeamHandler) ListMyTeams(c *gin.Context) {
	userID := c.GetString("user_id")

	rows, err := h.teamService.ListTeamsForUser(c.Request.Context(), userID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	data := make([]TeamResponseData, 0, len(rows))
	for _, row := range rows {
		data = append(data, ToMyTeamListItem(row))
	}
	utils.RespondSuccess(c, http.StatusOK, data)
}

// UpdateTeam handles PATCH requests to update a team's attributes.
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	userID := c.GetString("user_id")
	teamID := c.Param("teamID")

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithFields(logrus.Fields{
			"userID": userID,
			"teamID": teamID,
			"error":  err.Error(),
		}).Warn("Invalid request payload for updating team")
		utils.RespondError(c, http.StatusBadRequest, "bad_request", "invalid request payload")
		return
	}

	group, err := h.teamService.UpdateTeam(c.Request.Context(), teamID, userID, req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, ToTeamResponseData(group))
}

// DeleteTeam handles DELETE requests to delete a team.
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	userID := c.GetString("user_id")
	teamID := c.Param("teamID")

	if err := h.teamService.DeleteTeam(c.Request.Context(), teamID, userID); err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"deleted": true})
}

// JoinTeam handles POST requests to join an open team.
func (h *TeamHandler) JoinTeam(c *gin.Context) {
	userID := c.GetString("user_id")
	teamID := c.Param("teamID")

	if err := h.teamService.JoinTeam(c.Request.Context(), teamID, userID); err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"joined": true})
}

// LeaveTeam handles POST requests to leave a team.
func (h *TeamHandler) LeaveTeam(c *gin.Context) {
	userID := c.GetString("user_id")
	teamID := c.Param("teamID")

	if err := h.teamService.LeaveTeam(c.Request.Context(), teamID, userID); err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"left": true})
}

// ListMembers handles GET requests for a team's roster.
func (h *TeamHandler) ListMembers(c *gin.Context) {
	rows, err := h.teamService.ListMembers(c.Request.Context(), c.Param("teamID"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	data := make([]TeamMemberResponseData, 0, len(rows))
	for _, row := range rows {
		data = append(data, ToTeamMemberResponseData(row))
	}
	utils.RespondSuccess(c, http.StatusOK, data)
}

// RemoveMember handles DELETE requests to remove a member from a team.
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	actorID := c.GetString("user_id")
	teamID := c.Param("teamID")
	targetID := c.Param("userID")

	if err := h.teamService.RemoveMember(c.Request.Context(), teamID, actorID, targetID); err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"removed": true})
}

// UploadLogo handles multipart POST requests to replace a team's logo.
func (h *TeamHandler) UploadLogo(c *gin.Context) {
	userID := c.GetString("user_id")
	teamID := c.Param("teamID")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "bad_request", "missing file field")
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if err := storage.ValidateImage(contentType, fileHeader.Size); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "bad_request", "unreadable file")
		return
	}
	defer file.Close()

	url, err := h.teamService.UploadLogo(c.Request.Context(), teamID, userID, fileHeader.Filename, contentType, file)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"avatar_url": url})
}
