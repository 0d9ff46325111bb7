package profile

import (
	"net/http"
	"strconv"

	apiErrors "github.com/byterank/byterank-backend/internal/errors"
	profiledb "github.com/byterank/byterank-backend/internal/profile/gen"
	"github.com/byterank/byterank-backend/internal/storage"
	"github.com/byterank/byterank-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ProfileHandler handles HTTP requests for developer profiles and the
// leaderboard.
type ProfileHandler struct {
	logger         *logrus.Logger
	profileService *ProfileService
}

// NewProfileHandler creates a new ProfileHandler instance with the provided logger and service.
func NewProfileHandler(logger *logrus.Logger, profileService *ProfileService) *ProfileHandler {
	return &ProfileHandler{
		logger:         logger,
		profileService: profileService,
	}
}

// RegisterProfileRoutes registers profile and leaderboard routes.
// All routes require an authenticated user.
func RegisterProfileRoutes(handler *ProfileHandler, routerGroup *gin.RouterGroup) {
	userGroup := routerGroup.Group("/users")
	userGroup.GET("/me", handler.GetMyProfile)
	userGroup.PATCH("/me", handler.UpdateMyProfile)
	userGroup.POST("/me/avatar", handler.UploadAvatar)
	userGroup.POST("/me/contributions/refresh", handler.RefreshContributions)
	userGroup.GET("/:userID", handler.GetProfile)

	routerGroup.GET("/leaderboard", handler.Leaderboard)
}

// ToProfileResponseData converts a database Profile to a response DTO.
func ToProfileResponseData(prof *profiledb.Profile) ProfileResponseData {
	return ProfileResponseData{
		ID:               prof.ID.String(),
		Username:         prof.Username,
		AvatarURL:        prof.AvatarUrl.String,
		Description:      prof.Description.String,
		GithubURL:        prof.GithubUrl.String,
		LinkedinURL:      prof.LinkedinUrl.String,
		NumContributions: prof.NumContributions,
		CreatedAt:        prof.CreatedAt,
	}
}

// respondServiceError maps a service error to the standard error envelope.
func (h *ProfileHandler) respondServiceError(c *gin.Context, err error) {
	if apiErr, ok := err.(*apiErrors.APIError); ok {
		utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
		return
	}
	utils.RespondError(c, http.StatusInternalServerError, apiErrors.ErrInternalServer.Code, apiErrors.ErrInternalServer.Message)
}

// GetMyProfile handles GET requests for the caller's own profile.
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	prof, err := h.profileService.GetProfile(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, ToProfileResponseData(prof))
}

// GetProfile handles GET requests for another user's profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	prof, err := h.profileService.GetProfile(c.Request.Context(), c.Param("userID"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, ToProfileResponseData(prof))
}

// UpdateMyProfile handles PATCH requests to edit the caller's profile.
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithFields(logrus.Fields{
			"userID": userID,
			"error":  err.Error(),
		}).Warn("Invalid request payload for updating profile")
		utils.RespondError(c, http.StatusBadRequest, "bad_request", "invalid request payload")
		return
	}

	prof, err := h.profileService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, ToProfileResponseData(prof))
}

// UploadAvatar handles multipart POST requests to replace the caller's avatar.
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	userID := c.GetString("user_id")

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

	url, err := h.profileService.UploadAvatar(c.Request.Context(), userID, fileHeader.Filename, contentType, file)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"avatar_url": url})
}

// RefreshContributions handles POST requests to re-count the caller's commits.
func (h *ProfileHandler) RefreshContributions(c *gin.Context) {
	prof, err := h.profileService.RefreshContributions(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, ToProfileResponseData(prof))
}

// Leaderboard handles GET requests for the global contribution leaderboard.
func (h *ProfileHandler) Leaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	entries, err := h.profileService.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, entries)
}
