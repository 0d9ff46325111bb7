package auth

import (
	"net/http"

	apiErrors "github.com/byterank/byterank-backend/internal/errors"
	"github.com/byterank/byterank-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	service *AuthService
	logger  *logrus.Logger
}

// NewAuthHandler creates a new AuthHandler with the given service and logger.
func NewAuthHandler(service *AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterAuthRoutes registers all authentication related HTTP routes.
// These routes are public and must stay outside the JWT-protected group.
func RegisterAuthRoutes(handler *AuthHandler, routerGroup *gin.RouterGroup) {
	authGroup := routerGroup.Group("/auth")
	authGroup.GET("/login", handler.Login)
	authGroup.GET("/callback", handler.Callback)
	authGroup.POST("/refresh", handler.Refresh)
}

// Login redirects the browser to the GitHub authorization URL.
func (h *AuthHandler) Login(c *gin.Context) {
	state := uuid.NewString()
	url := h.service.GetLoginURL(state)
	h.logger.WithFields(logrus.Fields{
		"state": state,
	}).Info("Redirecting to OAuth provider")
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// Callback handles the OAuth redirect, exchanging the code for tokens and
// upserting the profile.
func (h *AuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		h.logger.Warn("OAuth callback missing code parameter")
		utils.RespondError(c, http.StatusBadRequest, "missing_code", "the oauth callback did not include a code")
		return
	}

	data, err := h.service.HandleCallback(c.Request.Context(), code)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("OAuth callback failed")
		utils.RespondError(c, http.StatusInternalServerError, apiErrors.ErrInternalServer.Code, apiErrors.ErrInternalServer.Message)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, data)
}

// Refresh rotates an access/refresh token pair from a valid refresh token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, apiErrors.ErrInvalidBody.Status, apiErrors.ErrInvalidBody.Code, apiErrors.ErrInvalidBody.Message)
		return
	}

	token, refreshToken, err := h.service.RefreshTokens(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if apiErr, ok := err.(*apiErrors.APIError); ok {
			utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, apiErrors.ErrInternalServer.Code, apiErrors.ErrInternalServer.Message)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, RefreshResponseData{
		Token:        token,
		RefreshToken: refreshToken,
	})
}
