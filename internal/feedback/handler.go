package feedback

import (
	"net/http"

	apiErrors "github.com/byterank/byterank-backend/internal/errors"
	"github.com/byterank/byterank-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// FeedbackHandler handles HTTP requests for the feedback inbox.
type FeedbackHandler struct {
	logger          *logrus.Logger
	feedbackService *FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler instance with the provided logger and service.
func NewFeedbackHandler(logger *logrus.Logger, feedbackService *FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		logger:          logger,
		feedbackService: feedbackService,
	}
}

// RegisterFeedbackRoutes registers the feedback route. It is public: visitors
// can report problems without an account.
func RegisterFeedbackRoutes(handler *FeedbackHandler, routerGroup *gin.RouterGroup) {
	routerGroup.POST("/feedback", handler.SubmitFeedback)
}

// SubmitFeedback handles POST requests to forward feedback to the project inbox.
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithField("error", err.Error()).Warn("Invalid feedback payload")
		utils.RespondError(c, http.StatusBadRequest, "bad_request", "name, email, subject and message are required")
		return
	}

	if err := h.feedbackService.Submit(c.Request.Context(), req); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, apiErrors.ErrInternalServer.Code, "failed to deliver feedback")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"delivered": true})
}
