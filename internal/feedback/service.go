package feedback

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// FeedbackService forwards user feedback to the project inbox. The sender's
// address goes into Reply-To so answering a feedback email reaches the user
// directly.
type FeedbackService struct {
	logger      *logrus.Logger
	sender      Sender
	fromAddress string
	toAddress   string
}

// NewFeedbackService creates a new FeedbackService instance with the provided
// dependencies. A nil sender disables delivery; submissions are then only
// logged.
func NewFeedbackService(logger *logrus.Logger, sender Sender, fromAddress, toAddress string) *FeedbackService {
	return &FeedbackService{
		logger:      logger,
		sender:      sender,
		fromAddress: fromAddress,
		toAddress:   toAddress,
	}
}

// Submit sends one feedback email. When no email provider is configured the
// submission is logged and reported as delivered so the caller's flow is not
// broken by a deployment detail.
func (s *FeedbackService) Submit(ctx context.Context, req SubmitFeedbackRequest) error {
	if s.sender == nil {
		s.logger.WithFields(logrus.Fields{
			"name":    req.Name,
			"email":   req.Email,
			"subject": req.Subject,
		}).Warn("Email provider not configured, feedback logged only")
		return nil
	}

	subject := fmt.Sprintf("ByteRank Feedback: %s", req.Subject)
	text := fmt.Sprintf("New feedback from ByteRank\n\nFrom: %s <%s>\n\n%s", req.Name, req.Email, req.Message)

	if err := s.sender.Send(ctx, s.fromAddress, s.toAddress, req.Email, subject, text); err != nil {
		s.logger.WithFields(logrus.Fields{
			"email": req.Email,
			"error": err.Error(),
		}).Error("Failed to deliver feedback email")
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"email":   req.Email,
		"subject": req.Subject,
	}).Info("Feedback email delivered")
	return nil
}
