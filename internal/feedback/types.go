package feedback

import "context"

// SubmitFeedbackRequest is the payload for submitting user feedback.
type SubmitFeedbackRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Sender delivers a feedback email. The Resend-backed client implements it.
type Sender interface {
	Send(ctx context.Context, from, to, replyTo, subject, text string) error
}
