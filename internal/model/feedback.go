package model

import "time"

// Feedback represents a free-form feedback message. UserID is nil when the
// submitter was anonymous.
type Feedback struct {
	ID        int64
	UserID    *int64
	Message   string
	CreatedAt time.Time
}

// CreateFeedbackRequest represents a feedback submission.
type CreateFeedbackRequest struct {
	Message string `json:"message"`
}

// CreateFeedbackResponse acknowledges a feedback submission.
type CreateFeedbackResponse struct {
	Message string `json:"message"`
}
