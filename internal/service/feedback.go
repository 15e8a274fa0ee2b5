package service

import (
	"context"
	"errors"

	"github.com/learnx/learnx-go/internal/adminlog"
	"github.com/learnx/learnx-go/internal/model"
)

var ErrMissingMessage = errors.New("Message required")

// FeedbackStore is the persistence surface the feedback flow needs.
type FeedbackStore interface {
	Create(ctx context.Context, feedback *model.Feedback) error
}

// FeedbackService handles feedback submission, with optional user attribution.
type FeedbackService struct {
	feedback FeedbackStore
	audit    adminlog.Sink
}

// NewFeedbackService creates a new FeedbackService.
func NewFeedbackService(feedback FeedbackStore, audit adminlog.Sink) *FeedbackService {
	return &FeedbackService{feedback: feedback, audit: audit}
}

// Create stores a feedback message. userID is nil for anonymous submissions.
func (s *FeedbackService) Create(ctx context.Context, userID *int64, req model.CreateFeedbackRequest) (model.CreateFeedbackResponse, error) {
	if req.Message == "" {
		return model.CreateFeedbackResponse{}, ErrMissingMessage
	}

	feedback := &model.Feedback{
		UserID:  userID,
		Message: req.Message,
	}

	if err := s.feedback.Create(ctx, feedback); err != nil {
		return model.CreateFeedbackResponse{}, err
	}

	s.audit.Record("feedback", map[string]any{
		"message": adminlog.Truncate(req.Message, 240),
		"userId":  userID,
	})

	return model.CreateFeedbackResponse{Message: "Thanks for the feedback!"}, nil
}
