package service

import (
	"context"
	"errors"

	"github.com/learnx/learnx-go/internal/adminlog"
	"github.com/learnx/learnx-go/internal/model"
)

var ErrMissingPromptAnswer = errors.New("Prompt and answer are required")

// ReflectionStore is the persistence surface the reflection flows need.
type ReflectionStore interface {
	Create(ctx context.Context, reflection *model.Reflection) error
	ListByUser(ctx context.Context, userID int64) ([]model.Reflection, error)
}

// ReflectionService handles reflection capture and listing for a user.
type ReflectionService struct {
	reflections ReflectionStore
	audit       adminlog.Sink
}

// NewReflectionService creates a new ReflectionService.
func NewReflectionService(reflections ReflectionStore, audit adminlog.Sink) *ReflectionService {
	return &ReflectionService{reflections: reflections, audit: audit}
}

// Create saves a prompt/answer pair for the given user.
func (s *ReflectionService) Create(ctx context.Context, userID int64, email string, req model.CreateReflectionRequest) (model.CreateReflectionResponse, error) {
	if req.Prompt == "" || req.Answer == "" {
		return model.CreateReflectionResponse{}, ErrMissingPromptAnswer
	}

	reflection := &model.Reflection{
		UserID: userID,
		Prompt: req.Prompt,
		Answer: req.Answer,
	}

	if err := s.reflections.Create(ctx, reflection); err != nil {
		return model.CreateReflectionResponse{}, err
	}

	s.audit.Record("reflection_saved", map[string]any{
		"email":         email,
		"prompt":        adminlog.Truncate(req.Prompt, 120),
		"answerPreview": adminlog.Truncate(req.Answer, 160),
	})

	return model.CreateReflectionResponse{
		ID:     reflection.ID,
		Prompt: reflection.Prompt,
		Answer: reflection.Answer,
	}, nil
}

// List returns the user's reflections, newest first.
func (s *ReflectionService) List(ctx context.Context, userID int64) (model.ReflectionListResponse, error) {
	reflections, err := s.reflections.ListByUser(ctx, userID)
	if err != nil {
		return model.ReflectionListResponse{}, err
	}

	items := make([]model.ReflectionItem, 0, len(reflections))
	for _, r := range reflections {
		items = append(items, model.ReflectionItem{
			ID:        r.ID,
			Prompt:    r.Prompt,
			Answer:    r.Answer,
			CreatedAt: r.CreatedAt,
		})
	}

	return model.ReflectionListResponse{Items: items}, nil
}
