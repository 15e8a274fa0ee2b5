package repository

import (
	"context"
	"database/sql"

	"github.com/learnx/learnx-go/internal/model"
)

// FeedbackRepository handles feedback persistence operations.
type FeedbackRepository struct {
	db *sql.DB
}

// NewFeedbackRepository creates a new FeedbackRepository.
func NewFeedbackRepository(db *sql.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create inserts a new feedback row. A nil UserID is stored as NULL.
func (r *FeedbackRepository) Create(ctx context.Context, feedback *model.Feedback) error {
	query := `INSERT INTO feedback (user_id, message) VALUES (?, ?)`

	userID := sql.NullInt64{}
	if feedback.UserID != nil {
		userID = sql.NullInt64{Int64: *feedback.UserID, Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query, userID, feedback.Message)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	feedback.ID = id
	return nil
}
