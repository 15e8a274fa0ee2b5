package repository

import (
	"context"
	"database/sql"

	"github.com/learnx/learnx-go/internal/model"
)

// ReflectionRepository handles reflection persistence operations.
type ReflectionRepository struct {
	db *sql.DB
}

// NewReflectionRepository creates a new ReflectionRepository.
func NewReflectionRepository(db *sql.DB) *ReflectionRepository {
	return &ReflectionRepository{db: db}
}

// Create inserts a new reflection and sets the generated ID on the struct.
func (r *ReflectionRepository) Create(ctx context.Context, reflection *model.Reflection) error {
	query := `INSERT INTO reflections (user_id, prompt, answer) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, reflection.UserID, reflection.Prompt, reflection.Answer)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	reflection.ID = id
	return nil
}

// ListByUser retrieves all reflections belonging to a user, newest first.
func (r *ReflectionRepository) ListByUser(ctx context.Context, userID int64) ([]model.Reflection, error) {
	query := `SELECT id, prompt, answer, created_at FROM reflections
		WHERE user_id = ? ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reflections []model.Reflection
	for rows.Next() {
		reflection := model.Reflection{UserID: userID}
		if err := rows.Scan(&reflection.ID, &reflection.Prompt, &reflection.Answer, &reflection.CreatedAt); err != nil {
			return nil, err
		}
		reflections = append(reflections, reflection)
	}

	return reflections, rows.Err()
}
