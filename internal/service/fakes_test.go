package service

import (
	"context"
	"sync"

	"github.com/learnx/learnx-go/internal/model"
	"github.com/learnx/learnx-go/internal/repository"
)

// memUserStore is an in-memory UserStore enforcing the same email-uniqueness
// contract as the MySQL index, including under concurrent inserts.
type memUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[int64]model.User)}
}

func (s *memUserStore) Create(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}

	s.nextID++
	user.ID = s.nextID
	s.users[user.ID] = *user
	return nil
}

func (s *memUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (s *memUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	user := u
	return &user, nil
}

type memReflectionStore struct {
	mu          sync.Mutex
	nextID      int64
	reflections []model.Reflection
}

func newMemReflectionStore() *memReflectionStore {
	return &memReflectionStore{}
}

func (s *memReflectionStore) Create(ctx context.Context, reflection *model.Reflection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	reflection.ID = s.nextID
	s.reflections = append(s.reflections, *reflection)
	return nil
}

func (s *memReflectionStore) ListByUser(ctx context.Context, userID int64) ([]model.Reflection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Newest first, matching the repository's ORDER BY.
	var out []model.Reflection
	for i := len(s.reflections) - 1; i >= 0; i-- {
		if s.reflections[i].UserID == userID {
			out = append(out, s.reflections[i])
		}
	}
	return out, nil
}

type memFeedbackStore struct {
	mu       sync.Mutex
	nextID   int64
	feedback []model.Feedback
}

func newMemFeedbackStore() *memFeedbackStore {
	return &memFeedbackStore{}
}

func (s *memFeedbackStore) Create(ctx context.Context, feedback *model.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	feedback.ID = s.nextID
	s.feedback = append(s.feedback, *feedback)
	return nil
}

// recordingSink captures audit events synchronously for assertions.
type recordingSink struct {
	mu     sync.Mutex
	events []recordedEvent
}

type recordedEvent struct {
	Event   string
	Payload map[string]any
}

func (s *recordingSink) Record(event string, payload map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, recordedEvent{Event: event, Payload: payload})
}

func (s *recordingSink) Events() []recordedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recordedEvent(nil), s.events...)
}
