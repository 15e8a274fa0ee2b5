package handler

import (
	"context"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/learnx/learnx-go/internal/adminlog"
	"github.com/learnx/learnx-go/internal/middleware"
	"github.com/learnx/learnx-go/internal/model"
	"github.com/learnx/learnx-go/internal/repository"
	"github.com/learnx/learnx-go/internal/service"
)

const testSecret = "test-secret"

// memStore is an in-memory stand-in for the MySQL repositories, enforcing
// the same uniqueness and scoping contracts.
type memStore struct {
	mu          sync.Mutex
	nextUser    int64
	nextRefl    int64
	nextFb      int64
	users       map[int64]model.User
	reflections []model.Reflection
	feedback    []model.Feedback
}

func newMemStore() *memStore {
	return &memStore{users: make(map[int64]model.User)}
}

func (s *memStore) Create(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	s.nextUser++
	user.ID = s.nextUser
	user.CreatedAt = time.Now()
	s.users[user.ID] = *user
	return nil
}

func (s *memStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
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

func (s *memStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	user := u
	return &user, nil
}

func (s *memStore) reflectionStore() *reflectionStoreAdapter {
	return &reflectionStoreAdapter{s}
}

type reflectionStoreAdapter struct{ s *memStore }

func (a *reflectionStoreAdapter) Create(ctx context.Context, reflection *model.Reflection) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	a.s.nextRefl++
	reflection.ID = a.s.nextRefl
	reflection.CreatedAt = time.Now()
	a.s.reflections = append(a.s.reflections, *reflection)
	return nil
}

func (a *reflectionStoreAdapter) ListByUser(ctx context.Context, userID int64) ([]model.Reflection, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	var out []model.Reflection
	for i := len(a.s.reflections) - 1; i >= 0; i-- {
		if a.s.reflections[i].UserID == userID {
			out = append(out, a.s.reflections[i])
		}
	}
	return out, nil
}

type feedbackStoreAdapter struct{ s *memStore }

func (a *feedbackStoreAdapter) Create(ctx context.Context, feedback *model.Feedback) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	a.s.nextFb++
	feedback.ID = a.s.nextFb
	feedback.CreatedAt = time.Now()
	a.s.feedback = append(a.s.feedback, *feedback)
	return nil
}

// newTestRouter wires the full API surface against the in-memory store,
// mirroring cmd/api.
func newTestRouter(store *memStore) *chi.Mux {
	audit := adminlog.NopSink{}

	authHandler := NewAuthHandler(service.NewAuthService(store, audit, testSecret, time.Hour))
	reflectionHandler := NewReflectionHandler(service.NewReflectionService(store.reflectionStore(), audit))
	feedbackHandler := NewFeedbackHandler(service.NewFeedbackService(&feedbackStoreAdapter{store}, audit))
	healthHandler := NewHealthHandler(time.Now())

	r := chi.NewRouter()
	r.Get("/api/health", healthHandler.HandleHealth)
	r.Post("/api/auth/register", authHandler.HandleRegister)
	r.Post("/api/auth/login", authHandler.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(testSecret))
		r.Get("/api/me", authHandler.HandleMe)
		r.Get("/api/reflections", reflectionHandler.HandleList)
		r.Post("/api/reflections", reflectionHandler.HandleCreate)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalAuth(testSecret))
		r.Post("/api/feedback", feedbackHandler.HandleCreate)
	})

	return r
}
