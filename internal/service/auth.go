package service

import (
	"context"
	"errors"
	"time"

	"github.com/learnx/learnx-go/internal/adminlog"
	"github.com/learnx/learnx-go/internal/crypto"
	"github.com/learnx/learnx-go/internal/model"
	"github.com/learnx/learnx-go/internal/repository"
)

// Error strings are part of the API contract: handlers return them verbatim.
// Login failures never reveal whether the email or the password was wrong.
var (
	ErrMissingFields      = errors.New("Name, email, and password are required")
	ErrPasswordTooShort   = errors.New("Password must be at least 8 characters")
	ErrEmailTaken         = errors.New("Email already registered")
	ErrMissingCredentials = errors.New("Email and password are required")
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

const minPasswordLength = 8

// UserStore is the persistence surface the auth flows need.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// AuthService handles registration, login, and profile lookup.
type AuthService struct {
	users     UserStore
	audit     adminlog.Sink
	jwtSecret string
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, audit adminlog.Sink, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		audit:     audit,
		jwtSecret: secret,
		tokenTTL:  ttl,
	}
}

// Register creates a new user account and returns an auth token.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return model.AuthResponse{}, ErrMissingFields
	}
	if len(req.Password) < minPasswordLength {
		return model.AuthResponse{}, ErrPasswordTooShort
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return model.AuthResponse{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return model.AuthResponse{}, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}

	// The unique index resolves registrations racing on the same email; the
	// losing insert lands here as a conflict.
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	token, err := crypto.GenerateToken(user.ID, user.Email, user.Name, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return model.AuthResponse{}, err
	}

	s.audit.Record("user_registered", map[string]any{"email": user.Email, "name": user.Name})

	return model.AuthResponse{
		Token: token,
		User: model.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}

// Login authenticates a user and returns an auth token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return model.AuthResponse{}, ErrMissingCredentials
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, user.Email, user.Name, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return model.AuthResponse{}, err
	}

	s.audit.Record("user_login", map[string]any{"email": user.Email})

	return model.AuthResponse{
		Token: token,
		User: model.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}

// GetUser retrieves a user by ID and returns safe user data.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}

	return model.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}
