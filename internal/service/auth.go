package service

import (
	"context"
	"errors"
	"time"

	"github.com/securepassgen/securepassgen-go/internal/crypto"
	"github.com/securepassgen/securepassgen-go/internal/model"
	"github.com/securepassgen/securepassgen-go/internal/password"
	"github.com/securepassgen/securepassgen-go/internal/repository"
)

// MinAccountPasswordScore is the lowest assessment score accepted for an
// account password at registration. 40 is the floor of the Fair band.
const MinAccountPasswordScore = 40

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooWeak    = errors.New("password is too weak: use at least 8 characters with mixed character classes")
	ErrEmailTaken         = errors.New("email already taken")
)

// AuthService handles authentication business logic. Account passwords
// go through the same assessor as generated ones; registrations scoring
// below MinAccountPasswordScore are rejected.
type AuthService struct {
	repo      *repository.UserRepository
	assessor  *password.Assessor
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService. A nil assessor gets the
// default attack-rate configuration.
func NewAuthService(repo *repository.UserRepository, assessor *password.Assessor, secret string, expiry time.Duration) *AuthService {
	if assessor == nil {
		assessor = password.NewAssessor()
	}
	return &AuthService{
		repo:      repo,
		assessor:  assessor,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a new user account and returns an auth token.
func (s *AuthService) Register(ctx context.Context, req model.CreateUserRequest) (model.AuthResponse, error) {
	if req.Email == "" {
		return model.AuthResponse{}, ErrEmailRequired
	}
	if req.Password == "" {
		return model.AuthResponse{}, ErrPasswordRequired
	}
	if as := s.assessor.Assess(req.Password); as.Score < MinAccountPasswordScore {
		return model.AuthResponse{}, ErrPasswordTooWeak
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		Email:    req.Email,
		AuthHash: hash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		Token: token,
		User: model.UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

// Login authenticates a user and returns an auth token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.AuthHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		Token: token,
		User: model.UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

// GetUser retrieves a user by ID and returns safe user data.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}

	return model.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}
