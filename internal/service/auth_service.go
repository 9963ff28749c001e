// Package service holds the credential flows. It is the only code that
// reads or compares password material.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tradeledger/internal/apperror"
	"tradeledger/internal/domain"
)

// TokenIssuer mints a signed token for a user ID
type TokenIssuer interface {
	Generate(userID uuid.UUID) (string, error)
}

// AuthService owns signup and login
type AuthService struct {
	userRepo   domain.UserRepository
	tokens     TokenIssuer
	bcryptCost int
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo domain.UserRepository, tokens TokenIssuer, bcryptCost int) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// LoginResult is the outcome of a successful login
type LoginResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Signup registers a new user. The username lookup runs before any
// hashing so a taken name costs no bcrypt work; the unique index on the
// INSERT is the authoritative check, so a concurrent duplicate still
// comes back as a Conflict.
func (s *AuthService) Signup(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, apperror.NewValidation("username and password are required")
	}

	_, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil, apperror.NewConflict("username already exists")
	}
	if !apperror.IsNotFound(err) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, apperror.NewStorage("failed to hash password", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues a token. A missing user and a
// wrong password produce the same Auth error so callers cannot
// enumerate usernames.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, apperror.NewValidation("username and password are required")
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewAuth("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.NewAuth("invalid credentials")
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, apperror.NewStorage("failed to generate token", err)
	}

	return &LoginResult{Token: token, User: user}, nil
}
