package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"library-backend/internal/domains/user"
	"library-backend/pkg/jwt"
)

// userService implements user.Service
type userService struct {
	repo       user.Repository // Data access layer
	jwtManager *jwt.Manager    // Token signing
}

// NewUserService creates service instance (constructor injection)
func NewUserService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

// Register creates a new user identity.
func (s *userService) Register(ctx context.Context, req user.CreateUserRequest) (*user.User, error) {
	// 1. VALIDATE INPUT (before any store access)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. HASH CREDENTIAL
	// bcrypt cost 12: the usual security/latency trade-off
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 3. PERSIST
	// Username uniqueness is the store's job (unique index); a duplicate
	// write comes back as ErrUsernameTaken with the store message attached
	newUser := &user.User{
		ID:            primitive.NewObjectID(),
		Username:      req.Username,
		FavoriteGenre: req.FavoriteGenre,
		PasswordHash:  string(passwordHash),
	}
	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	return newUser, nil
}

// Login authenticates and issues a bearer token.
func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Unknown username and wrong password must be indistinguishable to
	// the caller, so both collapse into ErrInvalidCredentials
	u, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if u == nil {
		return nil, user.ErrInvalidCredentials
	}

	// Constant-time comparison
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(u.ID.Hex(), u.Username)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &user.TokenResponse{Token: token}, nil
}
