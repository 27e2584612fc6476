package usecase

import (
	"context"

	"thikana/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput carries a new account registration.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
	Role     entity.Role
}

// AuthTokens is the pair issued on successful login.
type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserUsecase defines the account and authentication use cases.
type UserUsecase interface {
	// Register creates a new account with a hashed password.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues tokens.
	Login(ctx context.Context, email, password string) (*AuthTokens, error)

	// GetProfile retrieves the account for the given user id.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
