// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"inventario/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RegisterUserInput defines the data an administrator supplies to create an account.
type RegisterUserInput struct {
	Actor    entity.Actor
	Name     string
	Cedula   string
	Email    string
	Password string
	Role     entity.Role
	Phone    string
	Address  string
}

// UpdateProfileInput carries a user's own profile changes.
type UpdateProfileInput struct {
	Actor   entity.Actor
	Name    string
	Phone   string
	Address string
}

// ChangePasswordInput carries a password change request for the acting user.
type ChangePasswordInput struct {
	Actor           entity.Actor
	CurrentPassword string
	NewPassword     string
}

// SetUserActiveInput enables or disables another user's account.
type SetUserActiveInput struct {
	Actor  entity.Actor
	UserID uuid.UUID
	Active bool
}

// RefreshTokenInput carries the refresh token presented for renewal.
type RefreshTokenInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// RefreshTokenOutput returns the renewed access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)

	// RegisterUser creates an account. Only administrators may call it.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)

	// ListUsers returns every account. Only administrators may call it.
	ListUsers(ctx context.Context, actor entity.Actor) ([]*entity.User, error)

	// GetProfile returns the acting user's own account.
	GetProfile(ctx context.Context, actor entity.Actor) (*entity.User, error)

	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error)
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error

	// SetUserActive toggles another account. An administrator cannot
	// deactivate their own account.
	SetUserActive(ctx context.Context, input *SetUserActiveInput) error
}
