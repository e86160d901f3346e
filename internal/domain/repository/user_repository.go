// Package repository defines the persistence ports of the domain.
package repository

import (
	"context"

	"inventario/internal/domain/entity"
	"inventario/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create persists a new user. The implementation fills in the generated
	// ID and timestamps on the passed entity.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID, or ErrUserNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByCedula retrieves a user by identity document, or ErrUserNotFound.
	FindByCedula(ctx context.Context, cedula string) (*entity.User, error)

	// List returns all users ordered by creation time.
	List(ctx context.Context) ([]*entity.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *entity.User) error
}
