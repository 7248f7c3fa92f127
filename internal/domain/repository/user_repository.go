// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"credgate/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when Create hits the unique username constraint.
	ErrUsernameTaken = errors.New("username already taken")
)

// UserRepository defines the standard operations for user persistence.
// The schema behind it belongs to the storage layer; the core only needs these lookups.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by login name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByUsername reports whether the login name is already registered.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Create persists a new user. ID, CreatedAt and UpdatedAt are filled in on success.
	Create(ctx context.Context, user *entity.User) error
}
