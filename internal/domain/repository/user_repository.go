package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/spotify-electron-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no document matches the lookup key.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a write violates a unique key.
	ErrDuplicate = errors.New("duplicate key")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create inserts u and reports whether the store acknowledged the write.
	Create(ctx context.Context, u *entity.User) (bool, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	// Update overwrites photo and the list fields of the user named u.Name.
	Update(ctx context.Context, u *entity.User) error
	SetPhoto(ctx context.Context, name, photo string) error
	Delete(ctx context.Context, name string) error
}
