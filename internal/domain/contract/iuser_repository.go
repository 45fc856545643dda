package contract

import (
	"context"

	"github.com/mikiasgoitom/Notebook/internal/domain/entity"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByUsername retrieves a user by exact, case-sensitive username.
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	// ExistsUserByUsername reports whether a user with the username exists.
	ExistsUserByUsername(ctx context.Context, username string) (bool, error)
	// UpdateUser updates an existing user and returns the updated user.
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	// ListUsers returns all users.
	ListUsers(ctx context.Context) ([]entity.User, error)
}
