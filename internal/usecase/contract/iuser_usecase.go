package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Notebook/internal/domain/entity"
)

// IUserUseCase defines the interface for administrative user operations.
type IUserUseCase interface {
	ListUsers(ctx context.Context) ([]entity.User, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	UpdateUserRole(ctx context.Context, userID, roleName string) (*entity.User, error)
}
