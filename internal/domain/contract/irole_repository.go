package contract

import (
	"context"

	"github.com/mikiasgoitom/Notebook/internal/domain/entity"
)

type IRoleRepository interface {
	// GetRoleByName retrieves a role row by its unique name.
	GetRoleByName(ctx context.Context, name entity.UserRole) (*entity.Role, error)
	CreateRole(ctx context.Context, role *entity.Role) error
}
