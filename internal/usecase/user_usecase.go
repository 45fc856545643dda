package usecase

import (
	"context"
	"fmt"

	"github.com/mikiasgoitom/Notebook/internal/domain/contract"
	"github.com/mikiasgoitom/Notebook/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Notebook/internal/usecase/contract"
)

// UserUsecase implements the administrative user operations exposed
// under the admin surface.
type UserUsecase struct {
	userRepo contract.IUserRepository
	roleRepo contract.IRoleRepository
	logger   usecasecontract.IAppLogger
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	roleRepo contract.IRoleRepository,
	logger usecasecontract.IAppLogger,
) *UserUsecase {
	return &UserUsecase{
		userRepo: userRepo,
		roleRepo: roleRepo,
		logger:   logger,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

func (uc *UserUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	return uc.userRepo.ListUsers(ctx)
}

func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetUserByID(ctx, userID)
}

// UpdateUserRole assigns an existing role to a user. The role row must
// already exist; roles are never created through this path.
func (uc *UserUsecase) UpdateUserRole(ctx context.Context, userID, roleName string) (*entity.User, error) {
	if !entity.ValidRole(roleName) {
		return nil, fmt.Errorf("unknown role %q", roleName)
	}
	role, err := uc.roleRepo.GetRoleByName(ctx, entity.UserRole(roleName))
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Role = role.Name
	updated, err := uc.userRepo.UpdateUser(ctx, user)
	if err != nil {
		uc.logger.Errorf("failed to update role for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to update user role")
	}
	uc.logger.Infof("user %q role changed to %s", updated.Username, updated.Role)
	return updated, nil
}
