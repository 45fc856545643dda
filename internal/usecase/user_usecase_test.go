package usecase_test

import (
	"context"
	"testing"

	"github.com/mikiasgoitom/Notebook/internal/domain/contract"
	"github.com/mikiasgoitom/Notebook/internal/domain/entity"
	"github.com/mikiasgoitom/Notebook/internal/usecase"
	"github.com/stretchr/testify/assert"
)

func seedAdminFixtures(t *testing.T, userRepo *fakeUserRepo, roleRepo *fakeRoleRepo) {
	t.Helper()
	assert.NoError(t, roleRepo.CreateRole(context.Background(), &entity.Role{ID: "r1", Name: entity.UserRoleUser}))
	assert.NoError(t, roleRepo.CreateRole(context.Background(), &entity.Role{ID: "r2", Name: entity.UserRoleAdmin}))
	assert.NoError(t, userRepo.CreateUser(context.Background(), &entity.User{
		ID:       "u1",
		Username: "user1",
		Role:     entity.UserRoleUser,
	}))
}

func TestUpdateUserRole_Promotes(t *testing.T) {
	userRepo := newFakeUserRepo()
	roleRepo := newFakeRoleRepo()
	seedAdminFixtures(t, userRepo, roleRepo)
	uc := usecase.NewUserUsecase(userRepo, roleRepo, noopLogger{})

	updated, err := uc.UpdateUserRole(context.Background(), "u1", "ADMIN")
	assert.NoError(t, err)
	assert.Equal(t, entity.UserRoleAdmin, updated.Role)
}

func TestUpdateUserRole_UnknownRoleName(t *testing.T) {
	userRepo := newFakeUserRepo()
	roleRepo := newFakeRoleRepo()
	seedAdminFixtures(t, userRepo, roleRepo)
	uc := usecase.NewUserUsecase(userRepo, roleRepo, noopLogger{})

	_, err := uc.UpdateUserRole(context.Background(), "u1", "SUPERUSER")
	assert.Error(t, err)
}

// The role row must exist in the store before it can be assigned, even
// when the name belongs to the closed role set.
func TestUpdateUserRole_RoleRowMissing(t *testing.T) {
	userRepo := newFakeUserRepo()
	roleRepo := newFakeRoleRepo()
	assert.NoError(t, userRepo.CreateUser(context.Background(), &entity.User{ID: "u1", Username: "user1", Role: entity.UserRoleUser}))
	uc := usecase.NewUserUsecase(userRepo, roleRepo, noopLogger{})

	_, err := uc.UpdateUserRole(context.Background(), "u1", "ADMIN")
	assert.ErrorIs(t, err, contract.ErrRoleNotFound)
}

func TestUpdateUserRole_UserMissing(t *testing.T) {
	userRepo := newFakeUserRepo()
	roleRepo := newFakeRoleRepo()
	seedAdminFixtures(t, userRepo, roleRepo)
	uc := usecase.NewUserUsecase(userRepo, roleRepo, noopLogger{})

	_, err := uc.UpdateUserRole(context.Background(), "missing", "ADMIN")
	assert.ErrorIs(t, err, contract.ErrUserNotFound)
}

func TestListUsers(t *testing.T) {
	userRepo := newFakeUserRepo()
	roleRepo := newFakeRoleRepo()
	seedAdminFixtures(t, userRepo, roleRepo)
	uc := usecase.NewUserUsecase(userRepo, roleRepo, noopLogger{})

	users, err := uc.ListUsers(context.Background())
	assert.NoError(t, err)
	assert.Len(t, users, 1)
}
