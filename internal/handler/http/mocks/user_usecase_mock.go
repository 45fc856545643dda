package mocks

import (
	"context"
	"fmt"

	"github.com/mikiasgoitom/Notebook/internal/domain/contract"
	"github.com/mikiasgoitom/Notebook/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Notebook/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the IUserUseCase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailList       bool
	NotFoundOnGet        bool
	NotFoundOnUpdateRole bool
	UnknownRole          bool

	// Return values
	MockUser entity.User
}

// Ensure MockUserUsecase implements the correct interface for handler.NewAdminHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:       "mock-user-id",
			Username: "testuser",
			Email:    "test@example.com",
			Role:     entity.UserRoleUser,
			Enabled:  true,
		},
	}
}

func (m *MockUserUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	if m.ShouldFailList {
		return nil, context.DeadlineExceeded
	}
	return []entity.User{m.MockUser}, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.NotFoundOnGet {
		return nil, contract.ErrUserNotFound
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) UpdateUserRole(ctx context.Context, userID, roleName string) (*entity.User, error) {
	if m.NotFoundOnUpdateRole {
		return nil, contract.ErrUserNotFound
	}
	if m.UnknownRole {
		return nil, fmt.Errorf("unknown role %q", roleName)
	}
	user := m.MockUser
	user.Role = entity.UserRole(roleName)
	return &user, nil
}
