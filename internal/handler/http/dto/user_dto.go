package dto

import (
	"time"

	"github.com/mikiasgoitom/Notebook/internal/domain/entity"
)

// UserResponse is the DTO for a user on the admin surface. The
// password hash is never part of any response.
type UserResponse struct {
	ID               string `json:"id"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	Enabled          bool   `json:"enabled"`
	AccountNonLocked bool   `json:"account_non_locked"`
	TwoFactorEnabled bool   `json:"two_factor_enabled"`
	SignUpMethod     string `json:"sign_up_method"`
	CreatedAt        string `json:"created_at"`
}

// ToUserResponse converts an entity.User to a UserResponse DTO.
func ToUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:               user.ID,
		Username:         user.Username,
		Email:            user.Email,
		Role:             string(user.Role),
		Enabled:          user.Enabled,
		AccountNonLocked: user.AccountNonLocked,
		TwoFactorEnabled: user.TwoFactorEnabled,
		SignUpMethod:     user.SignUpMethod,
		CreatedAt:        user.CreatedAt.Format(time.RFC3339),
	}
}

// ToUserResponses converts a slice of users.
func ToUserResponses(users []entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}

// UpdateRoleRequest is the DTO for assigning a role to a user.
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
