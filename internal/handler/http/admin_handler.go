package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Notebook/internal/domain/contract"
	"github.com/mikiasgoitom/Notebook/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Notebook/internal/usecase/contract"
)

// AdminHandlerInterface defines the methods for the admin handler to allow interface-based dependency injection (for testing/mocking)
type AdminHandlerInterface interface {
	ListUsers(*gin.Context)
	GetUser(*gin.Context)
	UpdateUserRole(*gin.Context)
}

// Ensure AdminHandler implements AdminHandlerInterface
var _ AdminHandlerInterface = (*AdminHandler)(nil)

type AdminHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewAdminHandler(userUsecase usecasecontract.IUserUseCase) *AdminHandler {
	return &AdminHandler{
		userUsecase: userUsecase,
	}
}

// ListUsers returns all user accounts
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userUsecase.ListUsers(c.Request.Context())
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to list users")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponses(users))
}

// GetUser returns one user account by ID
func (h *AdminHandler) GetUser(c *gin.Context) {
	user, err := h.userUsecase.GetUserByID(c.Request.Context(), c.Param("userID"))
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			ErrorHandler(c, http.StatusNotFound, "User not found")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// UpdateUserRole assigns an existing role to a user
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	var req dto.UpdateRoleRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	user, err := h.userUsecase.UpdateUserRole(c.Request.Context(), c.Param("userID"), req.Role)
	if err != nil {
		switch {
		case errors.Is(err, contract.ErrUserNotFound):
			ErrorHandler(c, http.StatusNotFound, "User not found")
		case errors.Is(err, contract.ErrRoleNotFound):
			ErrorHandler(c, http.StatusBadRequest, "Role does not exist")
		default:
			ErrorHandler(c, http.StatusBadRequest, err.Error())
		}
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}
