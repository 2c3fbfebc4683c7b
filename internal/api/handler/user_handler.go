package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/publishing-api/internal/core/domain"
	"github.com/pressroom/publishing-api/internal/core/ports"
)

// UserHandler handles the admin-only account operations.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateRole grants or revokes admin privileges on an account.
//
// @Summary      Update a user's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string             true  "User id"
// @Param        body    body      updateRoleRequest  true  "New role flag"
// @Success      200     {object}  successResponse{data=roleData}
// @Failure      401     {object}  map[string]any
// @Failure      403     {object}  map[string]any
// @Failure      404     {object}  map[string]any
// @Router       /api/users/{userId} [put]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.SetRole(c.Request().Context(), c.Param("userId"), *req.IsAdmin)
	if err != nil {
		return err
	}

	return respondData(c, http.StatusOK, roleData{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	})
}

// List returns every registered account.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse{data=[]userData}
// @Failure      401  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}

	return respondData(c, http.StatusOK, toUserData(users))
}

func toUserData(users []*domain.User) []userData {
	out := make([]userData, len(users))
	for i, u := range users {
		out[i] = userData{
			UserID:    u.ID,
			Name:      u.Name,
			Email:     u.Email,
			IsAdmin:   u.IsAdmin,
			CreatedAt: u.CreatedAt,
		}
	}
	return out
}
