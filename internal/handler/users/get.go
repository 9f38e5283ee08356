package users

import (
	"net/http"

	"workshop-genie/internal/api"
	"workshop-genie/internal/handler"
	"workshop-genie/internal/store"

	"github.com/labstack/echo/v4"
)

// GetHandler 取得使用者，回應不含密碼
// @Summary     Get a user
// @Tags        users
// @Produce     json
// @Param       id  path     int true "User ID"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/{id} [get]
func GetHandler(s store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.ParseID(c, "id")
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid user ID"})
		}
		u, err := s.GetUser(c.Request().Context(), id)
		if err != nil {
			c.Logger().Errorf("get user %d: %v", id, err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch user"})
		}
		if u == nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(u))
	}
}
