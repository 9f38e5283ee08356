package users

import (
	"context"
	"errors"
	"net/http"

	"workshop-genie/internal/api"
	"workshop-genie/internal/handler"
	"workshop-genie/internal/model"
	"workshop-genie/internal/service"

	"github.com/labstack/echo/v4"
)

// Registrar 是 *service.Accounts 的註冊行為
type Registrar interface {
	Register(ctx context.Context, in model.InsertUser) (*model.User, error)
}

// CreateHandler 註冊新使用者，回應不含密碼
// @Summary     Create a user
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateUserRequest true "User"
// @Success     201  {object} api.UserResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /users [post]
func CreateHandler(r Registrar) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if verr := handler.BindAndValidate(c, &req); verr != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid user data", Details: verr.Issues})
		}

		u, err := r.Register(c.Request().Context(), req.ToInsert())
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "User with this email already exists"})
		case errors.Is(err, service.ErrUsernameTaken):
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "User with this username already exists"})
		case err != nil:
			c.Logger().Errorf("create user: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create user"})
		}
		return c.JSON(http.StatusCreated, api.NewUserResponse(u))
	}
}
