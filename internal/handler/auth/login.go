package auth

import (
	"context"
	"errors"
	"net/http"

	"workshop-genie/internal/api"
	"workshop-genie/internal/model"
	"workshop-genie/internal/service"

	"github.com/labstack/echo/v4"
)

// Authenticator 是 *service.Accounts 的登入行為
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
}

// LoginHandler 使用 email/password 登入
// @Summary     Log in
// @Description 未知 email 與密碼錯誤都回傳 401 Invalid credentials
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "Credentials"
// @Success     200  {object} api.LoginResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(a Authenticator) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Email and password are required"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Email and password are required"})
		}

		u, err := a.Authenticate(c.Request().Context(), req.Email, req.Password)
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid credentials"})
		case err != nil:
			c.Logger().Errorf("login: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Login failed"})
		}
		return c.JSON(http.StatusOK, api.LoginResponse{
			User:    api.NewUserResponse(u),
			Message: "Login successful",
		})
	}
}
