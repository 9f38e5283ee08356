package middleware

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"

	"workshop-genie/internal/api"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// AdminKeyHeader carries the shared secret for admin routes.
const AdminKeyHeader = "X-Admin-Key"

// RequireAdminKey 保護管理端路由。key 為空代表未啟用管理功能，一律 403
func RequireAdminKey(key string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if key == "" {
				return echo.NewHTTPError(http.StatusForbidden, "admin routes are disabled")
			}
			got := c.Request().Header.Get(AdminKeyHeader)
			if got == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing admin key")
			}
			if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid admin key")
			}
			return next(c)
		}
	}
}

// RequestID 為每個請求設定 X-Request-ID（沿用上游提供的值）
func RequestID() echo.MiddlewareFunc {
	return echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

// ErrorHandler 把 echo 的錯誤（404 路由、405、panic 等）轉成 api.ErrorResponse。
// 5xx 不回傳內部訊息，只寫入 log。
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if code < http.StatusInternalServerError {
			msg = fmt.Sprint(he.Message)
		}
	}
	if code >= http.StatusInternalServerError {
		c.Logger().Error(err)
		msg = http.StatusText(code)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, api.ErrorResponse{Error: msg})
	}
	if writeErr != nil {
		c.Logger().Error(writeErr)
	}
}
