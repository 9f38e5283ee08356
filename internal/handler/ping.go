package handler

import (
	"net/http"

	"workshop-genie/internal/api"
	"workshop-genie/internal/cache"
	"workshop-genie/internal/database"

	"github.com/labstack/echo/v4"
)

// PingHandler 就緒檢查；db 與 rc 可為 nil（未設定 DATABASE_URL / REDIS_ADDR）
// @Summary     Readiness check
// @Description 回傳 pong，並檢查已設定的資料庫與快取連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} api.PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, rc cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if db != nil {
			if err := db.Ping(ctx); err != nil {
				c.Logger().Errorf("ping database: %v", err)
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "database unhealthy"})
			}
		}
		if rc != nil {
			if err := rc.Ping(ctx).Err(); err != nil {
				c.Logger().Errorf("ping cache: %v", err)
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "cache unhealthy"})
			}
		}
		return c.JSON(http.StatusOK, api.PingResponse{Message: "pong"})
	}
}
