package handler

import (
	"net/http"
	"time"

	"workshop-genie/internal/api"

	"github.com/labstack/echo/v4"
)

var timeNow = time.Now

// HealthHandler 靜態健康檢查，不依賴任何狀態
// @Summary     Health check
// @Description 回傳 status ok 與目前時間
// @Tags        health
// @Produce     json
// @Success     200 {object} api.HealthResponse
// @Router      /health [get]
func HealthHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.HealthResponse{Status: "ok", Timestamp: timeNow().UTC()})
	}
}
