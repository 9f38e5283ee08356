package workshops

import (
	"net/http"

	"workshop-genie/internal/api"
	"workshop-genie/internal/handler"
	"workshop-genie/internal/model"
	"workshop-genie/internal/store"

	"github.com/labstack/echo/v4"
)

// BookingsHandler 列出某 workshop 的預約；workshop 不存在時回傳空陣列
// @Summary     List bookings of a workshop
// @Tags        workshops
// @Produce     json
// @Param       id  path     int true "Workshop ID"
// @Success     200 {array}  model.Booking
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /workshops/{id}/bookings [get]
func BookingsHandler(s store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.ParseID(c, "id")
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid workshop ID"})
		}
		bs, err := s.GetBookingsByWorkshop(c.Request().Context(), id)
		if err != nil {
			c.Logger().Errorf("bookings of workshop %d: %v", id, err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch workshop bookings"})
		}
		if bs == nil {
			bs = []model.Booking{}
		}
		return c.JSON(http.StatusOK, bs)
	}
}
