package users

import (
	"net/http"

	"workshop-genie/internal/api"
	"workshop-genie/internal/handler"
	"workshop-genie/internal/model"
	"workshop-genie/internal/store"

	"github.com/labstack/echo/v4"
)

// BookingsHandler 列出使用者的預約；使用者不存在時回傳空陣列
// @Summary     List bookings of a user
// @Tags        users
// @Produce     json
// @Param       id  path     int true "User ID"
// @Success     200 {array}  model.Booking
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/{id}/bookings [get]
func BookingsHandler(s store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.ParseID(c, "id")
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid user ID"})
		}
		bs, err := s.GetBookingsByUser(c.Request().Context(), id)
		if err != nil {
			c.Logger().Errorf("bookings of user %d: %v", id, err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch user bookings"})
		}
		if bs == nil {
			bs = []model.Booking{}
		}
		return c.JSON(http.StatusOK, bs)
	}
}
